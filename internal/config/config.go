// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(...) initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Default upload cap: three CSV files for even a large roster stay well
// under this.
const defaultMaxUploadBytes = 8 << 20

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxResultsLimit caps GET /results?limit.
	MaxResultsLimit int `koanf:"max_results_limit"`

	// HistorySize bounds how many analysis runs are kept in memory.
	HistorySize int `koanf:"history_size"`

	// MaxUploadBytes bounds the size of one CSV upload request.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`
}

// New creates a Config with defaults.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		MaxResultsLimit: 500,
		HistorySize:     16,
		MaxUploadBytes:  defaultMaxUploadBytes,
	}
}
