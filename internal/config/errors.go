package config

import "errors"

// Sentinel kinds for config errors, matchable via errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config failed")
)
