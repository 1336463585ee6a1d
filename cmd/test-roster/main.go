package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/beacon/internal/testroster"
	"github.com/okian/beacon/pkg/logger"
)

// Default configuration constants.
const (
	defaultStudents    = 500
	defaultTopN        = 50
	defaultTimeout     = 30 * time.Second
	defaultTestTimeout = 5 * time.Minute
)

func main() {
	var (
		baseURL  = flag.String("url", "http://localhost:9080", "Base URL of the service")
		students = flag.Int("students", defaultStudents, "Number of students to generate")
		topN     = flag.Int("top", defaultTopN, "Number of ranked entries to fetch back")
		timeout  = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose  = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	cfg := &testroster.Config{
		BaseURL:  *baseURL,
		Students: *students,
		TopN:     *topN,
		Timeout:  *timeout,
		Verbose:  *verbose,
	}
	if err := testroster.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("roster test failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
