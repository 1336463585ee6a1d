package testroster

import (
	"context"
	"fmt"
	"time"

	"github.com/okian/beacon/pkg/logger"
)

// Run executes a complete roster test: generate, analyze, read back, verify.
func Run(ctx context.Context, cfg *Config) error {
	stats := &Stats{StartTime: time.Now()}

	log := logger.Get()
	log.Info(ctx, "starting roster test",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("students", cfg.Students),
		logger.Int("topN", cfg.TopN),
	)

	client := newHTTPClient(cfg.Timeout)

	if err := checkServiceHealth(ctx, client, cfg.BaseURL); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	roster := generateRoster(cfg.Students)
	stats.StudentsGenerated = cfg.Students

	var run runResponse
	if err := client.postJSON(ctx, cfg.BaseURL+"/analyze", roster, &run); err != nil {
		return fmt.Errorf("analyze request failed: %w", err)
	}
	log.Info(ctx, "analysis complete",
		logger.String("runID", run.RunID),
		logger.Int("students", run.Students),
		logger.Int("atRisk", run.Distribution.AtRisk),
	)

	var ranked []riskProfile
	url := fmt.Sprintf("%s/results?limit=%d", cfg.BaseURL, cfg.TopN)
	if err := client.getJSON(ctx, url, &ranked); err != nil {
		return fmt.Errorf("results request failed: %w", err)
	}
	stats.ProfilesReturned = len(ranked)

	var dist Distribution
	if err := client.getJSON(ctx, cfg.BaseURL+"/distribution", &dist); err != nil {
		return fmt.Errorf("distribution request failed: %w", err)
	}
	stats.Distribution = dist

	if err := verify(roster, run, ranked, dist); err != nil {
		return fmt.Errorf("verification failed: %w", err)
	}

	stats.Duration = time.Since(stats.StartTime)
	log.Info(ctx, "roster test passed",
		logger.Int("generated", stats.StudentsGenerated),
		logger.Int("returned", stats.ProfilesReturned),
		logger.String("duration", stats.Duration.String()),
	)
	return nil
}
