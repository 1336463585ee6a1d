// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/okian/beacon/internal/adapters/repository"
	"github.com/okian/beacon/internal/domain/analysis"
	"github.com/okian/beacon/internal/domain/model"
	"github.com/okian/beacon/internal/domain/scoring"
	"github.com/okian/beacon/pkg/logger"
	"github.com/okian/beacon/pkg/metrics"
)

// Default limits.
const (
	defaultMaxResultsLimit = 500
	defaultHistorySize     = 16
)

// Service implements the API dependencies for the dropout-risk system.
type Service struct {
	mu sync.RWMutex

	store  repository.Store
	scorer scoring.Scorer

	maxResultsLimit int
	historySize     int

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the run store. Defaults to an in-memory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithScorer replaces the default rule scorer.
func WithScorer(scorer scoring.Scorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithMaxResultsLimit caps the number of profiles one Results call returns.
func WithMaxResultsLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxResultsLimit = n
		}
	}
}

// WithHistorySize bounds the in-memory run history.
func WithHistorySize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.historySize = n
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		maxResultsLimit: defaultMaxResultsLimit,
		historySize:     defaultHistorySize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start initializes the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore(repository.WithHistorySize(s.historySize))
	}
	if s.scorer == nil {
		s.scorer = scoring.NewRuleScorer()
	}

	s.started = true
	s.logger.Info(ctx, "risk analysis service started",
		logger.Int("historySize", s.historySize),
		logger.Int("maxResultsLimit", s.maxResultsLimit),
	)
	return nil
}

// Stop shuts down the service. The run store is purely in-memory, so
// there is nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.logger.Info(context.Background(), "risk analysis service stopped")
}

// Analyze runs the full merge-and-score pipeline over the three raw
// record sets and records the result as the latest run. Every call
// rebuilds all profiles from scratch; there are no incremental updates.
func (s *Service) Analyze(ctx context.Context, attendance []model.AttendanceRecord, assessment []model.AssessmentRecord, attempts []model.AttemptsRecord) (model.Run, error) {
	s.mu.RLock()
	store, scorer, started := s.store, s.scorer, s.started
	s.mu.RUnlock()
	if !started || store == nil || scorer == nil {
		return model.Run{}, ErrNotStarted
	}

	start := time.Now()
	profiles := analysis.AnalyzeAllWith(scorer, attendance, assessment, attempts)
	dist := analysis.DistributionOf(profiles)

	run := model.Run{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		Profiles:     profiles,
		Distribution: dist,
	}
	if err := store.SaveRun(ctx, run); err != nil {
		return model.Run{}, fmt.Errorf("save run: %w", err)
	}

	recordRunMetrics(run, time.Since(start), store.Count(ctx))

	s.logger.Info(ctx, "analysis run completed",
		logger.String("runID", run.ID),
		logger.Int("students", len(profiles)),
		logger.Int("atRisk", dist.AtRisk),
		logger.Int("watchlist", dist.Watchlist),
		logger.Int("safe", dist.Safe),
	)
	return run, nil
}

func recordRunMetrics(run model.Run, elapsed time.Duration, runsRetained int) {
	metrics.RecordAnalysis(float64(elapsed.Microseconds()) / 1000.0)
	metrics.RecordStudentsScored(len(run.Profiles))
	for _, p := range run.Profiles {
		for _, f := range p.Flags {
			metrics.RecordFlagRaised(f.Rule)
		}
	}
	d := run.Distribution
	metrics.UpdateStudentsByLevel(d.Safe, d.Watchlist, d.AtRisk)
	metrics.UpdateRosterSize(len(run.Profiles))
	metrics.UpdateRunsRetained(runsRetained)
}

// Results returns up to n profiles from the latest run, most at-risk
// first. n is clamped to the configured maximum.
func (s *Service) Results(ctx context.Context, n int) ([]model.StudentRiskProfile, error) {
	if n < 1 {
		return nil, ErrInvalidLimit
	}
	if n > s.maxResultsLimit {
		n = s.maxResultsLimit
	}
	store, err := s.runStore()
	if err != nil {
		return nil, err
	}

	run, err := store.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if n > len(run.Profiles) {
		n = len(run.Profiles)
	}
	return run.Profiles[:n], nil
}

// Student returns one student's risk profile from the latest run.
func (s *Service) Student(ctx context.Context, studentID string) (model.StudentRiskProfile, error) {
	store, err := s.runStore()
	if err != nil {
		return model.StudentRiskProfile{}, err
	}
	return store.Student(ctx, studentID)
}

// Distribution returns the latest run's risk level counts.
func (s *Service) Distribution(ctx context.Context) (model.Distribution, error) {
	store, err := s.runStore()
	if err != nil {
		return model.Distribution{}, err
	}
	run, err := store.Latest(ctx)
	if err != nil {
		return model.Distribution{}, err
	}
	return run.Distribution, nil
}

// LatestRun returns the latest complete run.
func (s *Service) LatestRun(ctx context.Context) (model.Run, error) {
	store, err := s.runStore()
	if err != nil {
		return model.Run{}, err
	}
	return store.Latest(ctx)
}

// runStore returns the store, or ErrNotStarted before Start.
func (s *Service) runStore() (repository.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.store == nil {
		return nil, ErrNotStarted
	}
	return s.store, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":         s.started,
		"historySize":     s.historySize,
		"maxResultsLimit": s.maxResultsLimit,
	}

	if s.store != nil {
		ctx := context.Background()
		stats["runsRetained"] = s.store.Count(ctx)
		if run, err := s.store.Latest(ctx); err == nil {
			stats["lastRunID"] = run.ID
			stats["lastRunAt"] = run.CreatedAt
			stats["rosterSize"] = len(run.Profiles)
		}
	}
	return stats
}
