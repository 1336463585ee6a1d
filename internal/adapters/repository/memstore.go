package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/okian/beacon/internal/domain/model"
)

// defaultHistorySize bounds how many past runs the store retains.
const defaultHistorySize = 16

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithHistorySize bounds the number of retained runs.
func WithHistorySize(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.historySize = n
		}
	}
}

// MemoryStore is an in-memory Store implementation. Safe for concurrent
// readers while an analysis run is being saved.
type MemoryStore struct {
	mu          sync.RWMutex
	runs        []model.Run // oldest first, newest last
	byStudent   map[string]model.StudentRiskProfile
	historySize int
}

// NewMemoryStore creates an empty in-memory run store.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		historySize: defaultHistorySize,
		byStudent:   make(map[string]model.StudentRiskProfile),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SaveRun records run as the latest snapshot, evicting the oldest run
// once the history bound is reached. The per-student index always mirrors
// the latest run only.
func (s *MemoryStore) SaveRun(_ context.Context, run model.Run) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs = append(s.runs, run)
	if len(s.runs) > s.historySize {
		s.runs = s.runs[len(s.runs)-s.historySize:]
	}

	s.byStudent = make(map[string]model.StudentRiskProfile, len(run.Profiles))
	for _, p := range run.Profiles {
		s.byStudent[p.StudentID] = p
	}
	return nil
}

// Latest returns the most recent run.
func (s *MemoryStore) Latest(_ context.Context) (model.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.runs) == 0 {
		return model.Run{}, ErrNoRuns
	}
	return s.runs[len(s.runs)-1], nil
}

// Student returns one student's profile from the latest run.
func (s *MemoryStore) Student(_ context.Context, studentID string) (model.StudentRiskProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.runs) == 0 {
		return model.StudentRiskProfile{}, ErrNoRuns
	}
	p, ok := s.byStudent[studentID]
	if !ok {
		return model.StudentRiskProfile{}, fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
	}
	return p, nil
}

// Count returns the number of retained runs.
func (s *MemoryStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.runs)
}
