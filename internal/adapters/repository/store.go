// Package repository defines the analysis-run store interface and errors.
package repository

import (
	"context"

	"github.com/okian/beacon/internal/domain/model"
)

// Store holds completed analysis runs for the display endpoints. Runs are
// ephemeral snapshots: every analysis replaces the previous view, nothing
// survives a restart.
type Store interface {
	// SaveRun records a completed run as the latest snapshot.
	SaveRun(ctx context.Context, run model.Run) error

	// Latest returns the most recent run.
	// Returns ErrNoRuns when no analysis has happened yet.
	Latest(ctx context.Context) (model.Run, error)

	// Student returns one student's risk profile from the latest run.
	// Returns ErrStudentNotFound if the id is unknown to that run.
	Student(ctx context.Context, studentID string) (model.StudentRiskProfile, error)

	// Count returns the number of runs currently retained.
	Count(ctx context.Context) int
}
