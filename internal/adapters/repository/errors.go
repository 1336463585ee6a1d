package repository

import "errors"

// Sentinel kinds for run-store errors.
var (
	ErrNoRuns          = errors.New("no analysis runs recorded")
	ErrStudentNotFound = errors.New("student not found")
)
