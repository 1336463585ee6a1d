// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/okian/beacon/internal/domain/model"
)

// StudentDependencies defines the interface for single-student lookups.
type StudentDependencies interface {
	Student(ctx context.Context, studentID string) (model.StudentRiskProfile, error)
}

// StudentHandler handles per-student risk profile requests.
type StudentHandler struct {
	deps StudentDependencies
}

// NewStudentHandler creates a new student handler.
func NewStudentHandler(deps StudentDependencies) *StudentHandler {
	return &StudentHandler{deps: deps}
}

// HandleGetStudent handles GET /students/{student_id} requests.
// Student IDs are matched as-is: no case folding or normalization.
func (h *StudentHandler) HandleGetStudent(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_student"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/students/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	profile, err := h.deps.Student(r.Context(), id)
	if err != nil {
		switch {
		case isNotFound(err):
			writeError(w, http.StatusNotFound, "not_found", err)
		case isNoRuns(err):
			writeError(w, http.StatusNotFound, "no_analysis", NewKind(op, ErrNoAnalysis))
		default:
			writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		}
		return
	}
	writeJSON(w, http.StatusOK, profile)
}
