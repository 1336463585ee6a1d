// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/okian/beacon/internal/domain/model"
)

// AnalyzeDependencies defines the interface for analysis operations.
type AnalyzeDependencies interface {
	Analyze(ctx context.Context, attendance []model.AttendanceRecord, assessment []model.AssessmentRecord, attempts []model.AttemptsRecord) (model.Run, error)
}

// AnalyzeHandler handles analysis requests.
type AnalyzeHandler struct {
	deps AnalyzeDependencies
}

// NewAnalyzeHandler creates a new analyze handler.
func NewAnalyzeHandler(deps AnalyzeDependencies) *AnalyzeHandler {
	return &AnalyzeHandler{deps: deps}
}

// analyzeRequest mirrors the JSON body for POST /analyze: three arrays of
// already-parsed records. Numeric fields must be numbers, not strings.
type analyzeRequest struct {
	Attendance []model.AttendanceRecord `json:"attendance"`
	Assessment []model.AssessmentRecord `json:"assessment"`
	Attempts   []model.AttemptsRecord   `json:"attempts"`
}

// HandlePostAnalyze handles POST /analyze requests.
func (h *AnalyzeHandler) HandlePostAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_analyze"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req analyzeRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	run, err := h.deps.Analyze(r.Context(), req.Attendance, req.Assessment, req.Attempts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, runResponse{
		RunID:        run.ID,
		CreatedAt:    run.CreatedAt.Format(time.RFC3339),
		Students:     len(run.Profiles),
		Distribution: run.Distribution,
		Profiles:     run.Profiles,
	})
}
