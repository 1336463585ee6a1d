// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/okian/beacon/internal/domain/model"
)

// defaultResultsLimit applies when no limit query parameter is given.
const defaultResultsLimit = 50

// ResultsDependencies defines the interface for results queries.
type ResultsDependencies interface {
	Results(ctx context.Context, n int) ([]model.StudentRiskProfile, error)
}

// ResultsHandler handles ranked results requests.
type ResultsHandler struct {
	deps     ResultsDependencies
	maxLimit int
}

// NewResultsHandler creates a new results handler.
func NewResultsHandler(deps ResultsDependencies, maxLimit int) *ResultsHandler {
	return &ResultsHandler{deps: deps, maxLimit: maxLimit}
}

// HandleGetResults handles GET /results?limit=N requests. Profiles come
// back most at-risk first, from the latest analysis run.
func (h *ResultsHandler) HandleGetResults(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_results"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	n := defaultResultsLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		n = parsed
	}
	if h.maxLimit > 0 && n > h.maxLimit {
		writeError(w, http.StatusBadRequest, "limit_exceeded", NewKind(op, ErrBadRequest))
		return
	}
	profiles, err := h.deps.Results(r.Context(), n)
	if err != nil {
		if isNoRuns(err) {
			writeError(w, http.StatusNotFound, "no_analysis", NewKind(op, ErrNoAnalysis))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, profiles)
}
