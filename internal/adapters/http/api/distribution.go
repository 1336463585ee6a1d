// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/okian/beacon/internal/domain/model"
)

// DistributionDependencies defines the interface for distribution queries.
type DistributionDependencies interface {
	Distribution(ctx context.Context) (model.Distribution, error)
}

// DistributionHandler handles risk-level distribution requests.
type DistributionHandler struct {
	deps DistributionDependencies
}

// NewDistributionHandler creates a new distribution handler.
func NewDistributionHandler(deps DistributionDependencies) *DistributionHandler {
	return &DistributionHandler{deps: deps}
}

// HandleGetDistribution handles GET /distribution requests.
func (h *DistributionHandler) HandleGetDistribution(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_distribution"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	dist, err := h.deps.Distribution(r.Context())
	if err != nil {
		if isNoRuns(err) {
			writeError(w, http.StatusNotFound, "no_analysis", NewKind(op, ErrNoAnalysis))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, dist)
}
