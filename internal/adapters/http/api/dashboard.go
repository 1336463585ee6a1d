// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"net/http"
)

// dashboardHandler handles dashboard requests.
type dashboardHandler struct{}

// newDashboardHandler creates a new dashboard handler.
func newDashboardHandler() *dashboardHandler {
	return &dashboardHandler{}
}

// HandleDashboard handles GET /dashboard requests.
// Serves an HTML page that uploads source files and renders the ranked
// risk table and distribution chart from /upload, /results and
// /distribution. Pure presentation glue; all logic lives server-side.
func (h *dashboardHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	http.ServeFileFS(w, r, dashboardFS, "dashboard.html")
}
