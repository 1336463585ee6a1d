// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/beacon/internal/adapters/repository"
	"github.com/okian/beacon/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Analyze runs the full merge-and-score pipeline and records the run.
	Analyze(ctx context.Context, attendance []model.AttendanceRecord, assessment []model.AssessmentRecord, attempts []model.AttemptsRecord) (model.Run, error)

	// Read operations expose the latest run.
	Results(ctx context.Context, n int) ([]model.StudentRiskProfile, error)
	Student(ctx context.Context, studentID string) (model.StudentRiskProfile, error)
	Distribution(ctx context.Context) (model.Distribution, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler       *HealthHandler
	statsHandler        *StatsHandler
	analyzeHandler      *AnalyzeHandler
	uploadHandler       *UploadHandler
	resultsHandler      *ResultsHandler
	studentHandler      *StudentHandler
	distributionHandler *DistributionHandler
	dashboardHandler    *dashboardHandler
}

// Options carries handler tunables provided by config.
type Options struct {
	// MaxResultsLimit caps GET /results?limit.
	MaxResultsLimit int
	// MaxUploadBytes bounds one multipart CSV upload.
	MaxUploadBytes int64
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, opts Options) *Server {
	return &Server{
		healthHandler:       NewHealthHandler(),
		statsHandler:        NewStatsHandler(statsProvider),
		analyzeHandler:      NewAnalyzeHandler(deps),
		uploadHandler:       NewUploadHandler(deps, opts.MaxUploadBytes),
		resultsHandler:      NewResultsHandler(deps, opts.MaxResultsLimit),
		studentHandler:      NewStudentHandler(deps),
		distributionHandler: NewDistributionHandler(deps),
		dashboardHandler:    newDashboardHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/dashboard", s.dashboardHandler.HandleDashboard)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/analyze", MetricsMiddleware(s.analyzeHandler.HandlePostAnalyze, "analyze"))
	mux.HandleFunc("/upload", MetricsMiddleware(s.uploadHandler.HandlePostUpload, "upload"))
	mux.HandleFunc("/results", MetricsMiddleware(s.resultsHandler.HandleGetResults, "results"))
	mux.HandleFunc("/students/", MetricsMiddleware(s.studentHandler.HandleGetStudent, "students"))
	mux.HandleFunc("/distribution", MetricsMiddleware(s.distributionHandler.HandleGetDistribution, "distribution"))
}

// runResponse is the JSON shape returned after a completed analysis.
type runResponse struct {
	RunID        string                     `json:"run_id"`
	CreatedAt    string                     `json:"created_at"`
	Students     int                        `json:"students"`
	Distribution model.Distribution         `json:"distribution"`
	Profiles     []model.StudentRiskProfile `json:"profiles"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found conditions to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrStudentNotFound)
}

// isNoRuns reports the "nothing analyzed yet" condition from the store.
func isNoRuns(err error) bool {
	return errors.Is(err, repository.ErrNoRuns)
}
