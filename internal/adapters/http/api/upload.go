// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"mime/multipart"
	"net/http"
	"time"

	"github.com/okian/beacon/internal/adapters/ingest"
	"github.com/okian/beacon/internal/domain/model"
	"github.com/okian/beacon/pkg/metrics"
)

// defaultMaxUploadBytes bounds one multipart upload when no cap is configured.
const defaultMaxUploadBytes = 8 << 20

// Multipart form field names, one per source file.
const (
	fieldAttendance = "attendance"
	fieldAssessment = "assessment"
	fieldAttempts   = "attempts"
)

// UploadHandler handles multipart CSV uploads: the file-ingestion
// collaborator in front of the pure pipeline.
type UploadHandler struct {
	deps     AnalyzeDependencies
	maxBytes int64
}

// NewUploadHandler creates a new upload handler.
func NewUploadHandler(deps AnalyzeDependencies, maxBytes int64) *UploadHandler {
	if maxBytes <= 0 {
		maxBytes = defaultMaxUploadBytes
	}
	return &UploadHandler{deps: deps, maxBytes: maxBytes}
}

// HandlePostUpload handles POST /upload requests carrying up to three CSV
// files (fields: attendance, assessment, attempts). Missing files are
// treated as empty sources; malformed files reject the whole request.
func (h *UploadHandler) HandlePostUpload(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_upload"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}

	var attendance []model.AttendanceRecord
	var assessment []model.AssessmentRecord
	var attempts []model.AttemptsRecord

	if f, ok := formFile(r, fieldAttendance); ok {
		defer f.Close()
		var err error
		if attendance, err = ingest.ReadAttendance(f); err != nil {
			metrics.RecordIngestError()
			writeError(w, http.StatusBadRequest, "bad_source", WrapKind(op, ErrBadRequest, err))
			return
		}
	}
	if f, ok := formFile(r, fieldAssessment); ok {
		defer f.Close()
		var err error
		if assessment, err = ingest.ReadAssessment(f); err != nil {
			metrics.RecordIngestError()
			writeError(w, http.StatusBadRequest, "bad_source", WrapKind(op, ErrBadRequest, err))
			return
		}
	}
	if f, ok := formFile(r, fieldAttempts); ok {
		defer f.Close()
		var err error
		if attempts, err = ingest.ReadAttempts(f); err != nil {
			metrics.RecordIngestError()
			writeError(w, http.StatusBadRequest, "bad_source", WrapKind(op, ErrBadRequest, err))
			return
		}
	}

	run, err := h.deps.Analyze(r.Context(), attendance, assessment, attempts)
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

// formFile opens one named upload, reporting false when absent.
func formFile(r *http.Request, field string) (multipart.File, bool) {
	f, _, err := r.FormFile(field)
	if err != nil {
		return nil, false
	}
	return f, true
}
