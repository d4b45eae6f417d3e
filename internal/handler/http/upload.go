package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/geraldx2005/attendance-backend-go/internal/domain/ingest"
	"github.com/geraldx2005/attendance-backend-go/internal/domain/upload"
	"github.com/geraldx2005/attendance-backend-go/internal/handler/http/response"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/sse"
	"github.com/geraldx2005/attendance-backend-go/internal/pkg/tabular"
	"github.com/go-chi/chi/v5"
)

type UploadHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Progress(w http.ResponseWriter, r *http.Request)
}

type uploadHandlerImpl struct {
	ingestService  ingest.IngestService
	uploadService  upload.UploadService
	hub            *sse.Hub
	maxUploadBytes int64
}

func NewUploadHandler(
	ingestService ingest.IngestService,
	uploadService upload.UploadService,
	hub *sse.Hub,
	maxUploadBytes int64,
) UploadHandler {
	return &uploadHandlerImpl{
		ingestService:  ingestService,
		uploadService:  uploadService,
		hub:            hub,
		maxUploadBytes: maxUploadBytes,
	}
}

// Upload implements UploadHandler. The optional "job" form field names a
// progress stream: pass the same token to the progress endpoint to follow
// the ingestion live. The optional "source" field tags punches as coming
// from a biometric device export.
func (h *uploadHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+1024)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		response.PayloadTooLarge(w, "Upload exceeds the size limit")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "A file field is required", nil)
		return
	}
	defer file.Close()

	var rows []tabular.Row
	if strings.EqualFold(filepath.Ext(header.Filename), ".xlsx") {
		rows, err = tabular.ReadXLSX(file, h.maxUploadBytes)
	} else {
		rows, err = tabular.ReadCSV(file, h.maxUploadBytes)
	}
	if err != nil {
		if errors.Is(err, tabular.ErrFileTooLarge) {
			response.HandleError(w, err)
			return
		}
		response.BadRequest(w, "Could not parse the uploaded file", nil)
		return
	}

	var progress ingest.ProgressFunc
	if job := r.FormValue("job"); job != "" {
		progress = func(p ingest.Progress) {
			h.hub.Publish(job, sse.Event{Job: job, Event: "progress", Data: p})
		}
	}

	summary, err := h.ingestService.Ingest(r.Context(), ingest.IngestRequest{
		Filename: header.Filename,
		Rows:     rows,
		Source:   r.FormValue("source"),
		Progress: progress,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Upload ingested", summary)
}

// List implements UploadHandler
func (h *uploadHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	uploads, err := h.uploadService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, uploads)
}

// Get implements UploadHandler
func (h *uploadHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	up, err := h.uploadService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, up)
}

// Delete implements UploadHandler
func (h *uploadHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	result, err := h.uploadService.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Upload deleted", result)
}

// Progress implements UploadHandler - SSE stream of ingestion progress.
// The stream ends when the job reaches a terminal phase or the client
// disconnects.
func (h *uploadHandlerImpl) Progress(w http.ResponseWriter, r *http.Request) {
	job := chi.URLParam(r, "job")
	if job == "" {
		response.BadRequest(w, "A job token is required", nil)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		response.InternalServerError(w, "Streaming is not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events, cleanup := h.hub.Subscribe(job)
	defer cleanup()

	for {
		select {
		case <-r.Context().Done():
			return
		case ev, open := <-events:
			if !open {
				return
			}

			data, err := json.Marshal(ev.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Event, data)
			flusher.Flush()

			if p, ok := ev.Data.(ingest.Progress); ok {
				if p.Phase == ingest.PhaseComplete || p.Phase == ingest.PhaseError {
					h.hub.Forget(job)
					return
				}
			}
		}
	}
}
