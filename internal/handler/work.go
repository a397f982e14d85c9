package handler

import (
	"log/slog"
	"net/http"

	writingSvc "inkwell/internal/domain/services/writing"
	"inkwell/internal/httputil"
)

// WorkHandler handles HTTP requests for work operations
type WorkHandler struct {
	workService writingSvc.WorkService
	logger      *slog.Logger
}

// NewWorkHandler creates a new work handler
func NewWorkHandler(workService writingSvc.WorkService, logger *slog.Logger) *WorkHandler {
	return &WorkHandler{
		workService: workService,
		logger:      logger,
	}
}

// Create creates a new work with its default structure
func (h *WorkHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req writingSvc.CreateWorkRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	work, err := h.workService.CreateWork(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, work)
}

// List returns all works, most recently updated first
func (h *WorkHandler) List(w http.ResponseWriter, r *http.Request) {
	works, err := h.workService.ListWorks(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, works)
}

// Get returns a single work
func (h *WorkHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Work ID is required")
		return
	}

	work, err := h.workService.GetWork(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, work)
}

// Update updates a work's name and description
func (h *WorkHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Work ID is required")
		return
	}

	var req writingSvc.UpdateWorkRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.workService.UpdateWork(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}
	if !updated {
		httputil.RespondError(w, http.StatusNotFound, "work not found")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// Delete deletes a work and everything it owns
func (h *WorkHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Work ID is required")
		return
	}

	deleted, err := h.workService.DeleteWork(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	if !deleted {
		httputil.RespondError(w, http.StatusNotFound, "work not found")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
