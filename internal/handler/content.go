package handler

import (
	"log/slog"
	"net/http"

	writingSvc "inkwell/internal/domain/services/writing"
	"inkwell/internal/httputil"
)

// ContentHandler handles HTTP requests for node content and versions
type ContentHandler struct {
	contentService writingSvc.ContentService
	logger         *slog.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(contentService writingSvc.ContentService, logger *slog.Logger) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		logger:         logger,
	}
}

// Get returns the node's current text. A never-saved node reads as
// empty text, not 404.
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Node ID is required")
		return
	}

	text, err := h.contentService.GetContent(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"content": text})
}

// saveRequest is the body of a content save call
type saveRequest struct {
	Content string `json:"content"`
}

// Save overwrites the node's text through the versioning save path
func (h *ContentHandler) Save(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Node ID is required")
		return
	}

	var req saveRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.contentService.SaveContent(r.Context(), id, req.Content); err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"saved": true})
}

// ListVersions returns the node's snapshots, newest first
func (h *ContentHandler) ListVersions(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Node ID is required")
		return
	}

	versions, err := h.contentService.ListVersions(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, versions)
}

// GetVersion returns a snapshot's full text
func (h *ContentHandler) GetVersion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	label := r.PathValue("label")
	if id == "" || label == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Node ID and version label are required")
		return
	}

	text, err := h.contentService.GetVersion(r.Context(), id, label)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]string{"content": text})
}

// RestoreVersion saves a snapshot's text back through the normal save
// path
func (h *ContentHandler) RestoreVersion(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	label := r.PathValue("label")
	if id == "" || label == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Node ID and version label are required")
		return
	}

	restored, err := h.contentService.RestoreVersion(r.Context(), id, label)
	if err != nil {
		handleError(w, err)
		return
	}
	if !restored {
		httputil.RespondError(w, http.StatusNotFound, "version not found")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"restored": true})
}
