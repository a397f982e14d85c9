package handler

import (
	"log/slog"
	"net/http"

	writingSvc "inkwell/internal/domain/services/writing"
	"inkwell/internal/httputil"
)

// PromptHandler handles HTTP requests for prompt templates
type PromptHandler struct {
	promptService writingSvc.PromptService
	logger        *slog.Logger
}

// NewPromptHandler creates a new prompt template handler
func NewPromptHandler(promptService writingSvc.PromptService, logger *slog.Logger) *PromptHandler {
	return &PromptHandler{
		promptService: promptService,
		logger:        logger,
	}
}

// Create creates a new prompt template
func (h *PromptHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req writingSvc.PromptRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	prompt, err := h.promptService.CreatePrompt(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, prompt)
}

// List returns all prompt templates, newest first
func (h *PromptHandler) List(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.promptService.ListPrompts(r.Context())
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prompts)
}

// Get returns a single prompt template
func (h *PromptHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Prompt ID is required")
		return
	}

	prompt, err := h.promptService.GetPrompt(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, prompt)
}

// Update updates a prompt template
func (h *PromptHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Prompt ID is required")
		return
	}

	var req writingSvc.PromptRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := h.promptService.UpdatePrompt(r.Context(), id, &req)
	if err != nil {
		handleError(w, err)
		return
	}
	if !updated {
		httputil.RespondError(w, http.StatusNotFound, "prompt template not found")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"updated": true})
}

// Delete deletes a prompt template
func (h *PromptHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Prompt ID is required")
		return
	}

	deleted, err := h.promptService.DeletePrompt(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}
	if !deleted {
		httputil.RespondError(w, http.StatusNotFound, "prompt template not found")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}
