package handler

import (
	"log/slog"
	"net/http"

	writingSvc "inkwell/internal/domain/services/writing"
	"inkwell/internal/httputil"
)

// TreeHandler handles HTTP requests for tree operations
type TreeHandler struct {
	treeService writingSvc.TreeService
	logger      *slog.Logger
}

// NewTreeHandler creates a new tree handler
func NewTreeHandler(treeService writingSvc.TreeService, logger *slog.Logger) *TreeHandler {
	return &TreeHandler{
		treeService: treeService,
		logger:      logger,
	}
}

// GetTree returns the nested node tree for a work
func (h *TreeHandler) GetTree(w http.ResponseWriter, r *http.Request) {
	workID := r.PathValue("id")
	if workID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Work ID is required")
		return
	}

	tree, err := h.treeService.GetWorkTree(r.Context(), workID)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, tree)
}
