package handler

import (
	"log/slog"
	"net/http"

	writingSvc "inkwell/internal/domain/services/writing"
	"inkwell/internal/httputil"
)

// ContextHandler handles HTTP requests for context assembly and token
// estimation
type ContextHandler struct {
	treeService    writingSvc.TreeService
	contextService writingSvc.ContextService
	logger         *slog.Logger
}

// NewContextHandler creates a new context handler
func NewContextHandler(
	treeService writingSvc.TreeService,
	contextService writingSvc.ContextService,
	logger *slog.Logger,
) *ContextHandler {
	return &ContextHandler{
		treeService:    treeService,
		contextService: contextService,
		logger:         logger,
	}
}

// assembleRequest selects nodes of a work for reference context.
// SelectedIDs order is preserved in the assembled payload.
type assembleRequest struct {
	WorkID      string   `json:"work_id"`
	SelectedIDs []string `json:"selected_ids"`
	Prompt      string   `json:"prompt"`
	BaseContent string   `json:"base_content"`
}

// assembleResponse carries the assembled payload and its running cost
// estimate.
type assembleResponse struct {
	Assembled       string `json:"assembled"`
	FullContext     string `json:"full_context"`
	EstimatedTokens int    `json:"estimated_tokens"`
}

// Assemble builds the reference context from the selected nodes and
// estimates the token cost of the prompt plus full context.
func (h *ContextHandler) Assemble(w http.ResponseWriter, r *http.Request) {
	var req assembleRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.WorkID == "" {
		httputil.RespondError(w, http.StatusBadRequest, "work_id is required")
		return
	}

	tree, err := h.treeService.GetWorkTree(r.Context(), req.WorkID)
	if err != nil {
		handleError(w, err)
		return
	}

	assembled, err := h.contextService.Assemble(r.Context(), req.SelectedIDs, tree)
	if err != nil {
		handleError(w, err)
		return
	}

	fullContext := h.contextService.Compose(req.BaseContent, assembled)
	estimated := h.contextService.EstimateTokens(r.Context(), req.Prompt, fullContext)

	httputil.RespondJSON(w, http.StatusOK, assembleResponse{
		Assembled:       assembled,
		FullContext:     fullContext,
		EstimatedTokens: estimated,
	})
}
