package handler

import (
	"log/slog"
	"net/http"

	writingSvc "inkwell/internal/domain/services/writing"
	"inkwell/internal/httputil"
)

// NodeHandler handles HTTP requests for structural node operations
type NodeHandler struct {
	nodeService writingSvc.NodeService
	logger      *slog.Logger
}

// NewNodeHandler creates a new node handler
func NewNodeHandler(nodeService writingSvc.NodeService, logger *slog.Logger) *NodeHandler {
	return &NodeHandler{
		nodeService: nodeService,
		logger:      logger,
	}
}

// Create creates a new node in a work's tree
func (h *NodeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req writingSvc.CreateNodeRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	node, err := h.nodeService.CreateNode(r.Context(), &req)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, node)
}

// renameRequest is the body of a rename call
type renameRequest struct {
	Title string `json:"title"`
}

// Rename updates a node's display title
func (h *NodeHandler) Rename(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Node ID is required")
		return
	}

	var req renameRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	renamed, err := h.nodeService.RenameNode(r.Context(), id, req.Title)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"renamed": renamed})
}

// Delete deletes a node and its entire subtree
func (h *NodeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		httputil.RespondError(w, http.StatusBadRequest, "Node ID is required")
		return
	}

	deleted, err := h.nodeService.DeleteNode(r.Context(), id)
	if err != nil {
		handleError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}
