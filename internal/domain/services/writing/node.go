package writing

import (
	"context"

	"inkwell/internal/domain/models/writing"
)

// NodeService handles structural operations on the work tree
type NodeService interface {
	// CreateNode creates a node under the given parent (nil = root).
	// Fails with ErrNotFound when the parent does not reference an
	// existing node in the same work.
	CreateNode(ctx context.Context, req *CreateNodeRequest) (*writing.Node, error)

	// RenameNode updates a node's display title. No-op success (false)
	// if the node does not exist.
	RenameNode(ctx context.Context, nodeID, title string) (bool, error)

	// DeleteNode deletes a node and all its descendants, cascading to
	// contents and versions. Idempotent: a missing node reports false,
	// not an error.
	DeleteNode(ctx context.Context, nodeID string) (bool, error)
}

// CreateNodeRequest represents a node creation request
type CreateNodeRequest struct {
	WorkID    string           `json:"work_id"`
	ParentID  *string          `json:"parent_id,omitempty"`
	Kind      writing.NodeKind `json:"kind"`
	Title     string           `json:"title"`
	SortOrder int              `json:"sort_order"`
}
