package writing

import (
	"context"

	"inkwell/internal/domain/models/writing"
)

// NodeRepository defines data access operations for structure nodes
type NodeRepository interface {
	// Create creates a new node
	Create(ctx context.Context, node *writing.Node) error

	// GetByID retrieves a node by ID
	GetByID(ctx context.Context, id string) (*writing.Node, error)

	// Rename updates a node's title. Reports false if the node does
	// not exist.
	Rename(ctx context.Context, id, title string) (bool, error)

	// Delete deletes a node and all its descendants, along with their
	// contents and versions. Reports false if the node does not exist.
	Delete(ctx context.Context, id string) (bool, error)

	// ListRows retrieves the flat node+content rows for a work in a
	// single atomic read, ordered by (parent_id, sort_order, id).
	ListRows(ctx context.Context, workID string) ([]writing.NodeRow, error)
}
