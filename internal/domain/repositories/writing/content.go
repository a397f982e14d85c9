package writing

import (
	"context"
)

// ContentRepository defines data access operations for node content
type ContentRepository interface {
	// Get returns the current text for a node. A node that has never
	// been saved reads as empty text with exists=false, not an error.
	Get(ctx context.Context, nodeID string) (text string, exists bool, err error)

	// Upsert writes the current text for a node, creating the row on
	// first save and refreshing updated_at thereafter.
	Upsert(ctx context.Context, nodeID, text string) error
}
