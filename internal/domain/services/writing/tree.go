package writing

import (
	"context"

	"inkwell/internal/domain/models/writing"
)

// TreeService builds the nested, display-ready projection of a work
type TreeService interface {
	// GetWorkTree returns the work's node forest with content-presence
	// flags and previews, in sibling order.
	GetWorkTree(ctx context.Context, workID string) ([]*writing.TreeNode, error)
}
