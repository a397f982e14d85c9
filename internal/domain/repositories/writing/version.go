package writing

import (
	"context"

	"inkwell/internal/domain/models/writing"
)

// VersionRepository defines data access operations for content snapshots
type VersionRepository interface {
	// Insert appends a snapshot. Snapshots are never mutated.
	Insert(ctx context.Context, version *writing.Version) error

	// Prune deletes all versions for a node except the keep
	// most-recently-created ones.
	Prune(ctx context.Context, nodeID string, keep int) error

	// List returns the node's versions descending by creation time,
	// with read-time previews instead of full text.
	List(ctx context.Context, nodeID string) ([]writing.VersionInfo, error)

	// Get returns the snapshot text for a label. exists=false when the
	// label is absent.
	Get(ctx context.Context, nodeID, label string) (text string, exists bool, err error)

	// LabelExists reports whether a label is already taken for a node.
	LabelExists(ctx context.Context, nodeID, label string) (bool, error)
}
