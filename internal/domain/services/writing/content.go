package writing

import (
	"context"

	"inkwell/internal/domain/models/writing"
)

// ContentService handles node content and its version history
type ContentService interface {
	// GetContent returns the node's current text. A node that has
	// never been saved reads as empty text, not an error.
	GetContent(ctx context.Context, nodeID string) (string, error)

	// SaveContent overwrites the node's text. When a prior text exists
	// and differs, it is snapshotted into the version history first and
	// retention is pruned; identical or first-time saves produce no
	// snapshot. A snapshot failure fails the whole save.
	SaveContent(ctx context.Context, nodeID, text string) error

	// ListVersions returns the node's snapshots, newest first.
	ListVersions(ctx context.Context, nodeID string) ([]writing.VersionInfo, error)

	// GetVersion returns a snapshot's full text.
	GetVersion(ctx context.Context, nodeID, label string) (string, error)

	// RestoreVersion saves a snapshot's text back through the normal
	// save path, so the pre-restore text is itself versioned. Reports
	// false without side effects when the label is absent.
	RestoreVersion(ctx context.Context, nodeID, label string) (bool, error)
}
