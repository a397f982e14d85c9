package writing

import (
	"context"
	"errors"
)

// Collaborator interfaces consumed by the interactive shell. They are
// implemented outside this module; the core only defines their shape.

// SettingsStore is a simple key-value store holding shell-level
// configuration such as the output folder and generation credentials.
type SettingsStore interface {
	// Get returns the value for a key. exists=false when unset.
	Get(ctx context.Context, key string) (value string, exists bool, err error)

	// Set stores a value for a key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
}

// ExportEntry is one titled block of an export, in document order.
type ExportEntry struct {
	Title   string
	Content string
}

// Exporter renders an ordered sequence of titled content blocks for a
// work to an external file.
type Exporter interface {
	Export(ctx context.Context, workName string, entries []ExportEntry) error
}

// Generation service failure modes.
var (
	ErrCredentialMissing = errors.New("generation credential missing")
	ErrContentBlocked    = errors.New("generation content blocked")
	ErrEmptyResponse     = errors.New("generation returned empty response")
)

// Generator is the external text-generation service. The context
// argument is exactly the ContextService.Compose output.
type Generator interface {
	GenerateText(ctx context.Context, prompt, contextText string) (string, error)
}
