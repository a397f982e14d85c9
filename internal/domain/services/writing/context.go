package writing

import (
	"context"

	"inkwell/internal/domain/models/writing"
)

// ContextService assembles selected node content into a single payload
// for the generation service and reports its estimated token cost.
type ContextService interface {
	// Assemble concatenates the selected nodes' content in selection
	// order, one structured section per node. Nodes missing from the
	// tree snapshot or with blank content are skipped; a per-node fetch
	// failure skips that section rather than aborting the assembly.
	// Returns an empty string when no node qualifies.
	Assemble(ctx context.Context, selectedIDs []string, tree []*writing.TreeNode) (string, error)

	// Compose produces the full request context handed to the
	// generation service: the base content, followed by the reference
	// block when any sections were assembled.
	Compose(baseContent, assembled string) string

	// EstimateTokens reports the token cost of a prompt plus its full
	// context. Recomputed whenever the prompt, the selection or the
	// base content changes.
	EstimateTokens(ctx context.Context, prompt, fullContext string) int
}
