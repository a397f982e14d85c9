package writing

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	models "inkwell/internal/domain/models/writing"
	writingRepo "inkwell/internal/domain/repositories/writing"
	writingSvc "inkwell/internal/domain/services/writing"
	"inkwell/internal/token"
)

// referenceHeader separates the caller's working content from the
// assembled reference sections in the composed request context.
const referenceHeader = "===== Reference Material ====="

// contextService implements the ContextService interface
type contextService struct {
	contentRepo writingRepo.ContentRepository
	estimator   token.Estimator
	logger      *slog.Logger
}

// NewContextService creates a new context service
func NewContextService(
	contentRepo writingRepo.ContentRepository,
	estimator token.Estimator,
	logger *slog.Logger,
) writingSvc.ContextService {
	return &contextService{
		contentRepo: contentRepo,
		estimator:   estimator,
		logger:      logger,
	}
}

// Assemble concatenates the selected nodes' content in selection order,
// one structured section per qualifying node. Nodes without a match in
// the tree snapshot and nodes with blank content are skipped; a
// per-node fetch failure skips that section rather than aborting the
// whole assembly - a partial context is preferable to none.
func (s *contextService) Assemble(ctx context.Context, selectedIDs []string, tree []*models.TreeNode) (string, error) {
	index := indexTree(tree)

	var sections []string
	for _, id := range selectedIDs {
		node, ok := index[id]
		if !ok {
			continue
		}

		text, _, err := s.contentRepo.Get(ctx, id)
		if err != nil {
			s.logger.Warn("section skipped, content fetch failed",
				"node_id", id,
				"error", err,
			)
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		sections = append(sections, fmt.Sprintf("---\nSection: %s\nContent: |-\n%s\n", node.Title, text))
	}

	return strings.Join(sections, "\n"), nil
}

// Compose produces the full request context for the generation
// service: the base working content, then the reference block when any
// sections were assembled.
func (s *contextService) Compose(baseContent, assembled string) string {
	if assembled == "" {
		return baseContent
	}
	return baseContent + "\n\n" + referenceHeader + "\n" + assembled
}

// EstimateTokens reports the combined token cost of a prompt and its
// full context.
func (s *contextService) EstimateTokens(_ context.Context, prompt, fullContext string) int {
	return s.estimator.Estimate(prompt) + s.estimator.Estimate(fullContext)
}

// indexTree flattens a tree snapshot into an ID lookup.
func indexTree(tree []*models.TreeNode) map[string]*models.TreeNode {
	index := make(map[string]*models.TreeNode)
	var walk func(nodes []*models.TreeNode)
	walk = func(nodes []*models.TreeNode) {
		for _, node := range nodes {
			index[node.ID] = node
			walk(node.Children)
		}
	}
	walk(tree)
	return index
}
