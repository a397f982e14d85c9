package writing

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"inkwell/internal/config"
	models "inkwell/internal/domain/models/writing"
	writingRepo "inkwell/internal/domain/repositories/writing"
	writingSvc "inkwell/internal/domain/services/writing"
)

// treeService implements the TreeService interface
type treeService struct {
	nodeRepo writingRepo.NodeRepository
	logger   *slog.Logger
}

// NewTreeService creates a new tree service
func NewTreeService(nodeRepo writingRepo.NodeRepository, logger *slog.Logger) writingSvc.TreeService {
	return &treeService{
		nodeRepo: nodeRepo,
		logger:   logger,
	}
}

// GetWorkTree reads the work's flat node+content rows atomically and
// projects them into the nested tree view.
func (s *treeService) GetWorkTree(ctx context.Context, workID string) ([]*models.TreeNode, error) {
	rows, err := s.nodeRepo.ListRows(ctx, workID)
	if err != nil {
		return nil, err
	}

	tree := BuildTree(rows)

	s.logger.Debug("work tree built",
		"work_id", workID,
		"node_count", len(rows),
	)

	return tree, nil
}

// BuildTree projects flat node+content rows into a nested forest.
// Pure transformation: no state, no I/O. Siblings are ordered by
// sort_order ascending, ties broken by ID; a node has content when its
// trimmed text is non-empty, and its preview is the leading characters
// of the trimmed text.
func BuildTree(rows []models.NodeRow) []*models.TreeNode {
	// Sort a copy by (sort_order, id) so children are appended to
	// their parents already in sibling order.
	sorted := make([]models.NodeRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].SortOrder != sorted[j].SortOrder {
			return sorted[i].SortOrder < sorted[j].SortOrder
		}
		return sorted[i].ID < sorted[j].ID
	})

	// First pass: create all tree nodes
	nodeMap := make(map[string]*models.TreeNode, len(sorted))
	for _, row := range sorted {
		trimmed := strings.TrimSpace(row.Content)
		nodeMap[row.ID] = &models.TreeNode{
			ID:         row.ID,
			Title:      row.Title,
			Kind:       row.Kind,
			HasContent: trimmed != "",
			Preview:    leading(trimmed, config.TreePreviewLength),
			Children:   []*models.TreeNode{},
		}
	}

	// Second pass: nest children under their parents. Rows whose
	// parent is missing from the set are dropped, matching the
	// atomically-read row set the projection is defined over.
	roots := make([]*models.TreeNode, 0)
	for _, row := range sorted {
		node := nodeMap[row.ID]
		if row.ParentID == nil {
			roots = append(roots, node)
			continue
		}
		if parent, exists := nodeMap[*row.ParentID]; exists {
			parent.Children = append(parent.Children, node)
		}
	}

	return roots
}

// leading returns the first n characters of s, rune-safe.
func leading(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
