package writing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"inkwell/internal/config"
	"inkwell/internal/domain"
	models "inkwell/internal/domain/models/writing"
	writingRepo "inkwell/internal/domain/repositories/writing"
	writingSvc "inkwell/internal/domain/services/writing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// nodeService implements the NodeService interface
type nodeService struct {
	nodeRepo writingRepo.NodeRepository
	logger   *slog.Logger
}

// NewNodeService creates a new node service
func NewNodeService(nodeRepo writingRepo.NodeRepository, logger *slog.Logger) writingSvc.NodeService {
	return &nodeService{
		nodeRepo: nodeRepo,
		logger:   logger,
	}
}

// CreateNode creates a node under the given parent (nil = root)
func (s *nodeService) CreateNode(ctx context.Context, req *writingSvc.CreateNodeRequest) (*models.Node, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.WorkID, validation.Required),
		validation.Field(&req.Title, validation.Required, validation.Length(1, config.MaxNodeTitleLength)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	if !req.Kind.Valid() {
		return nil, fmt.Errorf("%w: unknown node kind %q", domain.ErrValidation, req.Kind)
	}

	// The parent must reference an existing node in the same work.
	if req.ParentID != nil {
		parent, err := s.nodeRepo.GetByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("parent node %s: %w", *req.ParentID, domain.ErrNotFound)
			}
			return nil, err
		}
		if parent.WorkID != req.WorkID {
			return nil, fmt.Errorf("parent node %s belongs to a different work: %w", *req.ParentID, domain.ErrNotFound)
		}
	}

	node := &models.Node{
		WorkID:    req.WorkID,
		ParentID:  req.ParentID,
		Kind:      req.Kind,
		Title:     req.Title,
		SortOrder: req.SortOrder,
	}

	if err := s.nodeRepo.Create(ctx, node); err != nil {
		return nil, err
	}

	s.logger.Info("node created",
		"node_id", node.ID,
		"work_id", node.WorkID,
		"kind", node.Kind,
	)

	return node, nil
}

// RenameNode updates a node's display title
func (s *nodeService) RenameNode(ctx context.Context, nodeID, title string) (bool, error) {
	if err := validation.Validate(title,
		validation.Required, validation.Length(1, config.MaxNodeTitleLength),
	); err != nil {
		return false, fmt.Errorf("%w: title: %v", domain.ErrValidation, err)
	}

	return s.nodeRepo.Rename(ctx, nodeID, title)
}

// DeleteNode deletes a node and its entire subtree. Deleting a
// nonexistent node reports false, not an error.
func (s *nodeService) DeleteNode(ctx context.Context, nodeID string) (bool, error) {
	deleted, err := s.nodeRepo.Delete(ctx, nodeID)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("node deleted", "node_id", nodeID)
	}

	return deleted, nil
}
