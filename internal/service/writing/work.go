package writing

import (
	"context"
	"fmt"
	"log/slog"

	"inkwell/internal/config"
	"inkwell/internal/domain"
	models "inkwell/internal/domain/models/writing"
	"inkwell/internal/domain/repositories"
	writingRepo "inkwell/internal/domain/repositories/writing"
	writingSvc "inkwell/internal/domain/services/writing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// workService implements the WorkService interface
type workService struct {
	workRepo  writingRepo.WorkRepository
	nodeRepo  writingRepo.NodeRepository
	txManager repositories.TransactionManager
	logger    *slog.Logger
}

// NewWorkService creates a new work service
func NewWorkService(
	workRepo writingRepo.WorkRepository,
	nodeRepo writingRepo.NodeRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) writingSvc.WorkService {
	return &workService{
		workRepo:  workRepo,
		nodeRepo:  nodeRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// CreateWork creates a new work and seeds the default structure
// skeleton inside a single transaction.
func (s *workService) CreateWork(ctx context.Context, req *writingSvc.CreateWorkRequest) (*models.Work, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxWorkNameLength)),
	); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	skeleton, err := loadSkeleton()
	if err != nil {
		return nil, fmt.Errorf("load default structure: %w", err)
	}

	work := &models.Work{
		Name:        req.Name,
		Description: req.Description,
	}

	err = s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		if err := s.workRepo.Create(txCtx, work); err != nil {
			return err
		}
		return s.seedNodes(txCtx, work.ID, nil, skeleton)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("work created",
		"work_id", work.ID,
		"name", work.Name,
	)

	return work, nil
}

// seedNodes creates the skeleton forest depth-first, assigning sibling
// sort order from list position.
func (s *workService) seedNodes(ctx context.Context, workID string, parentID *string, nodes []skeletonNode) error {
	for i, sn := range nodes {
		node := &models.Node{
			WorkID:    workID,
			ParentID:  parentID,
			Kind:      sn.Kind,
			Title:     sn.Title,
			SortOrder: i + 1,
		}
		if err := s.nodeRepo.Create(ctx, node); err != nil {
			return fmt.Errorf("seed node '%s': %w", sn.Title, err)
		}
		if err := s.seedNodes(ctx, workID, &node.ID, sn.Children); err != nil {
			return err
		}
	}
	return nil
}

// GetWork retrieves a work by ID
func (s *workService) GetWork(ctx context.Context, id string) (*models.Work, error) {
	return s.workRepo.GetByID(ctx, id)
}

// ListWorks retrieves all works, most recently updated first
func (s *workService) ListWorks(ctx context.Context) ([]models.Work, error) {
	return s.workRepo.List(ctx)
}

// UpdateWork updates a work's name and description
func (s *workService) UpdateWork(ctx context.Context, id string, req *writingSvc.UpdateWorkRequest) (bool, error) {
	if err := validation.ValidateStruct(req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, config.MaxWorkNameLength)),
	); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	work := &models.Work{
		ID:          id,
		Name:        req.Name,
		Description: req.Description,
	}
	return s.workRepo.Update(ctx, work)
}

// DeleteWork deletes a work, cascading to all its nodes, contents and
// versions.
func (s *workService) DeleteWork(ctx context.Context, id string) (bool, error) {
	deleted, err := s.workRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		s.logger.Info("work deleted", "work_id", id)
	}

	return deleted, nil
}
