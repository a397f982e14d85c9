package writing

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"inkwell/internal/config"
	"inkwell/internal/domain"
	models "inkwell/internal/domain/models/writing"
	"inkwell/internal/domain/repositories"
	writingRepo "inkwell/internal/domain/repositories/writing"
	writingSvc "inkwell/internal/domain/services/writing"
)

// versionLabelFormat is the timestamp layout of snapshot labels,
// one-second granularity.
const versionLabelFormat = "20060102T150405"

// contentService implements the ContentService interface
type contentService struct {
	contentRepo writingRepo.ContentRepository
	versionRepo writingRepo.VersionRepository
	txManager   repositories.TransactionManager
	logger      *slog.Logger
}

// NewContentService creates a new content service
func NewContentService(
	contentRepo writingRepo.ContentRepository,
	versionRepo writingRepo.VersionRepository,
	txManager repositories.TransactionManager,
	logger *slog.Logger,
) writingSvc.ContentService {
	return &contentService{
		contentRepo: contentRepo,
		versionRepo: versionRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetContent returns the node's current text. A node that has never
// been saved reads as empty text.
func (s *contentService) GetContent(ctx context.Context, nodeID string) (string, error) {
	text, _, err := s.contentRepo.Get(ctx, nodeID)
	return text, err
}

// SaveContent overwrites the node's text. When a prior text exists and
// differs, the prior text is snapshotted first and retention pruned,
// all inside one transaction: the snapshot is durable before the
// overwrite, and a snapshot failure fails the whole save. First-time
// saves and saves of identical text produce no snapshot.
func (s *contentService) SaveContent(ctx context.Context, nodeID, text string) error {
	return s.txManager.ExecTx(ctx, func(txCtx context.Context) error {
		current, exists, err := s.contentRepo.Get(txCtx, nodeID)
		if err != nil {
			return err
		}

		if exists && current != text {
			label, err := s.nextLabel(txCtx, nodeID, time.Now())
			if err != nil {
				return err
			}

			version := &models.Version{
				NodeID:  nodeID,
				Label:   label,
				Content: current,
			}
			if err := s.versionRepo.Insert(txCtx, version); err != nil {
				return fmt.Errorf("snapshot before save: %w", err)
			}
			if err := s.versionRepo.Prune(txCtx, nodeID, config.VersionRetentionLimit); err != nil {
				return fmt.Errorf("prune versions: %w", err)
			}

			s.logger.Debug("content snapshotted",
				"node_id", nodeID,
				"label", label,
			)
		}

		return s.contentRepo.Upsert(txCtx, nodeID, text)
	})
}

// nextLabel derives a snapshot label from the save time. Two saves
// within the same second for one node get distinct labels through a
// monotonic suffix instead of silently overwriting the earlier
// snapshot.
func (s *contentService) nextLabel(ctx context.Context, nodeID string, at time.Time) (string, error) {
	base := at.UTC().Format(versionLabelFormat)
	label := base
	for n := 2; ; n++ {
		taken, err := s.versionRepo.LabelExists(ctx, nodeID, label)
		if err != nil {
			return "", err
		}
		if !taken {
			return label, nil
		}
		label = fmt.Sprintf("%s-%d", base, n)
	}
}

// ListVersions returns the node's snapshots, newest first
func (s *contentService) ListVersions(ctx context.Context, nodeID string) ([]models.VersionInfo, error) {
	return s.versionRepo.List(ctx, nodeID)
}

// GetVersion returns a snapshot's full text
func (s *contentService) GetVersion(ctx context.Context, nodeID, label string) (string, error) {
	text, exists, err := s.versionRepo.Get(ctx, nodeID, label)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", fmt.Errorf("version %s of node %s: %w", label, nodeID, domain.ErrNotFound)
	}
	return text, nil
}

// RestoreVersion writes a snapshot's text back through the normal save
// path, capturing the pre-restore content as a new version. Restoring
// is therefore non-destructive and reversible. A missing label reports
// false without side effects.
func (s *contentService) RestoreVersion(ctx context.Context, nodeID, label string) (bool, error) {
	text, exists, err := s.versionRepo.Get(ctx, nodeID, label)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	if err := s.SaveContent(ctx, nodeID, text); err != nil {
		return false, fmt.Errorf("restore version %s: %w", label, err)
	}

	s.logger.Info("version restored",
		"node_id", nodeID,
		"label", label,
	)

	return true, nil
}
