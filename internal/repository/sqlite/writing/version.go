package writing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inkwell/internal/config"
	models "inkwell/internal/domain/models/writing"
	writingRepo "inkwell/internal/domain/repositories/writing"
	"inkwell/internal/repository/sqlite"

	"github.com/google/uuid"
)

// SqliteVersionRepository implements the VersionRepository interface
type SqliteVersionRepository struct {
	db *sql.DB
}

// NewVersionRepository creates a new version repository
func NewVersionRepository(config *sqlite.RepositoryConfig) writingRepo.VersionRepository {
	return &SqliteVersionRepository{db: config.DB}
}

// Insert appends a snapshot
func (r *SqliteVersionRepository) Insert(ctx context.Context, version *models.Version) error {
	if version.ID == "" {
		version.ID = uuid.NewString()
	}
	version.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO versions (id, node_id, label, content, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, query,
		version.ID,
		version.NodeID,
		version.Label,
		version.Content,
		version.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert version: %w", err)
	}

	return nil
}

// Prune deletes all versions for a node except the keep most-recently-
// created ones.
func (r *SqliteVersionRepository) Prune(ctx context.Context, nodeID string, keep int) error {
	query := `
		DELETE FROM versions
		WHERE node_id = ?
		  AND id NOT IN (
			SELECT id FROM versions
			WHERE node_id = ?
			ORDER BY created_at DESC, label DESC
			LIMIT ?
		  )
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, query, nodeID, nodeID, keep)
	if err != nil {
		return fmt.Errorf("prune versions: %w", err)
	}

	return nil
}

// List returns the node's versions descending by creation time. The
// preview is computed at read time from the snapshot's leading
// characters; full text is never returned here.
func (r *SqliteVersionRepository) List(ctx context.Context, nodeID string) ([]models.VersionInfo, error) {
	query := `
		SELECT label, content, created_at
		FROM versions
		WHERE node_id = ?
		ORDER BY created_at DESC, label DESC
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query, nodeID)
	if err != nil {
		return nil, fmt.Errorf("list versions: %w", err)
	}
	defer rows.Close()

	var versions []models.VersionInfo
	for rows.Next() {
		var info models.VersionInfo
		var content string
		if err := rows.Scan(&info.Label, &content, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan version: %w", err)
		}
		info.Preview = preview(content, config.VersionPreviewLength)
		versions = append(versions, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate versions: %w", err)
	}

	// Return empty slice instead of nil
	if versions == nil {
		versions = []models.VersionInfo{}
	}

	return versions, nil
}

// Get returns the snapshot text for a label
func (r *SqliteVersionRepository) Get(ctx context.Context, nodeID, label string) (string, bool, error) {
	query := `SELECT content FROM versions WHERE node_id = ? AND label = ?`

	var text string
	executor := sqlite.GetExecutor(ctx, r.db)
	err := executor.QueryRowContext(ctx, query, nodeID, label).Scan(&text)
	if err != nil {
		if sqlite.IsNoRowsError(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get version: %w", err)
	}

	return text, true, nil
}

// LabelExists reports whether a label is already taken for a node
func (r *SqliteVersionRepository) LabelExists(ctx context.Context, nodeID, label string) (bool, error) {
	query := `SELECT COUNT(*) FROM versions WHERE node_id = ? AND label = ?`

	var count int
	executor := sqlite.GetExecutor(ctx, r.db)
	if err := executor.QueryRowContext(ctx, query, nodeID, label).Scan(&count); err != nil {
		return false, fmt.Errorf("check version label: %w", err)
	}

	return count > 0, nil
}

// preview returns the first n characters of s, rune-safe.
func preview(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
