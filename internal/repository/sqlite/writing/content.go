package writing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	writingRepo "inkwell/internal/domain/repositories/writing"
	"inkwell/internal/repository/sqlite"

	"github.com/google/uuid"
)

// SqliteContentRepository implements the ContentRepository interface
type SqliteContentRepository struct {
	db *sql.DB
}

// NewContentRepository creates a new content repository
func NewContentRepository(config *sqlite.RepositoryConfig) writingRepo.ContentRepository {
	return &SqliteContentRepository{db: config.DB}
}

// Get returns the current text for a node. Absence of a row reads as
// empty text, not an error.
func (r *SqliteContentRepository) Get(ctx context.Context, nodeID string) (string, bool, error) {
	query := `SELECT content FROM contents WHERE node_id = ?`

	var text string
	executor := sqlite.GetExecutor(ctx, r.db)
	err := executor.QueryRowContext(ctx, query, nodeID).Scan(&text)
	if err != nil {
		if sqlite.IsNoRowsError(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get content: %w", err)
	}

	return text, true, nil
}

// Upsert writes the current text for a node, creating the row on first
// save and refreshing updated_at thereafter.
func (r *SqliteContentRepository) Upsert(ctx context.Context, nodeID, text string) error {
	query := `
		INSERT INTO contents (id, node_id, content, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(node_id) DO UPDATE SET
			content = excluded.content,
			updated_at = excluded.updated_at
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, query,
		uuid.NewString(),
		nodeID,
		text,
		time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert content: %w", err)
	}

	return nil
}
