package writing

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inkwell/internal/domain"
	models "inkwell/internal/domain/models/writing"
	writingRepo "inkwell/internal/domain/repositories/writing"
	"inkwell/internal/repository/sqlite"

	"github.com/google/uuid"
)

// SqliteNodeRepository implements the NodeRepository interface
type SqliteNodeRepository struct {
	db *sql.DB
}

// NewNodeRepository creates a new node repository
func NewNodeRepository(config *sqlite.RepositoryConfig) writingRepo.NodeRepository {
	return &SqliteNodeRepository{db: config.DB}
}

// Create creates a new node
func (r *SqliteNodeRepository) Create(ctx context.Context, node *models.Node) error {
	if node.ID == "" {
		node.ID = uuid.NewString()
	}
	node.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO nodes (id, work_id, parent_id, kind, title, sort_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, query,
		node.ID,
		node.WorkID,
		node.ParentID,
		string(node.Kind),
		node.Title,
		node.SortOrder,
		node.CreatedAt,
	)
	if err != nil {
		if sqlite.IsForeignKeyError(err) {
			return fmt.Errorf("parent of node '%s': %w", node.Title, domain.ErrNotFound)
		}
		return fmt.Errorf("create node: %w", err)
	}

	return nil
}

// GetByID retrieves a node by ID
func (r *SqliteNodeRepository) GetByID(ctx context.Context, id string) (*models.Node, error) {
	query := `
		SELECT id, work_id, parent_id, kind, title, sort_order, created_at
		FROM nodes
		WHERE id = ?
	`

	var node models.Node
	var kind string
	executor := sqlite.GetExecutor(ctx, r.db)
	err := executor.QueryRowContext(ctx, query, id).Scan(
		&node.ID,
		&node.WorkID,
		&node.ParentID,
		&kind,
		&node.Title,
		&node.SortOrder,
		&node.CreatedAt,
	)

	if err != nil {
		if sqlite.IsNoRowsError(err) {
			return nil, fmt.Errorf("node %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get node: %w", err)
	}

	node.Kind = models.NodeKind(kind)
	return &node, nil
}

// Rename updates a node's title
func (r *SqliteNodeRepository) Rename(ctx context.Context, id, title string) (bool, error) {
	query := `
		UPDATE nodes
		SET title = ?
		WHERE id = ?
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, title, id)
	if err != nil {
		return false, fmt.Errorf("rename node: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rename node rows affected: %w", err)
	}

	return affected > 0, nil
}

// Delete deletes a node. The self-referential foreign key cascades the
// delete through every descendant, and from each removed node to its
// content and versions.
func (r *SqliteNodeRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM nodes WHERE id = ?`

	executor := sqlite.GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete node: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete node rows affected: %w", err)
	}

	return affected > 0, nil
}

// ListRows retrieves the flat node+content rows for a work in a single
// atomic read. Content joins as empty text when no row exists.
func (r *SqliteNodeRepository) ListRows(ctx context.Context, workID string) ([]models.NodeRow, error) {
	query := `
		SELECT n.id, n.work_id, n.parent_id, n.kind, n.title, n.sort_order,
		       COALESCE(c.content, '') AS content
		FROM nodes n
		LEFT JOIN contents c ON n.id = c.node_id
		WHERE n.work_id = ?
		ORDER BY n.parent_id, n.sort_order, n.id
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query, workID)
	if err != nil {
		return nil, fmt.Errorf("list node rows: %w", err)
	}
	defer rows.Close()

	var nodeRows []models.NodeRow
	for rows.Next() {
		var row models.NodeRow
		var kind string
		err := rows.Scan(
			&row.ID,
			&row.WorkID,
			&row.ParentID,
			&kind,
			&row.Title,
			&row.SortOrder,
			&row.Content,
		)
		if err != nil {
			return nil, fmt.Errorf("scan node row: %w", err)
		}
		row.Kind = models.NodeKind(kind)
		nodeRows = append(nodeRows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate node rows: %w", err)
	}

	// Return empty slice instead of nil
	if nodeRows == nil {
		nodeRows = []models.NodeRow{}
	}

	return nodeRows, nil
}
