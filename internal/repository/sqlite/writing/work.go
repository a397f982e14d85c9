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

// SqliteWorkRepository implements the WorkRepository interface
type SqliteWorkRepository struct {
	db *sql.DB
}

// NewWorkRepository creates a new work repository
func NewWorkRepository(config *sqlite.RepositoryConfig) writingRepo.WorkRepository {
	return &SqliteWorkRepository{db: config.DB}
}

// Create creates a new work
func (r *SqliteWorkRepository) Create(ctx context.Context, work *models.Work) error {
	if work.ID == "" {
		work.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	work.CreatedAt = now
	work.UpdatedAt = now

	query := `
		INSERT INTO works (id, name, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, query,
		work.ID,
		work.Name,
		work.Description,
		work.CreatedAt,
		work.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create work: %w", err)
	}

	return nil
}

// GetByID retrieves a work by ID
func (r *SqliteWorkRepository) GetByID(ctx context.Context, id string) (*models.Work, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM works
		WHERE id = ?
	`

	var work models.Work
	executor := sqlite.GetExecutor(ctx, r.db)
	err := executor.QueryRowContext(ctx, query, id).Scan(
		&work.ID,
		&work.Name,
		&work.Description,
		&work.CreatedAt,
		&work.UpdatedAt,
	)

	if err != nil {
		if sqlite.IsNoRowsError(err) {
			return nil, fmt.Errorf("work %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get work: %w", err)
	}

	return &work, nil
}

// List retrieves all works, ordered by updated_at DESC
func (r *SqliteWorkRepository) List(ctx context.Context) ([]models.Work, error) {
	query := `
		SELECT id, name, description, created_at, updated_at
		FROM works
		ORDER BY updated_at DESC
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list works: %w", err)
	}
	defer rows.Close()

	var works []models.Work
	for rows.Next() {
		var work models.Work
		err := rows.Scan(
			&work.ID,
			&work.Name,
			&work.Description,
			&work.CreatedAt,
			&work.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan work: %w", err)
		}
		works = append(works, work)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate works: %w", err)
	}

	// Return empty slice instead of nil if no works
	if works == nil {
		works = []models.Work{}
	}

	return works, nil
}

// Update updates a work's name, description and updated_at timestamp
func (r *SqliteWorkRepository) Update(ctx context.Context, work *models.Work) (bool, error) {
	work.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE works
		SET name = ?, description = ?, updated_at = ?
		WHERE id = ?
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query,
		work.Name,
		work.Description,
		work.UpdatedAt,
		work.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update work: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update work rows affected: %w", err)
	}

	return affected > 0, nil
}

// Delete deletes a work. The engine cascades to nodes, contents and
// versions through the foreign keys.
func (r *SqliteWorkRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM works WHERE id = ?`

	executor := sqlite.GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete work: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete work rows affected: %w", err)
	}

	return affected > 0, nil
}
