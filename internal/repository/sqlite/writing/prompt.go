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

// SqlitePromptRepository implements the PromptRepository interface
type SqlitePromptRepository struct {
	db *sql.DB
}

// NewPromptRepository creates a new prompt template repository
func NewPromptRepository(config *sqlite.RepositoryConfig) writingRepo.PromptRepository {
	return &SqlitePromptRepository{db: config.DB}
}

// Create creates a new prompt template
func (r *SqlitePromptRepository) Create(ctx context.Context, prompt *models.PromptTemplate) error {
	if prompt.ID == "" {
		prompt.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	prompt.CreatedAt = now
	prompt.UpdatedAt = now

	query := `
		INSERT INTO prompt_templates (id, name, content, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	_, err := executor.ExecContext(ctx, query,
		prompt.ID,
		prompt.Name,
		prompt.Content,
		prompt.CreatedAt,
		prompt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("create prompt template: %w", err)
	}

	return nil
}

// GetByID retrieves a prompt template by ID
func (r *SqlitePromptRepository) GetByID(ctx context.Context, id string) (*models.PromptTemplate, error) {
	query := `
		SELECT id, name, content, created_at, updated_at
		FROM prompt_templates
		WHERE id = ?
	`

	var prompt models.PromptTemplate
	executor := sqlite.GetExecutor(ctx, r.db)
	err := executor.QueryRowContext(ctx, query, id).Scan(
		&prompt.ID,
		&prompt.Name,
		&prompt.Content,
		&prompt.CreatedAt,
		&prompt.UpdatedAt,
	)

	if err != nil {
		if sqlite.IsNoRowsError(err) {
			return nil, fmt.Errorf("prompt template %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get prompt template: %w", err)
	}

	return &prompt, nil
}

// List retrieves all prompt templates, ordered by created_at DESC
func (r *SqlitePromptRepository) List(ctx context.Context) ([]models.PromptTemplate, error) {
	query := `
		SELECT id, name, content, created_at, updated_at
		FROM prompt_templates
		ORDER BY created_at DESC
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	rows, err := executor.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list prompt templates: %w", err)
	}
	defer rows.Close()

	var prompts []models.PromptTemplate
	for rows.Next() {
		var prompt models.PromptTemplate
		err := rows.Scan(
			&prompt.ID,
			&prompt.Name,
			&prompt.Content,
			&prompt.CreatedAt,
			&prompt.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan prompt template: %w", err)
		}
		prompts = append(prompts, prompt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate prompt templates: %w", err)
	}

	// Return empty slice instead of nil
	if prompts == nil {
		prompts = []models.PromptTemplate{}
	}

	return prompts, nil
}

// Update updates a template's name, content and updated_at timestamp
func (r *SqlitePromptRepository) Update(ctx context.Context, prompt *models.PromptTemplate) (bool, error) {
	prompt.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE prompt_templates
		SET name = ?, content = ?, updated_at = ?
		WHERE id = ?
	`

	executor := sqlite.GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query,
		prompt.Name,
		prompt.Content,
		prompt.UpdatedAt,
		prompt.ID,
	)
	if err != nil {
		return false, fmt.Errorf("update prompt template: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update prompt template rows affected: %w", err)
	}

	return affected > 0, nil
}

// Delete deletes a template
func (r *SqlitePromptRepository) Delete(ctx context.Context, id string) (bool, error) {
	query := `DELETE FROM prompt_templates WHERE id = ?`

	executor := sqlite.GetExecutor(ctx, r.db)
	result, err := executor.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("delete prompt template: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete prompt template rows affected: %w", err)
	}

	return affected > 0, nil
}
