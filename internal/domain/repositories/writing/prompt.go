package writing

import (
	"context"

	"inkwell/internal/domain/models/writing"
)

// PromptRepository defines data access operations for prompt templates
type PromptRepository interface {
	// Create creates a new prompt template
	Create(ctx context.Context, prompt *writing.PromptTemplate) error

	// GetByID retrieves a prompt template by ID
	GetByID(ctx context.Context, id string) (*writing.PromptTemplate, error)

	// List retrieves all prompt templates, ordered by created_at DESC
	List(ctx context.Context) ([]writing.PromptTemplate, error)

	// Update updates a template's name and content. Reports false if
	// the template does not exist.
	Update(ctx context.Context, prompt *writing.PromptTemplate) (bool, error)

	// Delete deletes a template. Reports false if it does not exist.
	Delete(ctx context.Context, id string) (bool, error)
}
