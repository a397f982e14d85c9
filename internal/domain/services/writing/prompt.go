package writing

import (
	"context"

	"inkwell/internal/domain/models/writing"
)

// PromptService handles prompt template management
type PromptService interface {
	// CreatePrompt creates a new named template
	CreatePrompt(ctx context.Context, req *PromptRequest) (*writing.PromptTemplate, error)

	// GetPrompt retrieves a template by ID
	GetPrompt(ctx context.Context, id string) (*writing.PromptTemplate, error)

	// ListPrompts retrieves all templates, newest first
	ListPrompts(ctx context.Context) ([]writing.PromptTemplate, error)

	// UpdatePrompt updates a template. Reports false if it does not exist.
	UpdatePrompt(ctx context.Context, id string, req *PromptRequest) (bool, error)

	// DeletePrompt deletes a template. Reports false if it does not exist.
	DeletePrompt(ctx context.Context, id string) (bool, error)
}

// PromptRequest represents a prompt template create/update request
type PromptRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}
