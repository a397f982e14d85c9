package writing

import (
	"context"

	"inkwell/internal/domain/models/writing"
)

// WorkService handles work business logic
type WorkService interface {
	// CreateWork creates a new work and seeds its default structure
	CreateWork(ctx context.Context, req *CreateWorkRequest) (*writing.Work, error)

	// GetWork retrieves a work by ID
	GetWork(ctx context.Context, id string) (*writing.Work, error)

	// ListWorks retrieves all works, most recently updated first
	ListWorks(ctx context.Context) ([]writing.Work, error)

	// UpdateWork updates a work's name and description.
	// Reports false if the work does not exist.
	UpdateWork(ctx context.Context, id string, req *UpdateWorkRequest) (bool, error)

	// DeleteWork deletes a work and everything it owns.
	// Reports false if the work does not exist.
	DeleteWork(ctx context.Context, id string) (bool, error)
}

// CreateWorkRequest represents a work creation request
type CreateWorkRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateWorkRequest represents a work update request
type UpdateWorkRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
