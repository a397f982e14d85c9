package writing

import (
	"context"

	"inkwell/internal/domain/models/writing"
)

// WorkRepository defines data access operations for works
type WorkRepository interface {
	// Create creates a new work
	Create(ctx context.Context, work *writing.Work) error

	// GetByID retrieves a work by ID
	GetByID(ctx context.Context, id string) (*writing.Work, error)

	// List retrieves all works, ordered by updated_at DESC
	List(ctx context.Context) ([]writing.Work, error)

	// Update updates a work's name, description and updated_at timestamp.
	// Reports false if the work does not exist.
	Update(ctx context.Context, work *writing.Work) (bool, error)

	// Delete deletes a work, cascading to its nodes, contents and
	// versions. Reports false if the work does not exist.
	Delete(ctx context.Context, id string) (bool, error)
}
