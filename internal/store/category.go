package store

import (
	"context"

	"github.com/phrazzld/trivia-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// List returns all categories ordered by ID.
	List(ctx context.Context) ([]*domain.Category, error)

	// GetByID retrieves a category by its ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}
