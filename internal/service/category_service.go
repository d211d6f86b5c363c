package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/platform/logger"
	"github.com/phrazzld/trivia-api/internal/store"
)

// CategoryService provides category lookups.
type CategoryService interface {
	// List returns all categories ordered by ID.
	List(ctx context.Context) ([]*domain.Category, error)

	// Get returns one category, or ErrCategoryNotFound.
	Get(ctx context.Context, id int64) (*domain.Category, error)
}

type categoryServiceImpl struct {
	categories store.CategoryStore
	logger     *slog.Logger
}

// NewCategoryService creates a new CategoryService.
// It returns an error if the store is nil.
func NewCategoryService(categories store.CategoryStore, logger *slog.Logger) (CategoryService, error) {
	if categories == nil {
		return nil, domain.NewValidationError("categories", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &categoryServiceImpl{
		categories: categories,
		logger:     logger.With(slog.String("component", "category_service")),
	}, nil
}

func (s *categoryServiceImpl) List(ctx context.Context) ([]*domain.Category, error) {
	categories, err := s.categories.List(ctx)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).
			Error("failed to list categories", slog.String("error", err.Error()))
		return nil, NewServiceError("category", "list", "failed to load categories", err)
	}
	return categories, nil
}

func (s *categoryServiceImpl) Get(ctx context.Context, id int64) (*domain.Category, error) {
	category, err := s.categories.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			return nil, ErrCategoryNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", id))
		return nil, NewServiceError("category", "get", "failed to load category", err)
	}
	return category, nil
}
