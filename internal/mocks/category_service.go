package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/service"
)

// MockCategoryService implements service.CategoryService for testing
type MockCategoryService struct {
	ListFn func(ctx context.Context) ([]*domain.Category, error)
	GetFn  func(ctx context.Context, id int64) (*domain.Category, error)

	Categories []*domain.Category
	Err        error

	mu        sync.Mutex
	ListCalls int
	GetIDs    []int64
}

var _ service.CategoryService = (*MockCategoryService)(nil)

// List implements service.CategoryService
func (m *MockCategoryService) List(ctx context.Context) ([]*domain.Category, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return m.Categories, m.Err
}

// Get implements service.CategoryService.
// Without GetFn it looks the id up in Categories.
func (m *MockCategoryService) Get(ctx context.Context, id int64) (*domain.Category, error) {
	m.mu.Lock()
	m.GetIDs = append(m.GetIDs, id)
	m.mu.Unlock()

	if m.GetFn != nil {
		return m.GetFn(ctx, id)
	}
	if m.Err != nil {
		return nil, m.Err
	}
	for _, c := range m.Categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, service.ErrCategoryNotFound
}
