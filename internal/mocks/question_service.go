package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/service"
)

// MockQuestionService implements service.QuestionService for testing
type MockQuestionService struct {
	ListPageFn       func(ctx context.Context, page int) (*service.QuestionPage, error)
	SearchFn         func(ctx context.Context, term string) ([]*domain.Question, error)
	ListByCategoryFn func(ctx context.Context, categoryID int64) (*service.CategoryQuestions, error)
	CreateFn         func(ctx context.Context, question *domain.Question) error
	DeleteFn         func(ctx context.Context, id int64) error

	// Default response values
	Page              *service.QuestionPage
	SearchResults     []*domain.Question
	CategoryQuestions *service.CategoryQuestions
	CreatedID         int64
	Err               error

	mu          sync.Mutex
	Pages       []int
	SearchTerms []string
	CategoryIDs []int64
	Created     []*domain.Question
	DeletedIDs  []int64
}

var _ service.QuestionService = (*MockQuestionService)(nil)

// ListPage implements service.QuestionService
func (m *MockQuestionService) ListPage(ctx context.Context, page int) (*service.QuestionPage, error) {
	m.mu.Lock()
	m.Pages = append(m.Pages, page)
	m.mu.Unlock()

	if m.ListPageFn != nil {
		return m.ListPageFn(ctx, page)
	}
	return m.Page, m.Err
}

// Search implements service.QuestionService
func (m *MockQuestionService) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	m.mu.Lock()
	m.SearchTerms = append(m.SearchTerms, term)
	m.mu.Unlock()

	if m.SearchFn != nil {
		return m.SearchFn(ctx, term)
	}
	return m.SearchResults, m.Err
}

// ListByCategory implements service.QuestionService
func (m *MockQuestionService) ListByCategory(
	ctx context.Context,
	categoryID int64,
) (*service.CategoryQuestions, error) {
	m.mu.Lock()
	m.CategoryIDs = append(m.CategoryIDs, categoryID)
	m.mu.Unlock()

	if m.ListByCategoryFn != nil {
		return m.ListByCategoryFn(ctx, categoryID)
	}
	return m.CategoryQuestions, m.Err
}

// Create implements service.QuestionService.
// Without CreateFn it assigns CreatedID on success.
func (m *MockQuestionService) Create(ctx context.Context, question *domain.Question) error {
	m.mu.Lock()
	m.Created = append(m.Created, question)
	m.mu.Unlock()

	if m.CreateFn != nil {
		return m.CreateFn(ctx, question)
	}
	if m.Err == nil {
		question.ID = m.CreatedID
	}
	return m.Err
}

// Delete implements service.QuestionService
func (m *MockQuestionService) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	m.DeletedIDs = append(m.DeletedIDs, id)
	m.mu.Unlock()

	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return m.Err
}

// CallCount returns the total number of recorded calls.
func (m *MockQuestionService) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Pages) + len(m.SearchTerms) + len(m.CategoryIDs) + len(m.Created) + len(m.DeletedIDs)
}
