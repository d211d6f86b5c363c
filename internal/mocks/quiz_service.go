package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/domain/quiz"
	"github.com/phrazzld/trivia-api/internal/service"
)

// QuizCall records one NextQuestion call.
type QuizCall struct {
	Scope    quiz.Scope
	Previous []int64
}

// MockQuizService implements service.QuizService for testing
type MockQuizService struct {
	NextQuestionFn func(ctx context.Context, scope quiz.Scope, previous []int64) (*domain.Question, error)

	Question *domain.Question
	Err      error

	mu    sync.Mutex
	Calls []QuizCall
}

var _ service.QuizService = (*MockQuizService)(nil)

// NextQuestion implements service.QuizService
func (m *MockQuizService) NextQuestion(
	ctx context.Context,
	scope quiz.Scope,
	previous []int64,
) (*domain.Question, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, QuizCall{Scope: scope, Previous: previous})
	m.mu.Unlock()

	if m.NextQuestionFn != nil {
		return m.NextQuestionFn(ctx, scope, previous)
	}
	return m.Question, m.Err
}

// LastCall returns the most recent call, or false when there were none.
func (m *MockQuizService) LastCall() (QuizCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return QuizCall{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}
