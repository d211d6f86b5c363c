package store

import (
	"context"

	"github.com/phrazzld/trivia-api/internal/domain"
)

// QuestionStore defines the interface for question data persistence.
// Every list method returns questions ordered by ID.
type QuestionStore interface {
	// Create inserts a new question and sets its ID.
	// Returns validation errors if the question data is invalid and
	// ErrInvalidEntity if the database rejects it (e.g. unknown category).
	Create(ctx context.Context, question *domain.Question) error

	// GetByID retrieves a question by its ID.
	// Returns ErrQuestionNotFound if the question does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Question, error)

	// Delete removes a question by its ID.
	// Returns ErrQuestionNotFound if the question does not exist.
	Delete(ctx context.Context, id int64) error

	// List returns one window of all questions.
	List(ctx context.Context, limit, offset int) ([]*domain.Question, error)

	// Count returns the total number of questions.
	Count(ctx context.Context) (int, error)

	// Search returns questions whose text contains term, ignoring case.
	Search(ctx context.Context, term string) ([]*domain.Question, error)

	// ListByCategory returns every question of one category.
	ListByCategory(ctx context.Context, categoryID int64) ([]*domain.Question, error)

	// FindQuestions returns questions matching filter. A nil CategoryID matches
	// every category and ExcludeIDs are never returned. This is the read the
	// quiz selector relies on.
	FindQuestions(ctx context.Context, filter domain.QuestionFilter) ([]*domain.Question, error)
}
