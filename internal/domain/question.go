package domain

import (
	"errors"
	"strings"
)

// Difficulty bounds for a question.
const (
	MinDifficulty = 1
	MaxDifficulty = 5
)

// Question-specific validation errors
var (
	// ErrQuestionTextEmpty is returned when the question text is blank.
	ErrQuestionTextEmpty = errors.New("question text cannot be empty")

	// ErrQuestionAnswerEmpty is returned when the answer text is blank.
	ErrQuestionAnswerEmpty = errors.New("question answer cannot be empty")

	// ErrQuestionCategoryInvalid is returned when the category reference is not a positive ID.
	ErrQuestionCategoryInvalid = errors.New("question category must be a positive ID")
)

// Question is a single trivia item. Questions are owned by the persistence
// layer; everything else reads them.
type Question struct {
	ID         int64  `json:"id"`
	Text       string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	CategoryID int64  `json:"category"`
}

// NewQuestion builds a Question that has not been persisted yet (ID zero).
// Returns an error if validation fails.
func NewQuestion(text, answer string, difficulty int, categoryID int64) (*Question, error) {
	q := &Question{
		Text:       strings.TrimSpace(text),
		Answer:     strings.TrimSpace(answer),
		Difficulty: difficulty,
		CategoryID: categoryID,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks if the Question has valid data.
// The ID is not checked because it is assigned on insert.
func (q *Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return NewValidationError("question", "cannot be empty", ErrQuestionTextEmpty)
	}

	if strings.TrimSpace(q.Answer) == "" {
		return NewValidationError("answer", "cannot be empty", ErrQuestionAnswerEmpty)
	}

	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return NewValidationError("difficulty", "must be between 1 and 5", ErrInvalidDifficulty)
	}

	if q.CategoryID <= 0 {
		return NewValidationError("category", "must be a positive ID", ErrQuestionCategoryInvalid)
	}

	return nil
}

// QuestionFilter narrows a question query. A nil CategoryID means every category.
type QuestionFilter struct {
	CategoryID *int64
	ExcludeIDs []int64
}
