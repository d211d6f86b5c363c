package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/phrazzld/trivia-api/internal/domain"
)

// QuestionView is the JSON form of a question.
type QuestionView struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Difficulty int    `json:"difficulty"`
	Category   int64  `json:"category"`
}

// CategoriesResponse is the body of GET /categories.
type CategoriesResponse struct {
	Success    bool             `json:"success"`
	Categories map[int64]string `json:"categories"`
}

// QuestionListResponse is the body of the question listings.
type QuestionListResponse struct {
	Success         bool             `json:"success"`
	Questions       []QuestionView   `json:"questions"`
	TotalQuestions  int              `json:"totalQuestions"`
	Categories      map[int64]string `json:"categories"`
	CurrentCategory string           `json:"currentCategory"`
}

// SearchResponse is the body of a question search.
// CurrentCategory is the first result's category id, or "" without results.
type SearchResponse struct {
	Success         bool           `json:"success"`
	Questions       []QuestionView `json:"questions"`
	TotalQuestions  int            `json:"totalQuestions"`
	CurrentCategory any            `json:"currentCategory"`
}

// CreateQuestionResponse is the body of a successful create.
type CreateQuestionResponse struct {
	Success  bool         `json:"success"`
	Created  int64        `json:"created"`
	Question QuestionView `json:"question"`
}

// DeleteQuestionResponse is the body of a successful delete.
type DeleteQuestionResponse struct {
	Success bool  `json:"success"`
	Deleted int64 `json:"deleted"`
}

// QuizResponse is the body of POST /quizzes. A nil Question ends the quiz.
type QuizResponse struct {
	Success  bool          `json:"success"`
	Question *QuestionView `json:"question"`
}

// FlexibleInt decodes from a JSON number or a string holding one.
// Form-driven clients send select values as strings.
type FlexibleInt int64

// UnmarshalJSON implements json.Unmarshaler.
func (f *FlexibleInt) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", data)
	}
	*f = FlexibleInt(n)
	return nil
}

// QuestionsPostRequest is the body of POST /questions. A body carrying
// searchTerm is a search; anything else is a create.
type QuestionsPostRequest struct {
	SearchTerm *string `json:"searchTerm"`
	CreateQuestionRequest
}

// IsSearch reports whether the body asks for a search.
func (r *QuestionsPostRequest) IsSearch() bool {
	return r.SearchTerm != nil
}

// CreateQuestionRequest holds the fields of a new question. All are required.
type CreateQuestionRequest struct {
	Question   *string      `json:"question" validate:"required"`
	Answer     *string      `json:"answer" validate:"required"`
	Difficulty *FlexibleInt `json:"difficulty" validate:"required"`
	Category   *FlexibleInt `json:"category" validate:"required"`
}

// ToDomain builds the domain question. Call it only after validation.
func (r *CreateQuestionRequest) ToDomain() *domain.Question {
	return &domain.Question{
		Text:       strings.TrimSpace(*r.Question),
		Answer:     strings.TrimSpace(*r.Answer),
		Difficulty: int(*r.Difficulty),
		CategoryID: int64(*r.Category),
	}
}

// QuizRequest is the body of POST /quizzes. Both keys must be present;
// quiz_category is kept raw for quiz.ParseScope.
type QuizRequest struct {
	PreviousQuestions []int64
	QuizCategory      json.RawMessage

	hasPrevious bool
	hasCategory bool
	previousErr error
}

// UnmarshalJSON implements json.Unmarshaler, recording which keys were sent.
func (r *QuizRequest) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	*r = QuizRequest{}

	if raw, ok := fields["previous_questions"]; ok {
		r.hasPrevious = true
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			r.previousErr = fmt.Errorf("previous_questions must be an array")
		} else if err := json.Unmarshal(raw, &r.PreviousQuestions); err != nil {
			r.previousErr = err
		}
	}

	if raw, ok := fields["quiz_category"]; ok {
		r.hasCategory = true
		r.QuizCategory = raw
	}

	return nil
}

// Validate implements the interface checked by shared.ValidateRequest.
func (r *QuizRequest) Validate() error {
	if !r.hasPrevious {
		return domain.NewValidationError("previous_questions", "is required", domain.ErrValidation)
	}
	if r.previousErr != nil {
		return domain.NewValidationError("previous_questions", "must be an array of integers", domain.ErrValidation)
	}
	if !r.hasCategory {
		return domain.NewValidationError("quiz_category", "is required", domain.ErrValidation)
	}
	return nil
}

func toQuestionView(q *domain.Question) QuestionView {
	return QuestionView{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Difficulty: q.Difficulty,
		Category:   q.CategoryID,
	}
}

func toQuestionViews(questions []*domain.Question) []QuestionView {
	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		if q == nil {
			continue
		}
		views = append(views, toQuestionView(q))
	}
	return views
}
