package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/events"
	"github.com/phrazzld/trivia-api/internal/platform/logger"
	"github.com/phrazzld/trivia-api/internal/store"
)

// QuestionPage is one page of the question listing.
type QuestionPage struct {
	Questions  []*domain.Question
	Total      int
	Categories []*domain.Category
	// CurrentCategory is the lowest-id category, or nil when there are none.
	CurrentCategory *domain.Category
}

// CategoryQuestions is every question of one category.
type CategoryQuestions struct {
	Category   *domain.Category
	Questions  []*domain.Question
	Categories []*domain.Category
}

// QuestionService provides question-related operations
type QuestionService interface {
	// ListPage returns page (1-based) of all questions.
	// Returns ErrPageOutOfRange for a page that holds no questions.
	ListPage(ctx context.Context, page int) (*QuestionPage, error)

	// Search returns questions whose text contains term, ignoring case and
	// surrounding whitespace.
	Search(ctx context.Context, term string) ([]*domain.Question, error)

	// ListByCategory returns the questions of one category.
	// Returns ErrCategoryNotFound if the category does not exist.
	ListByCategory(ctx context.Context, categoryID int64) (*CategoryQuestions, error)

	// Create validates and stores a new question, setting its ID.
	Create(ctx context.Context, question *domain.Question) error

	// Delete removes a question. Returns ErrQuestionNotFound for an unknown id
	// and ErrUnprocessable for an id that can never exist.
	Delete(ctx context.Context, id int64) error
}

type questionServiceImpl struct {
	questions  store.QuestionStore
	categories store.CategoryStore
	emitter    events.EventEmitter
	pageSize   int
	logger     *slog.Logger
}

// NewQuestionService creates a new QuestionService.
// It returns an error if any of the required dependencies are nil or the page size is not positive.
func NewQuestionService(
	questions store.QuestionStore,
	categories store.CategoryStore,
	emitter events.EventEmitter,
	pageSize int,
	logger *slog.Logger,
) (QuestionService, error) {
	if questions == nil {
		return nil, domain.NewValidationError("questions", "cannot be nil", domain.ErrValidation)
	}
	if categories == nil {
		return nil, domain.NewValidationError("categories", "cannot be nil", domain.ErrValidation)
	}
	if emitter == nil {
		return nil, domain.NewValidationError("emitter", "cannot be nil", domain.ErrValidation)
	}
	if pageSize < 1 {
		return nil, domain.NewValidationError("pageSize", "must be positive", domain.ErrValidation)
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &questionServiceImpl{
		questions:  questions,
		categories: categories,
		emitter:    emitter,
		pageSize:   pageSize,
		logger:     logger.With(slog.String("component", "question_service")),
	}, nil
}

func (s *questionServiceImpl) ListPage(ctx context.Context, page int) (*QuestionPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if page < 1 {
		log.Debug("rejecting page below 1", slog.Int("page", page))
		return nil, ErrPageOutOfRange
	}

	offset := (page - 1) * s.pageSize
	questions, err := s.questions.List(ctx, s.pageSize, offset)
	if err != nil {
		log.Error("failed to list questions",
			slog.String("error", err.Error()),
			slog.Int("page", page))
		return nil, NewServiceError("question", "list", "failed to load questions", err)
	}
	if len(questions) == 0 {
		log.Debug("page holds no questions", slog.Int("page", page))
		return nil, ErrPageOutOfRange
	}

	total, err := s.questions.Count(ctx)
	if err != nil {
		log.Error("failed to count questions", slog.String("error", err.Error()))
		return nil, NewServiceError("question", "list", "failed to count questions", err)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, NewServiceError("question", "list", "failed to load categories", err)
	}

	result := &QuestionPage{
		Questions:  questions,
		Total:      total,
		Categories: categories,
	}
	if len(categories) > 0 {
		result.CurrentCategory = categories[0]
	}
	return result, nil
}

func (s *questionServiceImpl) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	term = strings.TrimSpace(term)
	questions, err := s.questions.Search(ctx, term)
	if err != nil {
		log.Error("failed to search questions", slog.String("error", err.Error()))
		return nil, NewServiceError("question", "search", "failed to search questions", err)
	}

	log.Debug("search completed", slog.Int("result_count", len(questions)))
	return questions, nil
}

func (s *questionServiceImpl) ListByCategory(
	ctx context.Context,
	categoryID int64,
) (*CategoryQuestions, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	category, err := s.categories.GetByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			log.Debug("category not found", slog.Int64("category_id", categoryID))
			return nil, ErrCategoryNotFound
		}
		log.Error("failed to get category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", categoryID))
		return nil, NewServiceError("question", "list_by_category", "failed to load category", err)
	}

	questions, err := s.questions.ListByCategory(ctx, categoryID)
	if err != nil {
		log.Error("failed to list questions by category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", categoryID))
		return nil, NewServiceError("question", "list_by_category", "failed to load questions", err)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return nil, NewServiceError("question", "list_by_category", "failed to load categories", err)
	}

	return &CategoryQuestions{
		Category:   category,
		Questions:  questions,
		Categories: categories,
	}, nil
}

func (s *questionServiceImpl) Create(ctx context.Context, question *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := question.Validate(); err != nil {
		log.Debug("question failed validation", slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", ErrInvalidQuestion, err)
	}

	if err := s.questions.Create(ctx, question); err != nil {
		if errors.Is(err, store.ErrInvalidEntity) {
			log.Warn("store rejected question",
				slog.String("error", err.Error()),
				slog.Int64("category_id", question.CategoryID))
			return fmt.Errorf("%w: %w", ErrUnprocessable, err)
		}
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return fmt.Errorf("%w: %w", ErrInvalidQuestion, err)
		}
		log.Error("failed to create question", slog.String("error", err.Error()))
		return NewServiceError("question", "create", "failed to store question", err)
	}

	s.emit(ctx, events.QuestionCreated, events.QuestionPayload{
		QuestionID: question.ID,
		CategoryID: question.CategoryID,
	})
	return nil
}

func (s *questionServiceImpl) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if id < 1 {
		log.Debug("rejecting delete of non-positive id", slog.Int64("question_id", id))
		return fmt.Errorf("%w: question id %d", ErrUnprocessable, id)
	}

	if err := s.questions.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrQuestionNotFound) {
			return ErrQuestionNotFound
		}
		log.Error("failed to delete question",
			slog.String("error", err.Error()),
			slog.Int64("question_id", id))
		return NewServiceError("question", "delete", "failed to delete question", err)
	}

	s.emit(ctx, events.QuestionDeleted, events.QuestionPayload{QuestionID: id})
	return nil
}

// emit publishes an event. The operation has already succeeded, so failures are only logged.
func (s *questionServiceImpl) emit(ctx context.Context, eventType string, payload events.QuestionPayload) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		log.Error("failed to build event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}
	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Warn("event handler failed",
			slog.String("event_type", eventType),
			slog.String("event_id", event.ID.String()),
			slog.String("error", err.Error()))
	}
}
