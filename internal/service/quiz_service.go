package service

import (
	"context"
	"log/slog"

	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/domain/quiz"
	"github.com/phrazzld/trivia-api/internal/platform/logger"
)

// QuestionSelector picks the next quiz question. *quiz.Selector implements it.
type QuestionSelector interface {
	SelectNext(ctx context.Context, scope quiz.Scope, previouslyAsked []int64) (*domain.Question, error)
}

// QuizService serves quiz questions.
type QuizService interface {
	// NextQuestion returns a random unseen question within scope, or nil
	// when the session is over or nothing eligible remains.
	NextQuestion(ctx context.Context, scope quiz.Scope, previous []int64) (*domain.Question, error)
}

type quizServiceImpl struct {
	selector QuestionSelector
	logger   *slog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(selector QuestionSelector, logger *slog.Logger) (QuizService, error) {
	if selector == nil {
		return nil, domain.NewValidationError("selector", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &quizServiceImpl{
		selector: selector,
		logger:   logger.With(slog.String("component", "quiz_service")),
	}, nil
}

func (s *quizServiceImpl) NextQuestion(
	ctx context.Context,
	scope quiz.Scope,
	previous []int64,
) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	question, err := s.selector.SelectNext(ctx, scope, previous)
	if err != nil {
		log.Error("failed to select quiz question",
			slog.String("scope", scope.String()),
			slog.String("error", err.Error()))
		return nil, NewServiceError("quiz", "next_question", "failed to select question", err)
	}

	if question == nil {
		log.Debug("quiz has no further question",
			slog.String("scope", scope.String()),
			slog.Int("previous_count", len(previous)))
		return nil, nil
	}

	log.Debug("quiz question selected",
		slog.String("scope", scope.String()),
		slog.Int64("question_id", question.ID),
		slog.Int("previous_count", len(previous)))
	return question, nil
}
