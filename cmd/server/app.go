package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/trivia-api/internal/config"
	"github.com/phrazzld/trivia-api/internal/domain/quiz"
	"github.com/phrazzld/trivia-api/internal/events"
	"github.com/phrazzld/trivia-api/internal/platform/postgres"
	"github.com/phrazzld/trivia-api/internal/service"
)

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	questionService service.QuestionService
	categoryService service.CategoryService
	quizService     service.QuizService
}

// newApplication wires stores, the event emitter, the quiz selector and the services.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	questionStore := postgres.NewPostgresQuestionStore(db, logger)
	categoryStore := postgres.NewPostgresCategoryStore(db, logger)

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(events.NewAuditLogHandler(logger))

	selector, err := quiz.NewSelector(questionStore, &quiz.Params{
		MaxQuestionsPerSession: cfg.Quiz.MaxQuestionsPerSession,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz selector: %w", err)
	}

	questionService, err := service.NewQuestionService(
		questionStore,
		categoryStore,
		emitter,
		cfg.API.QuestionsPerPage,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create question service: %w", err)
	}

	categoryService, err := service.NewCategoryService(categoryStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %w", err)
	}

	quizService, err := service.NewQuizService(selector, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz service: %w", err)
	}

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		questionService: questionService,
		categoryService: categoryService,
		quizService:     quizService,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db == nil {
		return
	}
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
		return
	}
	app.logger.Info("database connection closed")
}
