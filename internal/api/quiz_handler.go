package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/trivia-api/internal/api/shared"
	"github.com/phrazzld/trivia-api/internal/domain/quiz"
	"github.com/phrazzld/trivia-api/internal/platform/logger"
	"github.com/phrazzld/trivia-api/internal/service"
)

// QuizHandler serves quiz questions.
type QuizHandler struct {
	quiz   service.QuizService
	logger *slog.Logger
}

// NewQuizHandler creates a new QuizHandler
func NewQuizHandler(quizService service.QuizService, logger *slog.Logger) *QuizHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for QuizHandler")
	}

	return &QuizHandler{
		quiz:   quizService,
		logger: logger.With(slog.String("component", "quiz_handler")),
	}
}

// NextQuestion handles POST /quizzes requests.
// A null question in a 200 response ends the quiz.
func (h *QuizHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req QuizRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid quiz request body", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err)
		return
	}

	scope := quiz.ParseScope(req.QuizCategory)

	question, err := h.quiz.NextQuestion(r.Context(), scope, req.PreviousQuestions)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	response := QuizResponse{Success: true}
	if question != nil {
		view := toQuestionView(question)
		response.Question = &view
	}
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}
