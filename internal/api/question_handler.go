package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/trivia-api/internal/api/shared"
	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/platform/logger"
	"github.com/phrazzld/trivia-api/internal/service"
)

// QuestionHandler handles question-related HTTP requests
type QuestionHandler struct {
	questions service.QuestionService
	logger    *slog.Logger
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(questions service.QuestionService, logger *slog.Logger) *QuestionHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for QuestionHandler")
	}

	return &QuestionHandler{
		questions: questions,
		logger:    logger.With(slog.String("component", "question_handler")),
	}
}

// ListQuestions handles GET /questions?page=N requests
func (h *QuestionHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	page := getPage(r)

	result, err := h.questions.ListPage(r.Context(), page)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	response := QuestionListResponse{
		Success:        true,
		Questions:      toQuestionViews(result.Questions),
		TotalQuestions: result.Total,
		Categories:     domain.CategoryNames(result.Categories),
	}
	if result.CurrentCategory != nil {
		response.CurrentCategory = result.CurrentCategory.Type
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// PostQuestions handles POST /questions requests: a search when the body
// carries searchTerm, a create otherwise.
func (h *QuestionHandler) PostQuestions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req QuestionsPostRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		log.Debug("invalid question request body", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err)
		return
	}

	if req.IsSearch() {
		h.search(w, r, *req.SearchTerm)
		return
	}
	h.create(w, r, &req.CreateQuestionRequest)
}

func (h *QuestionHandler) search(w http.ResponseWriter, r *http.Request, term string) {
	questions, err := h.questions.Search(r.Context(), term)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	response := SearchResponse{
		Success:         true,
		Questions:       toQuestionViews(questions),
		TotalQuestions:  len(questions),
		CurrentCategory: "",
	}
	if len(questions) > 0 {
		response.CurrentCategory = questions[0].CategoryID
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

func (h *QuestionHandler) create(w http.ResponseWriter, r *http.Request, req *CreateQuestionRequest) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("create question request failed validation", slog.String("error", err.Error()))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err)
		return
	}

	question := req.ToDomain()
	if err := h.questions.Create(r.Context(), question); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	log.Info("question created", slog.Int64("question_id", question.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, CreateQuestionResponse{
		Success:  true,
		Created:  question.ID,
		Question: toQuestionView(question),
	})
}

// DeleteQuestion handles DELETE /questions/{id} requests
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, err := getPathInt64(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.questions.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, DeleteQuestionResponse{
		Success: true,
		Deleted: id,
	})
}
