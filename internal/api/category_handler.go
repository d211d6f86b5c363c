package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/trivia-api/internal/api/shared"
	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/platform/logger"
	"github.com/phrazzld/trivia-api/internal/service"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categories service.CategoryService
	questions  service.QuestionService
	logger     *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(
	categories service.CategoryService,
	questions service.QuestionService,
	logger *slog.Logger,
) *CategoryHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CategoryHandler")
	}

	return &CategoryHandler{
		categories: categories,
		questions:  questions,
		logger:     logger.With(slog.String("component", "category_handler")),
	}
}

// ListCategories handles GET /categories requests
func (h *CategoryHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categories.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoriesResponse{
		Success:    true,
		Categories: domain.CategoryNames(categories),
	})
}

// ListCategoryQuestions handles GET /categories/{id}/questions requests.
// An unknown category is a 404.
func (h *CategoryHandler) ListCategoryQuestions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	categoryID, err := getPathInt64(r, "id")
	if err != nil {
		log.Debug("invalid category id", slog.String("error", err.Error()))
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.questions.ListByCategory(r.Context(), categoryID)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, QuestionListResponse{
		Success:         true,
		Questions:       toQuestionViews(result.Questions),
		TotalQuestions:  len(result.Questions),
		Categories:      domain.CategoryNames(result.Categories),
		CurrentCategory: result.Category.Type,
	})
}
