package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/phrazzld/trivia-api/internal/api"
	apiMiddleware "github.com/phrazzld/trivia-api/internal/api/middleware"
	"github.com/phrazzld/trivia-api/internal/api/shared"
)

// setupRouter creates the chi router with middleware, CORS and every route.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: app.config.API.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		ExposedHeaders: []string{shared.TraceIDHeader},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusMethodNotAllowed)
	})

	questionHandler := api.NewQuestionHandler(app.questionService, app.logger)
	categoryHandler := api.NewCategoryHandler(app.categoryService, app.questionService, app.logger)
	quizHandler := api.NewQuizHandler(app.quizService, app.logger)

	r.Get("/categories", categoryHandler.ListCategories)
	r.Get("/categories/{id:[0-9]+}/questions", categoryHandler.ListCategoryQuestions)

	r.Get("/questions", questionHandler.ListQuestions)
	r.Post("/questions", questionHandler.PostQuestions)
	r.Delete("/questions/{id:[0-9]+}", questionHandler.DeleteQuestion)

	r.Post("/quizzes", quizHandler.NextQuestion)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
