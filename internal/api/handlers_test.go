package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/domain/quiz"
	"github.com/phrazzld/trivia-api/internal/mocks"
	"github.com/phrazzld/trivia-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	science = &domain.Category{ID: 1, Type: "Science"}
	art     = &domain.Category{ID: 2, Type: "Art"}
)

type testServices struct {
	questions  *mocks.MockQuestionService
	categories *mocks.MockCategoryService
	quiz       *mocks.MockQuizService
}

func newTestRouter(t *testing.T) (http.Handler, *testServices) {
	t.Helper()

	svcs := &testServices{
		questions:  &mocks.MockQuestionService{},
		categories: &mocks.MockCategoryService{Categories: []*domain.Category{science, art}},
		quiz:       &mocks.MockQuizService{},
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	questionHandler := NewQuestionHandler(svcs.questions, log)
	categoryHandler := NewCategoryHandler(svcs.categories, svcs.questions, log)
	quizHandler := NewQuizHandler(svcs.quiz, log)

	r := chi.NewRouter()
	r.Get("/categories", categoryHandler.ListCategories)
	r.Get("/categories/{id:[0-9]+}/questions", categoryHandler.ListCategoryQuestions)
	r.Get("/questions", questionHandler.ListQuestions)
	r.Post("/questions", questionHandler.PostQuestions)
	r.Delete("/questions/{id:[0-9]+}", questionHandler.DeleteQuestion)
	r.Post("/quizzes", quizHandler.NextQuestion)
	return r, svcs
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var decoded map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded), rec.Body.String())
	}
	return rec, decoded
}

func assertErrorEnvelope(t *testing.T, body map[string]any, status int, message string) {
	t.Helper()
	assert.Equal(t, false, body["success"])
	assert.Equal(t, float64(status), body["error"])
	assert.Equal(t, message, body["message"])
}

func TestListCategories(t *testing.T) {
	h, _ := newTestRouter(t)

	rec, body := doRequest(t, h, http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, map[string]any{"1": "Science", "2": "Art"}, body["categories"])
}

func TestListCategories_ServiceFailure(t *testing.T) {
	h, svcs := newTestRouter(t)
	svcs.categories.Err = errors.New("connection reset")

	rec, body := doRequest(t, h, http.MethodGet, "/categories", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assertErrorEnvelope(t, body, http.StatusInternalServerError, "internal server error")
}

func TestListQuestions(t *testing.T) {
	h, svcs := newTestRouter(t)
	svcs.questions.Page = &service.QuestionPage{
		Questions:       []*domain.Question{{ID: 20, Text: "q", Answer: "a", Difficulty: 4, CategoryID: 1}},
		Total:           19,
		Categories:      []*domain.Category{science, art},
		CurrentCategory: science,
	}

	rec, body := doRequest(t, h, http.MethodGet, "/questions?page=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{2}, svcs.questions.Pages)
	assert.Equal(t, float64(19), body["totalQuestions"])
	assert.Equal(t, "Science", body["currentCategory"])
	questions := body["questions"].([]any)
	require.Len(t, questions, 1)
	assert.Equal(t, map[string]any{
		"id": float64(20), "question": "q", "answer": "a", "difficulty": float64(4), "category": float64(1),
	}, questions[0])
}

func TestListQuestions_PageParsing(t *testing.T) {
	h, svcs := newTestRouter(t)
	svcs.questions.Page = &service.QuestionPage{Questions: []*domain.Question{{ID: 1}}}

	doRequest(t, h, http.MethodGet, "/questions", "")
	doRequest(t, h, http.MethodGet, "/questions?page=abc", "")
	doRequest(t, h, http.MethodGet, "/questions?page=0", "")
	assert.Equal(t, []int{1, 1, 0}, svcs.questions.Pages)
}

func TestListQuestions_OutOfRange(t *testing.T) {
	h, svcs := newTestRouter(t)
	svcs.questions.Err = service.ErrPageOutOfRange

	rec, body := doRequest(t, h, http.MethodGet, "/questions?page=1000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assertErrorEnvelope(t, body, http.StatusNotFound, "resource not found")
}

func TestListCategoryQuestions(t *testing.T) {
	h, svcs := newTestRouter(t)
	svcs.questions.ListByCategoryFn = func(_ context.Context, id int64) (*service.CategoryQuestions, error) {
		if id != 2 {
			return nil, service.ErrCategoryNotFound
		}
		return &service.CategoryQuestions{
			Category:   art,
			Questions:  []*domain.Question{{ID: 16, CategoryID: 2}, {ID: 17, CategoryID: 2}},
			Categories: []*domain.Category{science, art},
		}, nil
	}

	rec, body := doRequest(t, h, http.MethodGet, "/categories/2/questions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Art", body["currentCategory"])
	assert.Equal(t, float64(2), body["totalQuestions"])

	rec, body = doRequest(t, h, http.MethodGet, "/categories/99/questions", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assertErrorEnvelope(t, body, http.StatusNotFound, "resource not found")
}

func TestSearchQuestions(t *testing.T) {
	h, svcs := newTestRouter(t)
	svcs.questions.SearchFn = func(_ context.Context, term string) ([]*domain.Question, error) {
		if term == "title" {
			return []*domain.Question{{ID: 5, CategoryID: 4}, {ID: 6, CategoryID: 5}}, nil
		}
		return []*domain.Question{}, nil
	}

	rec, body := doRequest(t, h, http.MethodPost, "/questions", `{"searchTerm":"title"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["totalQuestions"])
	assert.Equal(t, float64(4), body["currentCategory"])

	rec, body = doRequest(t, h, http.MethodPost, "/questions", `{"searchTerm":"zzz"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), body["totalQuestions"])
	assert.Equal(t, "", body["currentCategory"])
	assert.Equal(t, []any{}, body["questions"])
	assert.Empty(t, svcs.questions.Created)
}

func TestCreateQuestion(t *testing.T) {
	h, svcs := newTestRouter(t)
	svcs.questions.CreatedID = 24

	rec, body := doRequest(t, h, http.MethodPost, "/questions",
		`{"question":" Who painted the Mona Lisa? ","answer":"Leonardo","difficulty":"2","category":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, float64(24), body["created"])

	require.Len(t, svcs.questions.Created, 1)
	assert.Equal(t, &domain.Question{
		ID: 24, Text: "Who painted the Mona Lisa?", Answer: "Leonardo", Difficulty: 2, CategoryID: 2,
	}, svcs.questions.Created[0])
}

func TestCreateQuestion_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing answer", body: `{"question":"q","difficulty":1,"category":1}`},
		{name: "missing everything", body: `{}`},
		{name: "malformed json", body: `{"question":`},
		{name: "empty body", body: ""},
		{name: "non-numeric category", body: `{"question":"q","answer":"a","difficulty":1,"category":"science"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, svcs := newTestRouter(t)

			rec, body := doRequest(t, h, http.MethodPost, "/questions", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assertErrorEnvelope(t, body, http.StatusBadRequest, "bad request")
			assert.Empty(t, svcs.questions.Created)
		})
	}
}

func TestCreateQuestion_Unprocessable(t *testing.T) {
	h, svcs := newTestRouter(t)
	svcs.questions.Err = service.ErrUnprocessable

	rec, body := doRequest(t, h, http.MethodPost, "/questions",
		`{"question":"q","answer":"a","difficulty":1,"category":1000}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assertErrorEnvelope(t, body, http.StatusUnprocessableEntity, "unprocessable")
}

func TestDeleteQuestion(t *testing.T) {
	h, svcs := newTestRouter(t)
	svcs.questions.DeleteFn = func(_ context.Context, id int64) error {
		switch {
		case id == 0:
			return service.ErrUnprocessable
		case id == 1000:
			return service.ErrQuestionNotFound
		}
		return nil
	}

	rec, body := doRequest(t, h, http.MethodDelete, "/questions/9", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{"success": true, "deleted": float64(9)}, body)

	rec, _ = doRequest(t, h, http.MethodDelete, "/questions/1000", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = doRequest(t, h, http.MethodDelete, "/questions/0", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestNextQuizQuestion(t *testing.T) {
	h, svcs := newTestRouter(t)
	svcs.quiz.Question = &domain.Question{ID: 12, Text: "Who invented Peanut Butter?", Answer: "George Washington Carver", Difficulty: 2, CategoryID: 4}

	rec, body := doRequest(t, h, http.MethodPost, "/quizzes",
		`{"previous_questions":[5,9],"quiz_category":{"id":"4","type":"History"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(12), body["question"].(map[string]any)["id"])

	call, ok := svcs.quiz.LastCall()
	require.True(t, ok)
	assert.Equal(t, quiz.ForCategory(4), call.Scope)
	assert.Equal(t, []int64{5, 9}, call.Previous)
}

func TestNextQuizQuestion_SessionOver(t *testing.T) {
	h, svcs := newTestRouter(t)

	rec, body := doRequest(t, h, http.MethodPost, "/quizzes",
		`{"previous_questions":[22,17,9,5,1],"quiz_category":null}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, body, "question")
	assert.Nil(t, body["question"])

	call, ok := svcs.quiz.LastCall()
	require.True(t, ok)
	assert.True(t, call.Scope.IsAny())
}

func TestNextQuizQuestion_UnknownCategoryIsNotAnError(t *testing.T) {
	h, svcs := newTestRouter(t)

	rec, body := doRequest(t, h, http.MethodPost, "/quizzes",
		`{"previous_questions":[],"quiz_category":{"id":"bogus"}}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, body["question"])

	call, _ := svcs.quiz.LastCall()
	assert.True(t, call.Scope.IsNone())
}

func TestNextQuizQuestion_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing previous_questions", body: `{"quiz_category":{"id":1}}`},
		{name: "missing quiz_category", body: `{"previous_questions":[]}`},
		{name: "null previous_questions", body: `{"previous_questions":null,"quiz_category":null}`},
		{name: "string ids", body: `{"previous_questions":["a"],"quiz_category":null}`},
		{name: "object previous_questions", body: `{"previous_questions":{"0":5},"quiz_category":null}`},
		{name: "scalar previous_questions", body: `{"previous_questions":5,"quiz_category":null}`},
		{name: "not an object", body: `[1,2]`},
		{name: "empty body", body: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, svcs := newTestRouter(t)

			rec, body := doRequest(t, h, http.MethodPost, "/quizzes", tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assertErrorEnvelope(t, body, http.StatusBadRequest, "bad request")
			assert.Empty(t, svcs.quiz.Calls)
		})
	}
}

func TestNextQuizQuestion_ServiceFailure(t *testing.T) {
	h, svcs := newTestRouter(t)
	svcs.quiz.Err = service.NewServiceError("quiz", "next_question", "failed to select question", errors.New("db down"))

	rec, body := doRequest(t, h, http.MethodPost, "/quizzes", `{"previous_questions":[],"quiz_category":0}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assertErrorEnvelope(t, body, http.StatusInternalServerError, "internal server error")
	assert.NotContains(t, rec.Body.String(), "db down")
}

func TestHandlerConstructorsRequireLogger(t *testing.T) {
	assert.Panics(t, func() { NewQuestionHandler(&mocks.MockQuestionService{}, nil) })
	assert.Panics(t, func() { NewCategoryHandler(&mocks.MockCategoryService{}, &mocks.MockQuestionService{}, nil) })
	assert.Panics(t, func() { NewQuizHandler(&mocks.MockQuizService{}, nil) })
}
