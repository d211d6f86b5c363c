package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/trivia-api/internal/api/shared"
	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/service"
	"github.com/phrazzld/trivia-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Not found errors
	case errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrPageOutOfRange),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Well-formed but unprocessable
	case errors.Is(err, service.ErrInvalidQuestion),
		errors.Is(err, service.ErrUnprocessable),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusUnprocessableEntity

	// Bad request errors
	case errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// HandleAPIError writes the error envelope for err with the mapped status.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), err)
}
