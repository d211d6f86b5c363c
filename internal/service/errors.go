package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// These errors represent common conditions that callers may want to check for with errors.Is().
//
// Error handling principles:
// 1. Service methods return sentinel errors for expected error conditions
// 2. Unexpected errors are wrapped in ServiceError
// 3. Callers use errors.Is/errors.As to check for specific error conditions
// 4. The API layer maps service errors to appropriate HTTP status codes
var (
	// ErrQuestionNotFound indicates the requested question does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrQuestionNotFound = errors.New("question not found")

	// ErrCategoryNotFound indicates the requested category does not exist.
	// API layer should map this to HTTP 404 Not Found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrPageOutOfRange indicates a listing page that holds no questions.
	// API layer should map this to HTTP 404 Not Found.
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrInvalidQuestion indicates question data that failed domain validation.
	// API layer should map this to HTTP 422 Unprocessable Entity.
	ErrInvalidQuestion = errors.New("invalid question")

	// ErrUnprocessable indicates a well-formed request the store could not apply,
	// such as a question referencing an unknown category.
	// API layer should map this to HTTP 422 Unprocessable Entity.
	ErrUnprocessable = errors.New("unprocessable request")
)

// ServiceError is a custom error type for unexpected service failures.
type ServiceError struct {
	Service   string
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ServiceError.
func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s service %s failed: %s: %v", e.Service, e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("%s service %s failed: %s", e.Service, e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Err
}

// NewServiceError creates a new ServiceError.
func NewServiceError(service, operation, message string, err error) *ServiceError {
	return &ServiceError{
		Service:   service,
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
