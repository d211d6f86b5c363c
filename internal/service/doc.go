// Package service provides application-level services for the trivia API:
// paginated and filtered question access, question creation and deletion,
// category lookup, and quiz question selection.
//
// Services depend on the store interfaces and translate store errors into
// the sentinel errors declared in errors.go, which the API layer maps to
// HTTP status codes.
package service
