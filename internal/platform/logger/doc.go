// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured JSON logging
// with configurable log levels. A request-scoped logger travels in the context so that
// handlers, services and stores log with the same trace attributes.
package logger
