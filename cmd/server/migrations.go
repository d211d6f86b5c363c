package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/trivia-api/internal/platform/postgres"
)

// runMigrations executes one goose command against the embedded migrations.
func runMigrations(ctx context.Context, db *sql.DB, command string, logger *slog.Logger) error {
	logger.Info("executing migrations", slog.String("command", command))

	if err := postgres.Migrate(ctx, db, command, &slogGooseLogger{logger: logger}); err != nil {
		return err
	}

	logger.Info("migrations finished", slog.String("command", command))
	return nil
}

// slogGooseLogger adapts slog to goose's logger interface.
type slogGooseLogger struct {
	logger *slog.Logger
	exit   func(code int)
}

// Printf implements goose.Logger
func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("source", "goose"))
}

// Fatalf implements goose.Logger
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), slog.String("source", "goose"))
	if l.exit == nil {
		os.Exit(1)
	}
	l.exit(1)
}
