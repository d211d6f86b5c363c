// Package main implements the entry point for the trivia API server,
// which serves categories, questions and quiz questions over HTTP.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/phrazzld/trivia-api/internal/config"
	"github.com/phrazzld/trivia-api/internal/platform/logger"
	"github.com/phrazzld/trivia-api/internal/platform/postgres"
)

func main() {
	migrateCmd := flag.String(
		"migrate",
		"",
		"Run database migrations ("+strings.Join(postgres.MigrationCommands, ", ")+") and exit",
	)
	flag.Parse()

	if err := run(context.Background(), *migrateCmd); err != nil {
		log.Fatalf("trivia-api: %v", err)
	}
}

// run loads configuration, connects to the database and either runs a
// migration command or serves HTTP until shutdown.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	l.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Int("max_questions_per_session", cfg.Quiz.MaxQuestionsPerSession),
		slog.Int("questions_per_page", cfg.API.QuestionsPerPage))

	db, err := setupAppDatabase(ctx, cfg, l)
	if err != nil {
		return err
	}

	if migrateCmd != "" {
		defer func() {
			if cerr := db.Close(); cerr != nil {
				l.Error("failed to close database connection", "error", cerr)
			}
		}()
		return runMigrations(ctx, db, migrateCmd, l)
	}

	app, err := newApplication(cfg, l, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
