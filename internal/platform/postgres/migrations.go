package postgres

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// MigrationsDir is the directory inside Migrations that holds the SQL files.
const MigrationsDir = "migrations"

// MigrationsTable is the goose version table.
const MigrationsTable = "schema_migrations"

// Migrations holds the goose SQL migrations for the trivia schema.
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationCommands lists the goose commands Migrate accepts.
var MigrationCommands = []string{"up", "down", "status", "reset", "version"}

// Migrate runs a goose command against db using the embedded migrations.
// A nil log keeps the goose default logger.
func Migrate(ctx context.Context, db *sql.DB, command string, log goose.Logger) error {
	if !isMigrationCommand(command) {
		return fmt.Errorf("unsupported migration command %q", command)
	}

	goose.SetBaseFS(Migrations)
	goose.SetTableName(MigrationsTable)
	if log != nil {
		goose.SetLogger(log)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.RunContext(ctx, command, db, MigrationsDir); err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}

func isMigrationCommand(command string) bool {
	for _, c := range MigrationCommands {
		if c == command {
			return true
		}
	}
	return false
}
