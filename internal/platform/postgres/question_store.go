package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/platform/logger"
	"github.com/phrazzld/trivia-api/internal/store"
)

const questionColumns = `id, question, answer, difficulty, category_id`

// likeEscaper escapes the LIKE wildcards so search terms match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// PostgresQuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresQuestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the QuestionStore interface.
// It accepts a database connection or transaction that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresQuestionStore(db store.DBTX, logger *slog.Logger) *PostgresQuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

// Ensure PostgresQuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

// Create implements store.QuestionStore.Create.
// The generated ID is written back into question.
func (s *PostgresQuestionStore) Create(ctx context.Context, question *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := question.Validate(); err != nil {
		log.Warn("question validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO questions (question, answer, difficulty, category_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		question.Text,
		question.Answer,
		question.Difficulty,
		question.CategoryID,
	).Scan(&question.ID)
	if err != nil {
		mapped := MapError(err)
		if errors.Is(mapped, store.ErrInvalidEntity) {
			log.Warn("database rejected question",
				slog.String("error", err.Error()),
				slog.Int64("category_id", question.CategoryID))
			return mapped
		}

		log.Error("failed to create question",
			slog.String("error", err.Error()),
			slog.Int64("category_id", question.CategoryID))
		return store.NewStoreError("question", "create", "insert failed", mapped)
	}

	log.Info("question created successfully",
		slog.Int64("question_id", question.ID),
		slog.Int64("category_id", question.CategoryID))
	return nil
}

// GetByID implements store.QuestionStore.GetByID.
// Returns store.ErrQuestionNotFound if the question does not exist.
func (s *PostgresQuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("retrieving question by ID", slog.Int64("question_id", id))

	query := `SELECT ` + questionColumns + ` FROM questions WHERE id = $1`

	var q domain.Question
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&q.ID,
		&q.Text,
		&q.Answer,
		&q.Difficulty,
		&q.CategoryID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("question not found", slog.Int64("question_id", id))
			return nil, store.ErrQuestionNotFound
		}

		log.Error("failed to get question by ID",
			slog.String("error", err.Error()),
			slog.Int64("question_id", id))
		return nil, store.NewStoreError("question", "get", "query failed", MapError(err))
	}

	return &q, nil
}

// Delete implements store.QuestionStore.Delete.
// Returns store.ErrQuestionNotFound if the question does not exist.
func (s *PostgresQuestionStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete question",
			slog.String("error", err.Error()),
			slog.Int64("question_id", id))
		return store.NewStoreError("question", "delete", "delete failed", MapError(err))
	}

	if err := CheckRowsAffected(result, store.ErrQuestionNotFound); err != nil {
		if errors.Is(err, store.ErrQuestionNotFound) {
			log.Debug("question not found for deletion", slog.Int64("question_id", id))
			return err
		}
		log.Error("failed to check deleted rows",
			slog.String("error", err.Error()),
			slog.Int64("question_id", id))
		return store.NewStoreError("question", "delete", "rows affected check failed", err)
	}

	log.Info("question deleted successfully", slog.Int64("question_id", id))
	return nil
}

// List implements store.QuestionStore.List.
func (s *PostgresQuestionStore) List(
	ctx context.Context,
	limit, offset int,
) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions ORDER BY id LIMIT $1 OFFSET $2`
	return s.query(ctx, "list", query, limit, offset)
}

// Count implements store.QuestionStore.Count.
func (s *PostgresQuestionStore) Count(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM questions`).Scan(&total); err != nil {
		log.Error("failed to count questions", slog.String("error", err.Error()))
		return 0, store.NewStoreError("question", "count", "query failed", MapError(err))
	}
	return total, nil
}

// Search implements store.QuestionStore.Search.
// The term is matched as a literal substring; LIKE wildcards in it are escaped.
func (s *PostgresQuestionStore) Search(ctx context.Context, term string) ([]*domain.Question, error) {
	query := `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE question ILIKE '%' || $1 || '%'
		ORDER BY id
	`
	return s.query(ctx, "search", query, escapeLike(term))
}

// ListByCategory implements store.QuestionStore.ListByCategory.
func (s *PostgresQuestionStore) ListByCategory(
	ctx context.Context,
	categoryID int64,
) ([]*domain.Question, error) {
	query := `SELECT ` + questionColumns + ` FROM questions WHERE category_id = $1 ORDER BY id`
	return s.query(ctx, "list_by_category", query, categoryID)
}

// FindQuestions implements store.QuestionStore.FindQuestions.
func (s *PostgresQuestionStore) FindQuestions(
	ctx context.Context,
	filter domain.QuestionFilter,
) ([]*domain.Question, error) {
	logger.FromContextOrDefault(ctx, s.logger).Debug("finding questions",
		slog.String("filter", describeFilter(filter)))

	var category sql.NullInt64
	if filter.CategoryID != nil {
		category = sql.NullInt64{Int64: *filter.CategoryID, Valid: true}
	}

	// A nil slice would be sent as NULL and "id <> ALL(NULL)" matches nothing.
	exclude := filter.ExcludeIDs
	if exclude == nil {
		exclude = []int64{}
	}

	query := `
		SELECT ` + questionColumns + `
		FROM questions
		WHERE ($1::bigint IS NULL OR category_id = $1)
		  AND id <> ALL($2::bigint[])
		ORDER BY id
	`
	return s.query(ctx, "find", query, category, exclude)
}

func (s *PostgresQuestionStore) query(
	ctx context.Context,
	operation, query string,
	args ...any,
) ([]*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query questions",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("question", operation, "query failed", MapError(err))
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Error("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	questions := make([]*domain.Question, 0)
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Text, &q.Answer, &q.Difficulty, &q.CategoryID); err != nil {
			log.Error("failed to scan question row",
				slog.String("operation", operation),
				slog.String("error", err.Error()))
			return nil, store.NewStoreError("question", operation, "scan failed", err)
		}
		questions = append(questions, &q)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating question rows",
			slog.String("operation", operation),
			slog.String("error", err.Error()))
		return nil, store.NewStoreError("question", operation, "row iteration failed", err)
	}

	log.Debug("questions retrieved",
		slog.String("operation", operation),
		slog.Int("count", len(questions)))
	return questions, nil
}

func describeFilter(filter domain.QuestionFilter) string {
	category := "any"
	if filter.CategoryID != nil {
		category = strconv.FormatInt(*filter.CategoryID, 10)
	}
	return fmt.Sprintf("category=%s excluded=%d", category, len(filter.ExcludeIDs))
}
