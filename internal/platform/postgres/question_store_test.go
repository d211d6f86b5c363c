//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/phrazzld/trivia-api/internal/domain"
	"github.com/phrazzld/trivia-api/internal/platform/postgres"
	"github.com/phrazzld/trivia-api/internal/store"
	"github.com/phrazzld/trivia-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func questionIDs(questions []*domain.Question) []int64 {
	ids := make([]int64, 0, len(questions))
	for _, q := range questions {
		ids = append(ids, q.ID)
	}
	return ids
}

func TestPostgresQuestionStore_CreateGetDelete(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		questionStore := postgres.NewPostgresQuestionStore(tx, nil)

		q, err := domain.NewQuestion("What is the chemical symbol for gold?", "Au", 2, 1)
		require.NoError(t, err)

		require.NoError(t, questionStore.Create(ctx, q))
		assert.Greater(t, q.ID, int64(24), "ID should come after the seeded questions")

		got, err := questionStore.GetByID(ctx, q.ID)
		require.NoError(t, err)
		assert.Equal(t, q, got)

		require.NoError(t, questionStore.Delete(ctx, q.ID))

		_, err = questionStore.GetByID(ctx, q.ID)
		assert.ErrorIs(t, err, store.ErrQuestionNotFound)

		err = questionStore.Delete(ctx, q.ID)
		assert.ErrorIs(t, err, store.ErrQuestionNotFound)
	})
}

func TestPostgresQuestionStore_CreateUnknownCategory(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		questionStore := postgres.NewPostgresQuestionStore(tx, nil)

		q := &domain.Question{Text: "q", Answer: "a", Difficulty: 1, CategoryID: 9999}
		err := questionStore.Create(context.Background(), q)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})
}

func TestPostgresQuestionStore_ListAndCount(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		questionStore := postgres.NewPostgresQuestionStore(tx, nil)

		total, err := questionStore.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 20, total)

		first, err := questionStore.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, []int64{2, 4, 5, 6, 9, 10, 11, 12, 13, 14}, questionIDs(first))

		second, err := questionStore.List(ctx, 10, 10)
		require.NoError(t, err)
		assert.Len(t, second, 10)

		empty, err := questionStore.List(ctx, 10, 20)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}

func TestPostgresQuestionStore_Search(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		questionStore := postgres.NewPostgresQuestionStore(tx, nil)

		found, err := questionStore.Search(ctx, "TITLE")
		require.NoError(t, err)
		assert.Equal(t, []int64{5, 6}, questionIDs(found))

		found, err = questionStore.Search(ctx, "%")
		require.NoError(t, err)
		assert.Empty(t, found, "wildcards should match literally")
	})
}

func TestPostgresQuestionStore_FindQuestions(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		questionStore := postgres.NewPostgresQuestionStore(tx, nil)

		history := int64(4)
		found, err := questionStore.FindQuestions(ctx, domain.QuestionFilter{
			CategoryID: &history,
			ExcludeIDs: []int64{5, 9},
		})
		require.NoError(t, err)
		assert.Equal(t, []int64{12, 23, 24}, questionIDs(found))

		all, err := questionStore.FindQuestions(ctx, domain.QuestionFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 20, "nil exclusions should not filter anything")

		unknown := int64(9999)
		none, err := questionStore.FindQuestions(ctx, domain.QuestionFilter{CategoryID: &unknown})
		require.NoError(t, err)
		assert.Empty(t, none)
	})
}

func TestPostgresCategoryStore(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		ctx := context.Background()
		categoryStore := postgres.NewPostgresCategoryStore(tx, nil)

		categories, err := categoryStore.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, map[int64]string{
			1: "Science", 2: "Art", 3: "Geography", 4: "History", 5: "Entertainment", 6: "Sports",
		}, domain.CategoryNames(categories))

		c, err := categoryStore.GetByID(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "Geography", c.Type)

		_, err = categoryStore.GetByID(ctx, 42)
		assert.ErrorIs(t, err, store.ErrCategoryNotFound)
	})
}
