package repository_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"todomac/shared/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID int64
}

func TestFetchOneResult(t *testing.T) {
	t.Run("passes through success", func(t *testing.T) {
		got, err := repository.FetchOneResult(row{ID: 1}, nil, "get", "todo", "1")

		require.NoError(t, err)
		assert.Equal(t, row{ID: 1}, got)
	})

	t.Run("maps no rows to not found", func(t *testing.T) {
		got, err := repository.FetchOneResult(row{ID: 9}, fmt.Errorf("scan: %w", sql.ErrNoRows), "get", "todo", "93")

		var notFound *repository.EntityNotFoundError

		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "todo", notFound.Entity)
		assert.Equal(t, "93", notFound.ID)
		assert.Equal(t, "entity not found: todo - 93", err.Error())
		assert.Equal(t, row{}, got)
		assert.True(t, repository.IsNotFound(err))
	})

	t.Run("wraps other failures", func(t *testing.T) {
		cause := errors.New("connection reset")

		_, err := repository.FetchOneResult(row{}, cause, "update", "todo", "1")

		var storeErr *repository.StoreError

		require.ErrorAs(t, err, &storeErr)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, "update", storeErr.Op)
		assert.False(t, repository.IsNotFound(err))
		assert.Equal(t, "failed to update data (todo): connection reset", err.Error())
	})
}
