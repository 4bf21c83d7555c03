package queries_test

import (
	"math"
	"testing"

	"capacity/internal/core/application/usecases/queries"
	"capacity/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListCapacitiesQuery(t *testing.T) {
	t.Run("should accept sort key and order case-insensitively", func(t *testing.T) {
		q, err := queries.NewListCapacitiesQuery(1, 5, "Technologies", "DESC")

		require.NoError(t, err)
		assert.True(t, q.ByTechnologies())
		assert.True(t, q.Descending())
		assert.Equal(t, "Technologies", q.SortBy())
		assert.Equal(t, "DESC", q.Order())
		assert.NoError(t, q.Validate())
	})

	t.Run("should default empty sort key and order", func(t *testing.T) {
		q, err := queries.NewListCapacitiesQuery(0, 10, "", "")

		require.NoError(t, err)
		assert.Equal(t, queries.SortByName, q.SortBy())
		assert.Equal(t, queries.OrderAsc, q.Order())
		assert.False(t, q.ByTechnologies())
		assert.False(t, q.Descending())
	})

	t.Run("should reject negative paging", func(t *testing.T) {
		_, err := queries.NewListCapacitiesQuery(-1, -1, "name", "asc")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should bound the page size", func(t *testing.T) {
		_, err := queries.NewListCapacitiesQuery(0, queries.MaxPageSize+1, "name", "asc")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "size")

		q, err := queries.NewListCapacitiesQuery(0, queries.MaxPageSize, "name", "asc")
		require.NoError(t, err)
		assert.Equal(t, queries.MaxPageSize, q.Size())
	})

	t.Run("should reject a page whose offset overflows", func(t *testing.T) {
		_, err := queries.NewListCapacitiesQuery(math.MaxInt/10+1, 10, "name", "asc")
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "page")

		_, err = queries.NewListCapacitiesQuery(math.MaxInt, 0, "name", "asc")
		require.NoError(t, err)
	})

	t.Run("should reject unknown sort key and order", func(t *testing.T) {
		_, err := queries.NewListCapacitiesQuery(0, 10, "description", "up")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "sortBy")
		assert.Contains(t, err.Error(), "order")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var q queries.ListCapacitiesQuery

		require.ErrorIs(t, q.Validate(), queries.ErrListCapacitiesQueryIsNotConstructed)
	})
}
