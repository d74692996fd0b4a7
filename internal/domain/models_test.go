package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastPage(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{23, 3, 8},
		{5, 1, 5},
		{2, math.MaxInt64, 1},
		{10, math.MaxInt64 - 1, 1},
		{math.MaxInt64, math.MaxInt64, 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, LastPage(tc.total, tc.limit), "total=%d limit=%d", tc.total, tc.limit)
	}
}

func TestPaginationQuery_WithDefaults(t *testing.T) {
	q := PaginationQuery{}.WithDefaults()
	assert.Equal(t, PaginationQuery{Page: 1, Limit: 10}, q)
	offset, err := q.Offset()
	require.NoError(t, err)
	assert.Equal(t, 0, offset)

	q = PaginationQuery{Page: 4, Limit: 25}.WithDefaults()
	assert.Equal(t, PaginationQuery{Page: 4, Limit: 25}, q)
	offset, err = q.Offset()
	require.NoError(t, err)
	assert.Equal(t, 75, offset)
}

func TestPaginationQuery_OffsetRange(t *testing.T) {
	t.Run("Wrapping offset is rejected", func(t *testing.T) {
		_, err := PaginationQuery{Page: 1844674407370955161, Limit: 10}.Offset()
		assert.ErrorIs(t, err, ErrPageOutOfRange)

		_, err = PaginationQuery{Page: 3, Limit: math.MaxInt}.Offset()
		assert.ErrorIs(t, err, ErrPageOutOfRange)
	})

	t.Run("Largest addressable offsets", func(t *testing.T) {
		offset, err := PaginationQuery{Page: 1, Limit: math.MaxInt}.Offset()
		require.NoError(t, err)
		assert.Equal(t, 0, offset)

		offset, err = PaginationQuery{Page: 2, Limit: math.MaxInt}.Offset()
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt, offset)

		offset, err = PaginationQuery{Page: math.MaxInt/10 + 1, Limit: 10}.Offset()
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt/10*10, offset)
	})

	t.Run("Unset fields are rejected", func(t *testing.T) {
		_, err := PaginationQuery{}.Offset()
		assert.ErrorIs(t, err, ErrPageOutOfRange)
	})
}

func TestUpdateProductRequest_Changes(t *testing.T) {
	id := int64(7)
	name := "Lamp"
	price := 0.0

	t.Run("Drops id", func(t *testing.T) {
		changes := UpdateProductRequest{ID: &id, Name: &name}.Changes()
		assert.Equal(t, map[string]interface{}{"name": "Lamp"}, changes)
	})

	t.Run("Keeps explicit zero price", func(t *testing.T) {
		changes := UpdateProductRequest{Price: &price}.Changes()
		assert.Equal(t, map[string]interface{}{"price": 0.0}, changes)
	})

	t.Run("Empty", func(t *testing.T) {
		assert.Empty(t, UpdateProductRequest{ID: &id}.Changes())
	})
}
