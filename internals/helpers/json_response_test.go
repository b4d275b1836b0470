package helper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		p := BuildPaginationFromPage(95, 2, 25)
		assert.Equal(t, 2, p.Page)
		assert.Equal(t, 25, p.PerPage)
		assert.Equal(t, int64(95), p.Total)
		assert.Equal(t, 4, p.TotalPages)
		assert.True(t, p.HasNext)
		assert.True(t, p.HasPrev)
	})

	t.Run("empty result still has one page", func(t *testing.T) {
		p := BuildPaginationFromPage(0, 1, 25)
		assert.Equal(t, 1, p.TotalPages)
		assert.False(t, p.HasNext)
		assert.False(t, p.HasPrev)
	})

	t.Run("exact multiple", func(t *testing.T) {
		p := BuildPaginationFromPage(50, 2, 25)
		assert.Equal(t, 2, p.TotalPages)
		assert.False(t, p.HasNext)
	})

	t.Run("bad inputs normalized", func(t *testing.T) {
		p := BuildPaginationFromPage(10, 0, 0)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 20, p.PerPage)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	assert.False(t, IsUniqueViolation(nil))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.True(t, IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "users_user_name_key" (SQLSTATE 23505)`)))
	assert.True(t, IsUniqueViolation(errors.New("pq: duplicate key value")))
}
