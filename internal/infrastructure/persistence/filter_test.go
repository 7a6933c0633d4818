package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", ValidateSortOrder("asc"))
	assert.Equal(t, "ASC", ValidateSortOrder(" ASC "))
	assert.Equal(t, "DESC", ValidateSortOrder("desc"))
	assert.Equal(t, "DESC", ValidateSortOrder(""))
	assert.Equal(t, "DESC", ValidateSortOrder("junk; DROP TABLE"))
}

func TestValidateSortField(t *testing.T) {
	t.Run("allows whitelisted field", func(t *testing.T) {
		got := ValidateSortField("due_date", TaskSortFields, "created_at")
		assert.Equal(t, "due_date", got)
	})

	t.Run("falls back on unknown field", func(t *testing.T) {
		got := ValidateSortField("password_hash", TaskSortFields, "created_at")
		assert.Equal(t, "created_at", got)
	})

	t.Run("falls back on empty field", func(t *testing.T) {
		got := ValidateSortField("  ", TransactionSortFields, "occurred_at")
		assert.Equal(t, "occurred_at", got)
	})
}
