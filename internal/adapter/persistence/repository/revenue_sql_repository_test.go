package repository

import (
	"context"
	"testing"

	"phone_repair/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRevenueSQLRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRevenueSQLRepository(newTestDB(t))

	require.NoError(t, repo.Upsert(ctx, entities.Revenue{Date: "2024-01-01", Profit: 100, Expense: 40, Total: 60}))

	rows, err := repo.ListByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	first := rows[0]
	assert.Equal(t, 60.0, first.Total)
	assert.False(t, first.CreatedAt.IsZero())

	require.NoError(t, repo.Upsert(ctx, entities.Revenue{Date: "2024-01-01", Profit: 200, Expense: 50, Total: 150}))

	rows, err = repo.ListByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	require.Len(t, rows, 1, "second write for the same date must overwrite")
	assert.Equal(t, first.ID, rows[0].ID)
	assert.Equal(t, 200.0, rows[0].Profit)
	assert.Equal(t, 50.0, rows[0].Expense)
	assert.Equal(t, 150.0, rows[0].Total)
	assert.Equal(t, first.CreatedAt, rows[0].CreatedAt)

	rows, err = repo.ListByDate(ctx, "2030-12-31")
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}
