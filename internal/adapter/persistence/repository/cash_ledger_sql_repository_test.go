package repository

import (
	"context"
	"testing"
	"time"

	"phone_repair/internal/domain/entities"
	"phone_repair/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCashLedgerSQLRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewCashLedgerSQLRepository(newTestDB(t))

	before := time.Now().UTC().Add(-time.Minute)
	created, err := repo.Create(ctx, entities.CashEntry{ReceiptNumber: "A-1", Amount: 42.5, Description: strPtr("sinal")})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "A-1", created.ReceiptNumber)
	assert.Equal(t, 42.5, created.Amount)
	require.NotNil(t, created.Description)
	assert.Equal(t, "sinal", *created.Description)
	assert.True(t, created.Date.After(before), "store generated timestamp expected, got %v", created.Date)

	t.Run("duplicate receipt", func(t *testing.T) {
		_, err := repo.Create(ctx, entities.CashEntry{ReceiptNumber: "A-1", Amount: 1})
		assert.ErrorIs(t, err, interfaces.ErrUniqueViolation)
	})

	t.Run("update", func(t *testing.T) {
		n, err := repo.UpdateAmount(ctx, "A-1", 50)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = repo.UpdateAmount(ctx, "missing", 50)
		require.NoError(t, err)
		assert.Zero(t, n)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, 50.0, all[0].Amount)
	})

	t.Run("delete", func(t *testing.T) {
		n, err := repo.Delete(ctx, "missing")
		require.NoError(t, err)
		assert.Zero(t, n)

		n, err = repo.Delete(ctx, "A-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)
		assert.NotNil(t, all)
	})
}
