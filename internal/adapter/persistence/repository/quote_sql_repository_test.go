package repository

import (
	"context"
	"testing"

	"phone_repair/internal/domain/entities"
	"phone_repair/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuoteSQLRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewQuoteSQLRepository(db)
	cash := NewCashLedgerSQLRepository(db)

	q := entities.Quote{
		RecordNumber: 999998, CustomerName: "JOÃO SILVA", Phone: "11 99999-0000", City: "São Paulo", State: "SP",
		Description: "Troca de tela", PaymentMethod: "pix", Amount: 150.00,
	}

	created, err := repo.CreateWithCashEntry(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, q, created)

	t.Run("quote and cash entry are both stored", func(t *testing.T) {
		got, err := repo.GetByRecordNumber(ctx, 999998)
		require.NoError(t, err)
		assert.Equal(t, q, got)

		entries, err := cash.List(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "999998", entries[0].ReceiptNumber)
		assert.Equal(t, 150.00, entries[0].Amount)
		assert.False(t, entries[0].Date.IsZero())
		assert.Nil(t, entries[0].Description)
	})

	t.Run("duplicate record number keeps the original rows", func(t *testing.T) {
		dup := q
		dup.Amount = 1
		dup.Description = "other"
		_, err := repo.CreateWithCashEntry(ctx, dup)
		require.ErrorIs(t, err, interfaces.ErrUniqueViolation)

		got, err := repo.GetByRecordNumber(ctx, 999998)
		require.NoError(t, err)
		assert.Equal(t, q, got)

		entries, err := cash.List(ctx)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("cash receipt collision rolls back the quote", func(t *testing.T) {
		_, err := cash.Create(ctx, entities.CashEntry{ReceiptNumber: "999997", Amount: 10})
		require.NoError(t, err)

		_, err = repo.CreateWithCashEntry(ctx, entities.Quote{RecordNumber: 999997, Amount: 20})
		require.ErrorIs(t, err, interfaces.ErrUniqueViolation)

		got, err := repo.GetByRecordNumber(ctx, 999997)
		require.NoError(t, err)
		assert.Zero(t, got.RecordNumber)
	})

	t.Run("list is newest first", func(t *testing.T) {
		_, err := repo.CreateWithCashEntry(ctx, entities.Quote{RecordNumber: 999996, CustomerName: "MARIA", Amount: 80})
		require.NoError(t, err)

		all, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, int64(999998), all[0].RecordNumber)
		assert.Equal(t, int64(999996), all[1].RecordNumber)
	})

	t.Run("missing quote returns zero value", func(t *testing.T) {
		got, err := repo.GetByRecordNumber(ctx, 1)
		require.NoError(t, err)
		assert.Zero(t, got.RecordNumber)
	})
}
