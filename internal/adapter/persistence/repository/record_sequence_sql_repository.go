package repository

import (
	"context"
	"database/sql"
	"errors"

	"phone_repair/internal/infrastructure/database"
	"phone_repair/internal/usecase/interfaces"
)

// maxReserveAttempts bounds the retries when a concurrent writer claims the
// same number first, or the engine aborts one of two racing inserts as a
// deadlock.
const maxReserveAttempts = 5

var ErrRecordSequenceContention = errors.New("record sequence contention: retries exhausted")

// RecordSequenceSQLRepository reserves record numbers from the record_numbers table.
//
// The next number is computed and claimed by a single INSERT ... SELECT, so
// the read of the current minimum and the write happen in one statement.
type RecordSequenceSQLRepository struct {
	db *database.DB
}

var _ interfaces.IRecordSequence = (*RecordSequenceSQLRepository)(nil)

func NewRecordSequenceSQLRepository(db *database.DB) *RecordSequenceSQLRepository {
	return &RecordSequenceSQLRepository{db: db}
}

func (r *RecordSequenceSQLRepository) Reserve(ctx context.Context) (int64, error) {
	return reserveWithRetry(ctx, r.reserveOnce)
}

func reserveWithRetry(ctx context.Context, reserve func(context.Context) (int64, error)) (int64, error) {
	for attempt := 0; attempt < maxReserveAttempts; attempt++ {
		n, err := reserve(ctx)
		if err == nil {
			return n, nil
		}
		if !database.IsRetryableConflict(err) {
			return 0, translateError("reserve record number", err)
		}
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
	}
	return 0, ErrRecordSequenceContention
}

func (r *RecordSequenceSQLRepository) reserveOnce(ctx context.Context) (int64, error) {
	d := r.db.Dialect
	insertNext := d.Rebind("INSERT INTO record_numbers (number) SELECT COALESCE(MIN(number), ?) - 1 FROM record_numbers")

	var n int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if d.Returning {
			return tx.QueryRowContext(ctx, insertNext+" RETURNING number", database.RecordNumberSeed).Scan(&n)
		}
		if _, err := tx.ExecContext(ctx, insertNext, database.RecordNumberSeed); err != nil {
			return err
		}
		// The insert holds locks on the scanned rows until commit, so the
		// minimum seen here is our own row.
		return tx.QueryRowContext(ctx, "SELECT MIN(number) FROM record_numbers").Scan(&n)
	})
	return n, err
}
