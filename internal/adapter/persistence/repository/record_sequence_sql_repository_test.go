package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordSequenceSQLRepository_Reserve(t *testing.T) {
	ctx := context.Background()
	seq := NewRecordSequenceSQLRepository(newTestDB(t))

	prev := int64(999999)
	for i := 0; i < 5; i++ {
		n, err := seq.Reserve(ctx)
		require.NoError(t, err)
		assert.Equal(t, prev-1, n)
		prev = n
	}
}

func TestRecordSequenceSQLRepository_ReserveConcurrent(t *testing.T) {
	ctx := context.Background()
	seq := NewRecordSequenceSQLRepository(newTestDB(t))

	const workers = 8
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		seen = map[int64]bool{}
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := seq.Reserve(ctx)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			assert.False(t, seen[n], "number %d reserved twice", n)
			seen[n] = true
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers)
	for n := range seen {
		assert.GreaterOrEqual(t, n, int64(999999-workers))
		assert.Less(t, n, int64(999999))
	}
}

func TestRecordSequenceSQLRepository_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewRecordSequenceSQLRepository(newTestDB(t)).Reserve(ctx)
	assert.Error(t, err)
}

func TestReserveWithRetry(t *testing.T) {
	ctx := context.Background()

	t.Run("retries a mysql deadlock", func(t *testing.T) {
		calls := 0
		n, err := reserveWithRetry(ctx, func(context.Context) (int64, error) {
			calls++
			if calls == 1 {
				return 0, &mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}
			}
			return 999998, nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(999998), n)
		assert.Equal(t, 2, calls)
	})

	t.Run("retries a lock wait timeout and a duplicate key", func(t *testing.T) {
		errs := []error{&mysql.MySQLError{Number: 1205}, &pq.Error{Code: "23505"}}
		calls := 0
		n, err := reserveWithRetry(ctx, func(context.Context) (int64, error) {
			calls++
			if calls <= len(errs) {
				return 0, errs[calls-1]
			}
			return 999997, nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(999997), n)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after the bounded attempts", func(t *testing.T) {
		calls := 0
		_, err := reserveWithRetry(ctx, func(context.Context) (int64, error) {
			calls++
			return 0, &mysql.MySQLError{Number: 1213}
		})
		assert.ErrorIs(t, err, ErrRecordSequenceContention)
		assert.Equal(t, maxReserveAttempts, calls)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		dbErr := errors.New("connection refused")
		calls := 0
		_, err := reserveWithRetry(ctx, func(context.Context) (int64, error) {
			calls++
			return 0, dbErr
		})
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 1, calls)
	})
}
