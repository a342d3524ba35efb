package repository

import (
	"errors"
	"testing"
	"time"

	"phone_repair/internal/usecase/interfaces"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDBTime_Scan(t *testing.T) {
	want := time.Date(2024, 1, 1, 12, 30, 0, 0, time.UTC)

	for _, src := range []any{"2024-01-01 12:30:00", []byte("2024-01-01T12:30:00Z"), want} {
		var got dbTime
		require.NoError(t, got.Scan(src), "%T", src)
		assert.True(t, want.Equal(got.Time), "%v", src)
	}

	var got dbTime
	require.NoError(t, got.Scan(nil))
	assert.True(t, got.IsZero())
	assert.Error(t, got.Scan("yesterday"))
	assert.Error(t, got.Scan(42))
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError("op", nil))

	err := translateError("insert quote", &pq.Error{Code: "23505"})
	assert.ErrorIs(t, err, interfaces.ErrUniqueViolation)

	boom := errors.New("boom")
	err = translateError("insert quote", boom)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, interfaces.ErrUniqueViolation)
}
