package repository

import (
	"context"
	"path/filepath"
	"testing"

	"phone_repair/internal/infrastructure/database"

	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *database.DB {
	t.Helper()
	ctx := context.Background()
	db, err := database.Connect(ctx, "sqlite", filepath.Join(t.TempDir(), "repair.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.InitializeTables(ctx))
	return db
}

func strPtr(s string) *string { return &s }
