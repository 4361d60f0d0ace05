package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// openTestDB opens a fresh database in a temp directory for one test
func openTestDB(t *testing.T) {
	t.Helper()
	require.NoError(t, Open(Config{Path: filepath.Join(t.TempDir(), "album.db")}))
	t.Cleanup(func() { Close() })
}

func TestOpenRunsMigrations(t *testing.T) {
	openTestDB(t)

	for _, table := range []string{"accounts", "assets", "sessions"} {
		var count int
		err := DB.QueryRow(
			"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table,
		).Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 1, count, "table %s should exist", table)
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "album.db")

	require.NoError(t, Open(Config{Path: path}))
	require.NoError(t, Close())

	// Re-opening the same file must not re-run applied migrations
	require.NoError(t, Open(Config{Path: path}))
	t.Cleanup(func() { Close() })
}
