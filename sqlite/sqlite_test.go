package sqlite_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/docbot/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates schema on first open", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		ctx := context.Background()

		var builds, entries, version int
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM builds").Scan(&builds))
		require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM entries").Scan(&entries))
		require.NoError(t, db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
		assert.Equal(t, 1, version)
	})

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "nested", "docbot.db")
		db := sqlite.NewDB(dbPath)
		require.NoError(t, db.Open())
		defer db.Close()

		assert.FileExists(t, dbPath)
		assert.Equal(t, dbPath, db.Path())
	})

	t.Run("returns error when the parent is a file", func(t *testing.T) {
		t.Parallel()

		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

		db := sqlite.NewDB(filepath.Join(blocker, "docbot.db"))

		require.Error(t, db.Open())
	})

	t.Run("enables WAL mode for file-based databases", func(t *testing.T) {
		t.Parallel()

		db := sqlite.NewDB(filepath.Join(t.TempDir(), "test.db"))
		require.NoError(t, db.Open())
		defer db.Close()

		var journalMode string
		require.NoError(t, db.QueryRowContext(context.Background(), "PRAGMA journal_mode").Scan(&journalMode))
		assert.Equal(t, "wal", journalMode)
	})

	t.Run("limits the pool to one connection", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)

		assert.Equal(t, 1, db.Stats().MaxOpenConnections)
	})

	t.Run("reopening keeps stored builds", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "test.db")
		first := sqlite.NewDB(dbPath)
		require.NoError(t, first.Open())
		require.NoError(t, sqlite.NewIndexService(first).SaveIndex(context.Background(), testIndex()))
		require.NoError(t, first.Close())

		second := sqlite.NewDB(dbPath)
		require.NoError(t, second.Open())
		defer second.Close()

		idx, err := sqlite.NewIndexService(second).LoadIndex(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"query", "find"}, idx.Keywords())
	})

	t.Run("refuses a newer schema", func(t *testing.T) {
		t.Parallel()

		dbPath := filepath.Join(t.TempDir(), "test.db")
		first := sqlite.NewDB(dbPath)
		require.NoError(t, first.Open())
		_, err := first.ExecContext(context.Background(), fmt.Sprintf("PRAGMA user_version = %d", 99))
		require.NoError(t, err)
		require.NoError(t, first.Close())

		err = sqlite.NewDB(dbPath).Open()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "newer")
	})
}
