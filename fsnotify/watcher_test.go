package fsnotify_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/docbot/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, path string, fn func(ctx context.Context) error) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	w := fsnotify.NewWatcher(path, 20*time.Millisecond, nil)
	go func() { done <- w.Watch(ctx, fn) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
	})

	// Give the watcher time to register the directory.
	time.Sleep(100 * time.Millisecond)
}

func TestWatcher_Watch(t *testing.T) {
	t.Parallel()

	t.Run("calls fn after the watched file changes", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "types.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

		var calls atomic.Int32
		startWatcher(t, path, func(ctx context.Context) error {
			calls.Add(1)
			return nil
		})

		require.NoError(t, os.WriteFile(path, []byte(`{"a": {}}`), 0644))

		require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("ignores other files in the directory", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "types.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

		var calls atomic.Int32
		startWatcher(t, path, func(ctx context.Context) error {
			calls.Add(1)
			return nil
		})

		require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0644))

		time.Sleep(200 * time.Millisecond)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("keeps watching after fn fails", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "types.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

		var calls atomic.Int32
		startWatcher(t, path, func(ctx context.Context) error {
			calls.Add(1)
			return errors.New("malformed input")
		})

		require.NoError(t, os.WriteFile(path, []byte("{"), 0644))
		require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 10*time.Millisecond)

		before := calls.Load()
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))
		require.Eventually(t, func() bool { return calls.Load() > before }, 5*time.Second, 10*time.Millisecond)
	})

	t.Run("returns error for missing directory", func(t *testing.T) {
		t.Parallel()

		w := fsnotify.NewWatcher(filepath.Join(t.TempDir(), "missing", "types.json"), 0, nil)

		err := w.Watch(context.Background(), func(ctx context.Context) error { return nil })

		require.Error(t, err)
	})
}
