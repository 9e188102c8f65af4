// Package fsnotify rebuilds on changes to a watched file.
package fsnotify

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/fwojciec/docbot"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 500 * time.Millisecond

// Watcher calls a function whenever a single file changes.
//
// The parent directory is watched rather than the file itself so that
// editors and tools that replace the file by rename are still seen.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *slog.Logger
}

// NewWatcher creates a new Watcher for path. A non-positive debounce uses
// DefaultDebounce and a nil logger discards output.
func NewWatcher(path string, debounce time.Duration, logger *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Watcher{path: filepath.Clean(path), debounce: debounce, logger: logger}
}

// Watch blocks until ctx is done, calling fn once per burst of changes to
// the watched file. Errors from fn are logged and watching continues.
func (w *Watcher) Watch(ctx context.Context, fn func(ctx context.Context) error) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return docbot.Errorf(docbot.EINTERNAL, "create watcher: %v", err)
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return docbot.Errorf(docbot.EINVALID, "watch %s: %v", dir, err)
	}

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("file changed", "path", event.Name, "op", event.Op.String())
			timer.Reset(w.debounce)

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "err", err)

		case <-timer.C:
			begin := time.Now()
			err := fn(ctx)
			if err != nil {
				w.logger.Error("rebuild failed", "path", w.path, "err", err)
				continue
			}
			w.logger.Info("rebuilt", "path", w.path, "duration", time.Since(begin))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
