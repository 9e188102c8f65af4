package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docbot"
)

// Ensure LoggingIndexStore implements docbot.IndexStore.
var _ docbot.IndexStore = (*LoggingIndexStore)(nil)

// LoggingIndexStore wraps an IndexStore with logging. The store name tells
// apart several stores written by the same command.
type LoggingIndexStore struct {
	next   docbot.IndexStore
	name   string
	logger *slog.Logger
}

// NewLoggingIndexStore creates a new LoggingIndexStore.
func NewLoggingIndexStore(next docbot.IndexStore, name string, logger *slog.Logger) *LoggingIndexStore {
	return &LoggingIndexStore{next: next, name: name, logger: logger}
}

// SaveIndex delegates to the wrapped store and logs the operation.
func (s *LoggingIndexStore) SaveIndex(ctx context.Context, idx *docbot.Index) (err error) {
	defer func(begin time.Time) {
		var stats docbot.Stats
		if idx != nil {
			stats = idx.Stats()
		}
		s.logger.Info("save index",
			"store", s.name,
			"keywords", stats.Keywords,
			"entries", stats.Entries,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveIndex(ctx, idx)
}

// LoadIndex delegates to the wrapped store and logs the operation.
func (s *LoggingIndexStore) LoadIndex(ctx context.Context) (idx *docbot.Index, err error) {
	defer func(begin time.Time) {
		keywords := 0
		if idx != nil {
			keywords = idx.Len()
		}
		s.logger.Info("load index",
			"store", s.name,
			"keywords", keywords,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LoadIndex(ctx)
}
