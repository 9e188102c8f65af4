package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docbot"
)

// Ensure LoggingFinder implements docbot.Finder.
var _ docbot.Finder = (*LoggingFinder)(nil)

// LoggingFinder wraps a Finder with debug logging.
type LoggingFinder struct {
	next   docbot.Finder
	logger *slog.Logger
}

// NewLoggingFinder creates a new LoggingFinder.
func NewLoggingFinder(next docbot.Finder, logger *slog.Logger) *LoggingFinder {
	return &LoggingFinder{next: next, logger: logger}
}

// Find delegates to the wrapped finder and logs the lookup.
func (f *LoggingFinder) Find(ctx context.Context, token string) (m *docbot.Match, err error) {
	defer func(begin time.Time) {
		var keyword string
		var candidates int
		if m != nil {
			keyword = m.Keyword
			candidates = len(m.Entries)
		}
		f.logger.Debug("find",
			"token", token,
			"keyword", keyword,
			"candidates", candidates,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Find(ctx, token)
}
