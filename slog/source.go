// Package slog provides logging decorators for docbot services.
package slog

import (
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docbot"
)

// Ensure LoggingSourceParser implements docbot.SourceParser.
var _ docbot.SourceParser = (*LoggingSourceParser)(nil)

// LoggingSourceParser wraps a SourceParser with logging.
type LoggingSourceParser struct {
	next   docbot.SourceParser
	logger *slog.Logger
}

// NewLoggingSourceParser creates a new LoggingSourceParser.
func NewLoggingSourceParser(next docbot.SourceParser, logger *slog.Logger) *LoggingSourceParser {
	return &LoggingSourceParser{next: next, logger: logger}
}

// ParseSource delegates to the wrapped parser and logs the operation.
func (p *LoggingSourceParser) ParseSource(r io.Reader) (src *docbot.Source, err error) {
	defer func(begin time.Time) {
		types := 0
		if src != nil {
			types = len(src.Types)
		}
		p.logger.Info("parse source",
			"types", types,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ParseSource(r)
}
