package mock

import (
	"io"

	"github.com/fwojciec/docbot"
)

var _ docbot.SourceParser = (*SourceParser)(nil)

// SourceParser is a mock implementation of docbot.SourceParser.
type SourceParser struct {
	ParseSourceFn func(r io.Reader) (*docbot.Source, error)
}

func (p *SourceParser) ParseSource(r io.Reader) (*docbot.Source, error) {
	return p.ParseSourceFn(r)
}
