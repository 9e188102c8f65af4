package mock

import (
	"context"

	"github.com/fwojciec/docbot"
)

var _ docbot.Finder = (*Finder)(nil)

// Finder is a mock implementation of docbot.Finder.
type Finder struct {
	FindFn func(ctx context.Context, token string) (*docbot.Match, error)
}

func (f *Finder) Find(ctx context.Context, token string) (*docbot.Match, error) {
	return f.FindFn(ctx, token)
}
