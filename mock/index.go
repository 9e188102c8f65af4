package mock

import (
	"context"

	"github.com/fwojciec/docbot"
)

var _ docbot.IndexStore = (*IndexStore)(nil)

// IndexStore is a mock implementation of docbot.IndexStore.
type IndexStore struct {
	SaveIndexFn func(ctx context.Context, idx *docbot.Index) error
	LoadIndexFn func(ctx context.Context) (*docbot.Index, error)
}

func (s *IndexStore) SaveIndex(ctx context.Context, idx *docbot.Index) error {
	return s.SaveIndexFn(ctx, idx)
}

func (s *IndexStore) LoadIndex(ctx context.Context) (*docbot.Index, error) {
	return s.LoadIndexFn(ctx)
}

var _ docbot.IndexProvider = (*IndexProvider)(nil)

// IndexProvider is a mock implementation of docbot.IndexProvider.
type IndexProvider struct {
	IndexFn func(ctx context.Context) (*docbot.Index, error)
}

func (p *IndexProvider) Index(ctx context.Context) (*docbot.Index, error) {
	return p.IndexFn(ctx)
}
