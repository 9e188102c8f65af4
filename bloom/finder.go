package bloom

import (
	"context"

	"github.com/fwojciec/docbot"
)

// Ensure Finder implements docbot.Finder at compile time.
var _ docbot.Finder = (*Finder)(nil)

// Finder wraps a docbot.Finder and answers tokens whose keyword is
// certainly absent without calling it.
type Finder struct {
	next   docbot.Finder
	filter *KeywordFilter
}

// NewFinder creates a Finder that knows the given keywords.
func NewFinder(next docbot.Finder, keywords []string, fpRate float64) *Finder {
	return &Finder{next: next, filter: NewKeywordFilter(keywords, fpRate)}
}

// Find returns an empty match for unknown keywords and delegates otherwise.
func (f *Finder) Find(ctx context.Context, token string) (*docbot.Match, error) {
	keyword := docbot.Normalize(token)
	if !f.filter.MayContain(keyword) {
		return &docbot.Match{Token: token, Keyword: keyword}, nil
	}
	return f.next.Find(ctx, token)
}
