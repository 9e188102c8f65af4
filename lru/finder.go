// Package lru caches keyword lookups in a fixed-size LRU cache.
package lru

import (
	"context"

	"github.com/fwojciec/docbot"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is used when NewFinder is given a non-positive size.
const DefaultCacheSize = 1024

// Ensure Finder implements docbot.Finder at compile time.
var _ docbot.Finder = (*Finder)(nil)

// Finder wraps a docbot.Finder and caches its matches by keyword. Tokens
// that normalize to the same keyword share a cache entry. Errors are not
// cached. It is safe for concurrent use.
type Finder struct {
	next  docbot.Finder
	cache *lru.Cache[string, []*docbot.Entry]
}

// NewFinder creates a Finder caching up to size keywords.
func NewFinder(next docbot.Finder, size int) (*Finder, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[string, []*docbot.Entry](size)
	if err != nil {
		return nil, err
	}
	return &Finder{next: next, cache: cache}, nil
}

// Find returns the cached entries for token's keyword, asking the wrapped
// finder on a miss.
func (f *Finder) Find(ctx context.Context, token string) (*docbot.Match, error) {
	keyword := docbot.Normalize(token)
	if entries, ok := f.cache.Get(keyword); ok {
		return &docbot.Match{Token: token, Keyword: keyword, Entries: cloneEntries(entries)}, nil
	}

	m, err := f.next.Find(ctx, token)
	if err != nil {
		return nil, err
	}
	f.cache.Add(keyword, cloneEntries(m.Entries))
	return &docbot.Match{Token: token, Keyword: keyword, Entries: m.Entries}, nil
}

// cloneEntries copies entries so callers cannot change what is cached.
func cloneEntries(entries []*docbot.Entry) []*docbot.Entry {
	if entries == nil {
		return nil
	}
	other := make([]*docbot.Entry, len(entries))
	for i, e := range entries {
		c := *e
		other[i] = &c
	}
	return other
}

// Purge drops every cached lookup, e.g. after the index was rebuilt.
func (f *Finder) Purge() {
	f.cache.Purge()
}

// Len returns the number of cached keywords.
func (f *Finder) Len() int {
	return f.cache.Len()
}
