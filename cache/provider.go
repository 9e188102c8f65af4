// Package cache hands out indexes loaded from an IndexStore according to a
// reload policy.
package cache

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/fwojciec/docbot"
)

// Policy controls when a Provider goes back to its store.
type Policy string

// Supported reload policies.
const (
	// LoadOnce loads the index on first use and keeps it.
	LoadOnce Policy = "once"

	// ReloadEveryCall loads the index from the store on every call, which
	// picks up rebuilds immediately.
	ReloadEveryCall Policy = "always"
)

// ParsePolicy returns the policy named s.
// Returns EINVALID for unknown names.
func ParsePolicy(s string) (Policy, error) {
	switch p := Policy(s); p {
	case LoadOnce, ReloadEveryCall:
		return p, nil
	default:
		return "", docbot.Errorf(docbot.EINVALID, "unknown reload policy %q (want %q or %q)", s, LoadOnce, ReloadEveryCall)
	}
}

// Compile-time interface verification.
var _ docbot.IndexProvider = (*Provider)(nil)

// Provider implements docbot.IndexProvider on top of an IndexStore.
// It is safe for concurrent use; the current index is replaced atomically so
// callers never see a partially loaded one.
type Provider struct {
	store  docbot.IndexStore
	policy Policy

	mu      sync.Mutex // serializes loads
	current atomic.Pointer[docbot.Index]
}

// NewProvider creates a new Provider.
func NewProvider(store docbot.IndexStore, policy Policy) *Provider {
	return &Provider{store: store, policy: policy}
}

// Policy returns the provider's reload policy.
func (p *Provider) Policy() Policy {
	return p.policy
}

// Index returns the current index, loading it as the policy requires.
func (p *Provider) Index(ctx context.Context) (*docbot.Index, error) {
	if p.policy != ReloadEveryCall {
		if idx := p.current.Load(); idx != nil {
			return idx, nil
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Another caller may have loaded it while we waited.
	if p.policy != ReloadEveryCall {
		if idx := p.current.Load(); idx != nil {
			return idx, nil
		}
	}

	idx, err := p.store.LoadIndex(ctx)
	if err != nil {
		return nil, err
	}
	p.current.Store(idx)
	return idx, nil
}

// Swap installs idx as the current index, e.g. right after a rebuild.
func (p *Provider) Swap(idx *docbot.Index) {
	p.current.Store(idx)
}

// Compile-time interface verification.
var _ docbot.Finder = (*Finder)(nil)

// Finder implements docbot.Finder by looking tokens up in the index
// handed out by an IndexProvider.
type Finder struct {
	provider docbot.IndexProvider
}

// NewFinder creates a new Finder.
func NewFinder(provider docbot.IndexProvider) *Finder {
	return &Finder{provider: provider}
}

// Find looks token up in the provider's current index.
func (f *Finder) Find(ctx context.Context, token string) (*docbot.Match, error) {
	idx, err := f.provider.Index(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Find(ctx, token)
}
