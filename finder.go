package docbot

import "context"

// Match is the result of looking up a query token.
type Match struct {
	Token   string   `json:"token"`
	Keyword string   `json:"keyword"`
	Entries []*Entry `json:"entries"`
}

// Found reports whether any entry matched.
func (m *Match) Found() bool {
	return len(m.Entries) > 0
}

// Ambiguous reports whether more than one entry matched.
func (m *Match) Ambiguous() bool {
	return len(m.Entries) > 1
}

// Finder looks up query tokens in an index.
type Finder interface {
	// Find normalizes token the same way keywords are normalized and
	// returns the entries stored under it. A token with no entries is not
	// an error; the returned Match is simply empty.
	Find(ctx context.Context, token string) (*Match, error)
}

// Compile-time check that an in-memory index can serve lookups.
var _ Finder = (*Index)(nil)
