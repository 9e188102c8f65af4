package docbot

import (
	"context"
	"encoding/json"
	"strings"
)

// Entry is one indexed API item.
type Entry struct {
	// Fully-qualified display name: `ns\Type`, `ns\Type::method()`,
	// `ns\Type::$property` or `ns\Type::CONSTANT`.
	Name string `json:"name"`
	Desc string `json:"desc"`

	// Declaring type of a member. Empty for type entries.
	DefinedBy string `json:"definedBy,omitempty"`
}

// IsMember reports whether e describes a method, property or constant
// rather than a type.
func (e *Entry) IsMember() bool {
	return strings.Contains(e.Name, "::")
}

// MarshalJSON writes definedBy for every member entry, even when empty,
// and never for type entries without one.
func (e *Entry) MarshalJSON() ([]byte, error) {
	type entry Entry
	if !e.IsMember() {
		return json.Marshal((*entry)(e))
	}
	return json.Marshal(&struct {
		Name      string `json:"name"`
		Desc      string `json:"desc"`
		DefinedBy string `json:"definedBy"`
	}{e.Name, e.Desc, e.DefinedBy})
}

// Index maps keywords to the entries indexed under them. Keywords keep the
// order in which they were first added and each keyword's entries keep the
// order in which they were appended. Several entries under one keyword are
// expected: the consumer presents them as candidates.
//
// An Index is built once and not modified after it is handed out.
type Index struct {
	keywords []string
	entries  map[string][]*Entry
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[string][]*Entry)}
}

// Add appends e to the entries under keyword.
func (idx *Index) Add(keyword string, e *Entry) {
	if _, ok := idx.entries[keyword]; !ok {
		idx.keywords = append(idx.keywords, keyword)
	}
	idx.entries[keyword] = append(idx.entries[keyword], e)
}

// Lookup returns the entries stored under keyword, or nil.
// The keyword is used as-is; see Find for token lookups.
func (idx *Index) Lookup(keyword string) []*Entry {
	entries := idx.entries[keyword]
	if len(entries) == 0 {
		return nil
	}
	other := make([]*Entry, len(entries))
	copy(other, entries)
	return other
}

// Keywords returns all keywords in insertion order.
func (idx *Index) Keywords() []string {
	other := make([]string, len(idx.keywords))
	copy(other, idx.keywords)
	return other
}

// Len returns the number of keywords.
func (idx *Index) Len() int {
	return len(idx.keywords)
}

// EntryCount returns the total number of entries across all keywords.
func (idx *Index) EntryCount() int {
	var n int
	for _, entries := range idx.entries {
		n += len(entries)
	}
	return n
}

// Find normalizes token and returns the matching entries.
func (idx *Index) Find(_ context.Context, token string) (*Match, error) {
	keyword := Normalize(token)
	return &Match{
		Token:   token,
		Keyword: keyword,
		Entries: idx.Lookup(keyword),
	}, nil
}

// Stats summarizes an index.
type Stats struct {
	Keywords  int `json:"keywords"`
	Entries   int `json:"entries"`
	Ambiguous int `json:"ambiguous"` // keywords with more than one entry
}

// Stats returns summary counts for the index.
func (idx *Index) Stats() Stats {
	s := Stats{Keywords: len(idx.keywords)}
	for _, entries := range idx.entries {
		s.Entries += len(entries)
		if len(entries) > 1 {
			s.Ambiguous++
		}
	}
	return s
}

// IndexStore persists an index.
type IndexStore interface {
	// SaveIndex replaces the stored index with idx.
	SaveIndex(ctx context.Context, idx *Index) error

	// LoadIndex returns the stored index.
	// Returns ENOTFOUND if no index has been saved.
	LoadIndex(ctx context.Context) (*Index, error)
}

// IndexProvider hands out the current index to consumers.
type IndexProvider interface {
	Index(ctx context.Context) (*Index, error)
}
