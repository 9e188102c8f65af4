// Package bloom answers "definitely not indexed" for keyword lookups using
// Bloom filters, so misses never reach slower finders.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// DefaultFalsePositiveRate is used when a non-positive rate is given.
const DefaultFalsePositiveRate = 0.01

// KeywordFilter is a Bloom filter over the keywords of one index.
// It is immutable once built and safe for concurrent use.
type KeywordFilter struct {
	f *bloom.BloomFilter
	n int
}

// NewKeywordFilter builds a filter sized for keywords with the given false
// positive rate.
func NewKeywordFilter(keywords []string, fpRate float64) *KeywordFilter {
	if fpRate <= 0 {
		fpRate = DefaultFalsePositiveRate
	}
	f := bloom.NewWithEstimates(uint(max(len(keywords), 1)), fpRate)
	for _, keyword := range keywords {
		f.AddString(keyword)
	}
	return &KeywordFilter{f: f, n: len(keywords)}
}

// MayContain reports whether keyword might have been indexed.
// False positives are possible; false negatives are not.
func (f *KeywordFilter) MayContain(keyword string) bool {
	return f.f.TestString(keyword)
}

// Len returns the number of keywords the filter was built from.
func (f *KeywordFilter) Len() int {
	return f.n
}

// Bits returns the size of the underlying bit set.
func (f *KeywordFilter) Bits() uint {
	return f.f.Cap()
}
