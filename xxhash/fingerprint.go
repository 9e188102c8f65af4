// Package xxhash fingerprints keyword indexes.
package xxhash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/docbot"
)

// Fingerprint returns a stable hash of the index contents. Two indexes with
// the same keywords, entries and order have the same fingerprint.
func Fingerprint(idx *docbot.Index) string {
	d := xxhash.New()
	for _, keyword := range idx.Keywords() {
		_, _ = d.WriteString(keyword)
		_, _ = d.Write([]byte{1})
		for _, e := range idx.Lookup(keyword) {
			_, _ = d.WriteString(e.Name)
			_, _ = d.Write([]byte{0})
			_, _ = d.WriteString(e.Desc)
			_, _ = d.Write([]byte{0})
			_, _ = d.WriteString(e.DefinedBy)
			_, _ = d.Write([]byte{2})
		}
	}
	return fmt.Sprintf("%016x", d.Sum64())
}
