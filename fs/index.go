// Package fs provides file-based storage for keyword indexes.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/docbot"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultIndexPath is where the index is written, relative to the working
// directory, unless configured otherwise.
const DefaultIndexPath = "docs.json"

// Ensure IndexFile implements docbot.IndexStore at compile time.
var _ docbot.IndexStore = (*IndexFile)(nil)

// IndexFile implements docbot.IndexStore as a pretty-printed JSON file.
// Saves go to a temporary file that is renamed over the target, so readers
// see either the previous index or the new one.
type IndexFile struct {
	path string
}

// NewIndexFile creates a new IndexFile at path.
func NewIndexFile(path string) *IndexFile {
	return &IndexFile{path: path}
}

// Path returns the location of the index file.
func (f *IndexFile) Path() string {
	return f.path
}

func (f *IndexFile) tempPath() string {
	return f.path + ".tmp"
}

// SaveIndex writes idx to the file.
func (f *IndexFile) SaveIndex(ctx context.Context, idx *docbot.Index) error {
	if idx == nil {
		return docbot.Errorf(docbot.EINVALID, "index required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := MarshalIndex(idx)
	if err != nil {
		return err
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return err
	}

	if err := os.WriteFile(f.tempPath(), data, 0644); err != nil {
		_ = os.Remove(f.tempPath())
		return err
	}

	// Atomically replace the previous index
	if err := os.Rename(f.tempPath(), f.path); err != nil {
		_ = os.Remove(f.tempPath())
		return err
	}

	return nil
}

// LoadIndex reads the index from the file.
func (f *IndexFile) LoadIndex(ctx context.Context) (*docbot.Index, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, docbot.Errorf(docbot.ENOTFOUND, "index file %q not found", f.path)
	} else if err != nil {
		return nil, err
	}

	return UnmarshalIndex(data)
}

// MarshalIndex encodes idx as a JSON object of keyword to entry arrays,
// indented by two spaces, with keywords in index order.
func MarshalIndex(idx *docbot.Index) ([]byte, error) {
	om := orderedmap.New[string, []*docbot.Entry]()
	for _, keyword := range idx.Keywords() {
		om.Set(keyword, idx.Lookup(keyword))
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(om); err != nil {
		return nil, fmt.Errorf("failed to encode index: %w", err)
	}
	return buf.Bytes(), nil
}

// UnmarshalIndex decodes an index written by MarshalIndex, keeping the
// order of keywords and entries.
func UnmarshalIndex(data []byte) (*docbot.Index, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, docbot.Errorf(docbot.EINVALID, "index must be a JSON object")
	}

	om := orderedmap.New[string, []*docbot.Entry]()
	if err := json.Unmarshal(data, om); err != nil {
		return nil, docbot.Errorf(docbot.EINVALID, "failed to decode index: %v", err)
	}

	idx := docbot.NewIndex()
	for pair := om.Oldest(); pair != nil; pair = pair.Next() {
		if len(pair.Value) == 0 {
			return nil, docbot.Errorf(docbot.EINVALID, "keyword %q has no entries", pair.Key)
		}
		for _, e := range pair.Value {
			if e == nil {
				return nil, docbot.Errorf(docbot.EINVALID, "null entry under keyword %q", pair.Key)
			}
			idx.Add(pair.Key, e)
		}
	}
	return idx, nil
}
