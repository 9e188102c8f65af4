package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/xxhash"
	"golang.org/x/sync/errgroup"
)

// Run executes the index command.
func (c *IndexCmd) Run(deps *Dependencies) error {
	idx, err := rebuild(deps.Ctx, deps, c.Source, c.SkipMalformed)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	stats := idx.Stats()
	fmt.Fprintf(deps.Stdout, "Indexed %d keywords (%d entries, %d ambiguous)\n", stats.Keywords, stats.Entries, stats.Ambiguous)
	fmt.Fprintf(deps.Stdout, "Fingerprint: %s\n", xxhash.Fingerprint(idx))
	return nil
}

// rebuild parses the dump at path, builds the index and saves it to every
// store. Skipped records are reported on stderr.
func rebuild(ctx context.Context, deps *Dependencies, path string, skipMalformed bool) (*docbot.Index, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, docbot.Errorf(docbot.EINVALID, "source file %q not found", path)
	} else if err != nil {
		return nil, docbot.Errorf(docbot.EINVALID, "cannot read source file %q: %v", path, err)
	}
	defer f.Close()

	src, err := deps.Parser.ParseSource(f)
	if err != nil {
		return nil, err
	}

	b := &docbot.Builder{
		SkipMalformed: skipMalformed,
		OnSkip: func(s docbot.Skipped) {
			fmt.Fprintf(deps.Stderr, "skipped %s %q in %q: %s\n", s.Kind, s.Name, s.TypeName, s.Reason)
		},
	}
	idx, _, err := b.Build(src)
	if err != nil {
		return nil, err
	}

	if err := saveIndex(ctx, idx, deps.Stores); err != nil {
		return nil, err
	}
	return idx, nil
}

// saveIndex writes idx to all stores concurrently. Any failure is reported
// as EPERSIST.
func saveIndex(ctx context.Context, idx *docbot.Index, stores []docbot.IndexStore) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, store := range stores {
		g.Go(func() error {
			if err := store.SaveIndex(ctx, idx); err != nil {
				return docbot.Errorf(docbot.EPERSIST, "failed to save index: %s", errorText(err))
			}
			return nil
		})
	}
	return g.Wait()
}

// errorText returns the operator-facing text of err.
func errorText(err error) string {
	if docbot.ErrorCode(err) == docbot.EINTERNAL {
		return err.Error()
	}
	return docbot.ErrorMessage(err)
}
