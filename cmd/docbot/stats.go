package main

import (
	"fmt"

	"github.com/fwojciec/docbot/xxhash"
)

// Run executes the stats command.
func (c *StatsCmd) Run(deps *Dependencies) error {
	idx, err := deps.Store.LoadIndex(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}

	stats := idx.Stats()
	fmt.Fprintf(deps.Stdout, "Keywords:    %d\n", stats.Keywords)
	fmt.Fprintf(deps.Stdout, "Entries:     %d\n", stats.Entries)
	fmt.Fprintf(deps.Stdout, "Ambiguous:   %d\n", stats.Ambiguous)
	fmt.Fprintf(deps.Stdout, "Fingerprint: %s\n", xxhash.Fingerprint(idx))
	return nil
}
