package main

import (
	"context"
	"fmt"

	"github.com/fwojciec/docbot/fsnotify"
)

// Run executes the watch command. The index is built once up front and
// again after every change to the dump until the context is cancelled.
func (c *WatchCmd) Run(deps *Dependencies) error {
	build := func(ctx context.Context) error {
		idx, err := rebuild(ctx, deps, c.Source, c.SkipMalformed)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
			return err
		}
		stats := idx.Stats()
		fmt.Fprintf(deps.Stdout, "Indexed %d keywords (%d entries, %d ambiguous)\n", stats.Keywords, stats.Entries, stats.Ambiguous)
		return nil
	}

	if err := build(deps.Ctx); err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Watching %s\n", c.Source)
	return fsnotify.NewWatcher(c.Source, c.Debounce, deps.Logger).Watch(deps.Ctx, build)
}
