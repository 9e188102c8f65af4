package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/docbot"
)

// Run executes the lookup command.
func (c *LookupCmd) Run(deps *Dependencies) error {
	if len(c.Tokens) > 0 {
		for _, token := range c.Tokens {
			if err := lookup(deps, token); err != nil {
				return err
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		token := strings.TrimSpace(scanner.Text())
		if token == "" {
			continue
		}
		if err := lookup(deps, token); err != nil {
			return err
		}
		if deps.Ctx.Err() != nil {
			return nil
		}
	}
	return scanner.Err()
}

func lookup(deps *Dependencies, token string) error {
	m, err := deps.Finder.Find(deps.Ctx, token)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", errorText(err))
		return err
	}
	fmt.Fprintln(deps.Stdout, docbot.FormatMatch(m))
	return nil
}
