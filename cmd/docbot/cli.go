package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/docbot"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	// Parser decodes apidoc dumps for index and watch.
	Parser docbot.SourceParser

	// Stores receive every built index. The first store is the primary one.
	Stores []docbot.IndexStore

	// Store is read by stats.
	Store docbot.IndexStore

	// Finder answers lookups.
	Finder docbot.Finder
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config   string `help:"YAML configuration file" env:"DOCBOT_CONFIG" type:"path"`
	LogLevel string `help:"Log level (debug, info, warn, error)" env:"DOCBOT_LOG_LEVEL" default:"warn" enum:"debug,info,warn,error"`
	Verbose  bool   `short:"v" help:"Log at debug level"`

	Index  IndexCmd  `cmd:"" help:"Build the keyword index from an apidoc JSON dump"`
	Lookup LookupCmd `cmd:"" help:"Look up API items by keyword"`
	Watch  WatchCmd  `cmd:"" help:"Rebuild the index whenever the dump changes"`
	Stats  StatsCmd  `cmd:"" help:"Show index statistics"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Source        string `arg:"" help:"apidoc JSON dump (types.json)" type:"path"`
	Out           string `short:"o" help:"Index file to write" env:"DOCBOT_INDEX" default:"docs.json" type:"path"`
	DB            string `help:"Also store the index in this SQLite database" env:"DOCBOT_DB" type:"path"`
	SkipMalformed bool   `name:"skip-malformed" help:"Skip records without a usable name instead of failing"`
}

// LookupCmd is the "lookup" subcommand.
type LookupCmd struct {
	Tokens    []string `arg:"" optional:"" help:"Tokens to look up; reads lines from stdin when omitted"`
	Index     string   `short:"i" help:"Index file to read" env:"DOCBOT_INDEX" default:"docs.json" type:"path"`
	DB        string   `help:"Read the index from this SQLite database instead" env:"DOCBOT_DB" type:"path"`
	Policy    string   `help:"When to reload the index file (once, always)" env:"DOCBOT_POLICY" default:"once" enum:"once,always"`
	CacheSize int      `name:"cache-size" help:"Lookup cache size for database lookups" default:"1024"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Source        string        `arg:"" help:"apidoc JSON dump (types.json)" type:"path"`
	Out           string        `short:"o" help:"Index file to write" env:"DOCBOT_INDEX" default:"docs.json" type:"path"`
	DB            string        `help:"Also store the index in this SQLite database" env:"DOCBOT_DB" type:"path"`
	SkipMalformed bool          `name:"skip-malformed" help:"Skip records without a usable name instead of failing"`
	Debounce      time.Duration `help:"Wait this long for writes to settle" default:"500ms"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct {
	Index string `short:"i" help:"Index file to read" env:"DOCBOT_INDEX" default:"docs.json" type:"path"`
	DB    string `help:"Read the index from this SQLite database instead" env:"DOCBOT_DB" type:"path"`
}
