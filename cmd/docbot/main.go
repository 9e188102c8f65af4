package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	iofs "io/fs"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docbot"
	"github.com/fwojciec/docbot/bloom"
	"github.com/fwojciec/docbot/cache"
	"github.com/fwojciec/docbot/fs"
	"github.com/fwojciec/docbot/jsonparser"
	"github.com/fwojciec/docbot/lru"
	docslog "github.com/fwojciec/docbot/slog"
	"github.com/fwojciec/docbot/sqlite"
	"github.com/fwojciec/docbot/yaml"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitCode(err))
	}
}

// Main represents the program.
type Main struct {
	// Environment file loaded before parsing. Set before calling Run().
	EnvFile string

	// SQLite database, opened when a command is given --db.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{EnvFile: ".env"}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return docbot.Errorf(docbot.EINVALID, "cannot load %s: %v", m.EnvFile, err)
		}
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	options := []kong.Option{
		kong.Name("docbot"),
		kong.Description("Keyword index for Yii 2 API documentation."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	}
	if path := configPath(args); path != "" {
		if _, err := os.Stat(path); err != nil {
			return docbot.Errorf(docbot.EINVALID, "cannot read configuration file %q", path)
		}
		options = append(options, kong.Configuration(yaml.Loader, path))
	}

	cli := &CLI{}
	parser, err := kong.New(cli, options...)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return docbot.Errorf(docbot.EINVALID, "no command specified. Run 'docbot --help' to see available commands")
	}

	switch args[0] {
	case "help", "--help", "-h":
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return docbot.Errorf(docbot.EINVALID, "%s", err)
	}

	deps.Logger = newLogger(stderr, cli.LogLevel, cli.Verbose)
	deps.Parser = docslog.NewLoggingSourceParser(jsonparser.NewSourceParser(), deps.Logger)
	defer m.Close()

	// Wire command-specific dependencies based on command
	switch kongCtx.Selected().Name {
	case "index":
		if err := m.wireStores(deps, cli.Index.Out, cli.Index.DB); err != nil {
			return err
		}
	case "watch":
		if err := m.wireStores(deps, cli.Watch.Out, cli.Watch.DB); err != nil {
			return err
		}
	case "lookup":
		if err := m.wireFinder(ctx, deps, &cli.Lookup); err != nil {
			fmt.Fprintf(stderr, "error: %s\n", errorText(err))
			return err
		}
	case "stats":
		if cli.Stats.DB != "" {
			if err := m.openDB(cli.Stats.DB); err != nil {
				return err
			}
			deps.Store = docslog.NewLoggingIndexStore(sqlite.NewIndexService(m.DB), "sqlite", deps.Logger)
		} else {
			deps.Store = docslog.NewLoggingIndexStore(fs.NewIndexFile(cli.Stats.Index), "file", deps.Logger)
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) openDB(path string) error {
	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		m.DB = nil
		return docbot.Errorf(docbot.EPERSIST, "failed to open database at %q: %v", path, err)
	}
	return nil
}

func (m *Main) wireStores(deps *Dependencies, out, db string) error {
	deps.Stores = []docbot.IndexStore{
		docslog.NewLoggingIndexStore(fs.NewIndexFile(out), "file", deps.Logger),
	}
	if db != "" {
		if err := m.openDB(db); err != nil {
			return err
		}
		deps.Stores = append(deps.Stores,
			docslog.NewLoggingIndexStore(sqlite.NewIndexService(m.DB), "sqlite", deps.Logger))
	}
	return nil
}

func (m *Main) wireFinder(ctx context.Context, deps *Dependencies, c *LookupCmd) error {
	var finder docbot.Finder
	if c.DB != "" {
		if err := m.openDB(c.DB); err != nil {
			return err
		}
		svc := sqlite.NewIndexService(m.DB)
		keywords, err := svc.Keywords(ctx)
		if err != nil {
			return err
		}
		cached, err := lru.NewFinder(bloom.NewFinder(svc, keywords, bloom.DefaultFalsePositiveRate), c.CacheSize)
		if err != nil {
			return err
		}
		finder = cached
	} else {
		policy, err := cache.ParsePolicy(c.Policy)
		if err != nil {
			return err
		}
		store := docslog.NewLoggingIndexStore(fs.NewIndexFile(c.Index), "file", deps.Logger)
		finder = cache.NewFinder(cache.NewProvider(store, policy))
	}
	deps.Finder = docslog.NewLoggingFinder(finder, deps.Logger)
	return nil
}

// configPath returns the configuration file named on the command line or
// in DOCBOT_CONFIG. Kong needs it before parsing.
func configPath(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
		if v, ok := strings.CutPrefix(arg, "--config="); ok {
			return v
		}
	}
	return os.Getenv("DOCBOT_CONFIG")
}

func newLogger(w io.Writer, level string, verbose bool) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	switch docbot.ErrorCode(err) {
	case "":
		return 0
	case docbot.EINVALID:
		return 2
	case docbot.EMALFORMED:
		return 3
	case docbot.EPERSIST:
		return 4
	case docbot.ENOTFOUND:
		return 5
	default:
		return 1
	}
}
