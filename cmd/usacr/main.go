package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/usacr"
	"github.com/fwojciec/usacr/client"
	"github.com/fwojciec/usacr/fs"
	"github.com/fwojciec/usacr/goquery"
	"github.com/fwojciec/usacr/htmltomarkdown"
	usacrhttp "github.com/fwojciec/usacr/http"
	"github.com/fwojciec/usacr/rod"
	usacrslog "github.com/fwojciec/usacr/slog"
	"github.com/fwojciec/usacr/sqlite"
	"github.com/fwojciec/usacr/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path for the page cache. Set before calling Run().
	DBPath string

	// CacheDir, when set, selects the directory cache instead of SQLite.
	CacheDir string

	// SQLite database backing the page cache.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:   defaultDBPath(),
		CacheDir: os.Getenv("USACR_CACHE_DIR"),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("usacr"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'usacr --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: logLevel}))

	fetcher, err := m.newFetcher(cli)
	if err != nil {
		if cli.Browser {
			fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		}
		return err
	}
	defer fetcher.Close()

	cache, err := m.newCache(cli, stderr)
	if err != nil {
		return err
	}
	defer m.Close()

	var loggedCache usacr.PageCache
	if cache != nil {
		loggedCache = usacrslog.NewLoggingPageCache(cache, logger)
	}

	deps.DB = m.DB
	deps.Client = &client.Client{
		Fetcher:    usacrslog.NewLoggingFetcher(fetcher, logger),
		Cache:      loggedCache,
		Events:     goquery.NewEventListParser(),
		Details:    goquery.NewEventDetailsParser(),
		Categories: goquery.NewCategoryParser(),
		Results:    goquery.NewResultsParser(),
		Extractor:  trafilatura.NewExtractor(),
		Converter:  htmltomarkdown.NewConverter(),
		Logger:     logger,
	}

	return kongCtx.Run(deps)
}

// newFetcher picks the transport. The AJAX endpoints answer plain HTTP; the
// browser path covers pages that only fill in after their scripts run.
func (m *Main) newFetcher(cli *CLI) (usacr.Fetcher, error) {
	if cli.Browser {
		fetcher, err := rod.NewFetcher()
		if err != nil {
			return nil, fmt.Errorf("failed to start browser: %w", err)
		}
		return fetcher, nil
	}
	return usacrhttp.NewFetcher(usacrhttp.WithRateLimit(cli.RateLimit)), nil
}

// newCache opens the page cache, preferring the directory cache when a cache
// dir is configured.
func (m *Main) newCache(cli *CLI, stderr io.Writer) (usacr.PageCache, error) {
	if cli.NoCache {
		return nil, nil
	}
	if m.CacheDir != "" {
		return fs.NewPageCache(m.CacheDir), nil
	}

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set USACR_DB to use a different database path\n")
		return nil, fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	return sqlite.NewPageCache(m.DB), nil
}

func defaultDBPath() string {
	if path := os.Getenv("USACR_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "usacr.db"
	}
	dir := filepath.Join(home, ".usacr")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "usacr.db")
}
