package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/aidharvest"
	"github.com/fwojciec/aidharvest/fs"
	"github.com/fwojciec/aidharvest/goquery"
	"github.com/fwojciec/aidharvest/harvest"
	"github.com/fwojciec/aidharvest/htmltomarkdown"
	aidhttp "github.com/fwojciec/aidharvest/http"
	aidslog "github.com/fwojciec/aidharvest/slog"
	"github.com/fwojciec/aidharvest/sqlite"
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
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService aidharvest.RecordService
	PageCache     aidharvest.PageCache
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
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
		kong.Name("aidharvest"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'aidharvest --help' to see available commands")
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

	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set AIDHARVEST_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.RecordService = sqlite.NewRecordService(m.DB)
	m.PageCache = sqlite.NewPageCache(m.DB)
	deps.DB = m.DB
	deps.Records = m.RecordService
	deps.Pages = m.PageCache
	deps.Extractor = goquery.NewExtractor()
	deps.Converter = htmltomarkdown.NewConverter()

	fetcher := aidhttp.NewFetcher()
	defer fetcher.Close()
	deps.Fetcher = fetcher

	if cmd == "harvest" {
		extractor := deps.Extractor
		if cli.Harvest.Verbose {
			logger := slog.New(slog.NewTextHandler(stderr, nil))
			deps.Fetcher = aidslog.NewLoggingFetcher(deps.Fetcher, logger)
			extractor = aidslog.NewLoggingExtractor(extractor, logger)
		}

		deps.Harvester = &harvest.Harvester{
			Fetcher:   deps.Fetcher,
			Extractor: extractor,
			Writer: fs.NewWriter(cli.Harvest.Out,
				fs.WithConverter(deps.Converter)),
			Records:     m.RecordService,
			Pages:       m.PageCache,
			RateLimiter: harvest.NewDomainLimiter(cli.Harvest.Delay),
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("AIDHARVEST_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "aidharvest.db"
	}
	dir := filepath.Join(home, ".aidharvest")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "aidharvest.db")
}
