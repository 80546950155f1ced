package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/rdocs/cratedoc/bot"
	"github.com/rdocs/cratedoc/goquery"
	"github.com/rdocs/cratedoc/htmltomarkdown"
	cdhttp "github.com/rdocs/cratedoc/http"
	"github.com/rdocs/cratedoc/resolve"
	cdslog "github.com/rdocs/cratedoc/slog"
	"github.com/rdocs/cratedoc/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Session database path. Set before calling Run().
	DBPath string

	// SQLite database backing chat sessions.
	DB *sqlite.DB
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
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("cratedoc"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'cratedoc --help' to see available commands")
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

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	resolver := &resolve.Resolver{
		Locator: cdhttp.NewLocator(cdhttp.WithLocatorTimeout(cli.Timeout)),
		Fetcher: cdhttp.NewFetcher(
			cdhttp.WithTimeout(cli.Timeout),
			cdhttp.WithRateLimit(cli.Rate, rateBurst),
		),
		Extractor: goquery.NewExtractor(),
	}
	deps.Resolver = cdslog.NewLoggingResolver(resolver, logger)
	deps.Registry = cdslog.NewLoggingRegistryService(cdhttp.NewRegistry(), logger)
	deps.Converter = htmltomarkdown.NewConverter()

	if cmd == "chat" {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set CRATEDOC_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		deps.Bot = &bot.Service{
			Resolver:  deps.Resolver,
			Registry:  deps.Registry,
			Sessions:  sqlite.NewSessionService(m.DB),
			Messenger: newConsoleMessenger(stdout),
			Logger:    logger,
		}
	}

	return kongCtx.Run(deps)
}

// rateBurst allows the speculative candidate fan-out to go through the
// rate limiter in one burst.
const rateBurst = 6

func defaultDBPath() string {
	if path := os.Getenv("CRATEDOC_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "cratedoc.db"
	}
	dir := filepath.Join(home, ".cratedoc")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "cratedoc.db")
}
