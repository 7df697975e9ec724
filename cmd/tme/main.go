// Command tme resolves t.me usernames and post paths to structured JSON
// records from the public preview pages.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	tmegoquery "github.com/previewkit/tme/goquery"
	tmehttp "github.com/previewkit/tme/http"
	"github.com/previewkit/tme/resolve"
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
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("tme"),
		kong.Description("Extract structured records from t.me preview pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'tme --help' to see available commands")
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := zerolog.WarnLevel
	if cli.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: stderr}).
		With().Timestamp().Logger().Level(level)

	fetcher := tmehttp.NewFetcher(tmehttp.WithRateLimit(cli.RPS))
	defer fetcher.Close()

	extractor := tmegoquery.NewExtractor(
		tmegoquery.WithBaseURL(cli.BaseURL),
		tmegoquery.WithLogger(logger),
	)

	opts := []resolve.Option{
		resolve.WithBaseURL(cli.BaseURL),
		resolve.WithConcurrency(cli.Get.Concurrency),
	}
	if cli.Timeout > 0 {
		opts = append(opts,
			resolve.WithProfileTimeout(cli.Timeout),
			resolve.WithListTimeout(cli.Timeout),
		)
	}

	deps := &Dependencies{
		Ctx:      ctx,
		Stdout:   stdout,
		Stderr:   stderr,
		Resolver: resolve.NewResolver(fetcher, extractor, opts...),
	}

	return kongCtx.Run(deps)
}
