package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/mapaddr"
	"github.com/fwojciec/mapaddr/csv"
	"github.com/fwojciec/mapaddr/rod"
	mapslog "github.com/fwojciec/mapaddr/slog"
	"github.com/fwojciec/mapaddr/xlsx"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// BrowserConfig holds the browser settings taken from the command line.
type BrowserConfig struct {
	Headless bool
	MaxPages int64
}

// Main represents the program.
type Main struct {
	// NewBrowser launches the browser. Tests replace it to avoid Chrome.
	NewBrowser func(cfg BrowserConfig) (mapaddr.Browser, error)
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		NewBrowser: func(cfg BrowserConfig) (mapaddr.Browser, error) {
			return rod.NewBrowser(
				rod.WithHeadless(cfg.Headless),
				rod.WithMaxPages(cfg.MaxPages),
			)
		},
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("mapaddr"),
		kong.Description("Look up postal addresses for a spreadsheet of place names"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no input file provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		_, _ = parser.Parse([]string{"--help"})
		return err
	}

	logger := newLogger(stderr, cli.Verbose).With("run", uuid.NewString())

	reader, err := placeReader(cli.Input, cli.Column, cli.Sheet)
	if err != nil {
		return err
	}

	output := cli.Output
	if output == "" {
		output = OutputPath(cli.Input)
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Reader: mapslog.NewLoggingPlaceReader(reader, logger),
		Writer: mapslog.NewLoggingResultWriter(csv.NewResultWriter(), logger),
		NewBrowser: func() (mapaddr.Browser, error) {
			browser, err := m.NewBrowser(BrowserConfig{
				Headless: cli.Headless,
				MaxPages: cli.Recycle,
			})
			if err != nil {
				return nil, err
			}
			return mapslog.NewLoggingBrowser(browser, logger), nil
		},
	}

	// One token bucket, no bursting.
	if cli.Rate > 0 {
		deps.Limiter = rate.NewLimiter(rate.Limit(cli.Rate), 1)
	}

	cmd := &ResolveCmd{
		Input:       cli.Input,
		Output:      output,
		BaseURL:     cli.BaseURL,
		Settle:      cli.Settle,
		HeadingWait: cli.Wait,
		KeepName:    cli.KeepName,
	}

	return cmd.Run(deps)
}

// OutputPath derives the results path from the input path by replacing the
// extension with "_output.csv".
func OutputPath(input string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "_output.csv"
}

// placeReader selects a reader by file extension.
func placeReader(path, column, sheet string) (mapaddr.PlaceReader, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".xlsx", ".xlsm":
		return xlsx.NewPlaceReader(xlsx.WithColumn(column), xlsx.WithSheet(sheet)), nil
	case ".csv":
		return csv.NewPlaceReader(column), nil
	default:
		return nil, mapaddr.Errorf(mapaddr.EFILE, "unsupported input format %q (want .xlsx or .csv)", ext)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
