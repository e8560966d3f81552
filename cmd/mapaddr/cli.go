package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/mapaddr"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Reader  mapaddr.PlaceReader
	Writer  mapaddr.ResultWriter
	Limiter mapaddr.Limiter

	// NewBrowser starts the browser session. It is called only after the
	// input has been read successfully.
	NewBrowser func() (mapaddr.Browser, error)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Input    string        `arg:"" help:"Spreadsheet (.xlsx or .csv) with a place name column"`
	Output   string        `short:"o" env:"MAPADDR_OUTPUT" help:"Output CSV path (default: <input>_output.csv)"`
	Column   string        `default:"Place Name" env:"MAPADDR_COLUMN" help:"Header of the place name column"`
	Sheet    string        `env:"MAPADDR_SHEET" help:"Sheet name for .xlsx input (default: first sheet)"`
	Settle   time.Duration `default:"10s" env:"MAPADDR_SETTLE" help:"Pause after each navigation"`
	Wait     time.Duration `default:"10s" env:"MAPADDR_WAIT" help:"Maximum wait for the place heading to render"`
	Rate     float64       `default:"0" env:"MAPADDR_RATE" help:"Maximum searches per second (0: unlimited)"`
	Recycle  int64         `default:"75" env:"MAPADDR_RECYCLE" help:"Restart Chrome after this many searches (0: never)"`
	Headless bool          `default:"true" negatable:"" env:"MAPADDR_HEADLESS" help:"Run Chrome without a window"`
	KeepName bool          `env:"MAPADDR_KEEP_NAME" help:"Keep the name found on the page when only the address is missing"`
	BaseURL  string        `default:"https://www.google.com/maps/search/" env:"MAPADDR_BASE_URL" help:"Search endpoint"`
	Verbose  bool          `short:"v" env:"MAPADDR_VERBOSE" help:"Log browser activity to stderr"`
}

// ResolveCmd resolves every place in the input file.
type ResolveCmd struct {
	Input       string
	Output      string
	BaseURL     string
	Settle      time.Duration
	HeadingWait time.Duration
	KeepName    bool
}
