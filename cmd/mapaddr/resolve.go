package main

import (
	"fmt"

	"github.com/fwojciec/mapaddr"
	"github.com/fwojciec/mapaddr/batch"
	"github.com/fwojciec/mapaddr/goquery"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	// Read input before starting the browser so schema errors are cheap.
	places, err := deps.Reader.ReadPlaces(deps.Ctx, c.Input)
	if err != nil {
		return err
	}

	browser, err := deps.NewBrowser()
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}

	runner := &batch.Runner{
		Browser:     browser,
		Extractor:   goquery.NewExtractor(mapaddr.DefaultLayout),
		Writer:      deps.Writer,
		Limiter:     deps.Limiter,
		BaseURL:     c.BaseURL,
		Output:      c.Output,
		Settle:      c.Settle,
		HeadingWait: c.HeadingWait,
		KeepName:    c.KeepName,
	}

	progress := func(e batch.ProgressEvent) {
		deps.Logger.Info("place",
			"index", e.Index+1,
			"total", e.Total,
			"query", e.Place.Name,
			"failure", e.Failure.String(),
		)
		if e.Failure == mapaddr.FailureNone {
			fmt.Fprintf(deps.Stdout, "Place Name: %s, Address: %s\n", e.Result.Name, e.Result.Address)
		} else {
			fmt.Fprintf(deps.Stdout, "Address not found for place: %s\n", e.Place.Name)
		}
	}

	report, err := runner.Run(deps.Ctx, places, progress)
	if err != nil {
		if report.Saved > 0 {
			fmt.Fprintf(deps.Stderr, "Saved partial results (%d of %d) to %s\n", report.Saved, report.Total, report.Output)
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Total places searched: %d\n", report.Total)
	fmt.Fprintf(deps.Stdout, "Time taken: %.2f seconds\n", report.Elapsed.Seconds())
	fmt.Fprintf(deps.Stdout, "Saved %d rows to %s (xxhash %s)\n", report.Saved, report.Output, report.Checksum)

	return nil
}
