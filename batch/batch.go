// Package batch resolves a list of places one at a time through a browser
// and persists the results, including partial results when the batch fails.
package batch

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/mapaddr"
)

// Defaults for the per-record waits.
const (
	DefaultSettle      = 10 * time.Second
	DefaultHeadingWait = 10 * time.Second
)

// Runner resolves places sequentially. It owns Browser for the duration of
// Run and closes it before writing results.
type Runner struct {
	Browser   mapaddr.Browser
	Extractor mapaddr.Extractor
	Writer    mapaddr.ResultWriter

	// Limiter, if set, is waited on before every navigation.
	Limiter mapaddr.Limiter

	// Layout selects the heading and address. Zero value means
	// mapaddr.DefaultLayout.
	Layout mapaddr.Layout

	// BaseURL is the search endpoint. Empty means mapaddr.DefaultSearchURL.
	BaseURL string

	// Output is the path results are written to.
	Output string

	// Settle is the unconditional pause after each navigation.
	Settle time.Duration

	// HeadingWait caps the wait for the heading to render. Zero means
	// DefaultHeadingWait.
	HeadingWait time.Duration

	// KeepName keeps the page-derived name when only the address is missing.
	KeepName bool
}

// Report summarizes a batch.
type Report struct {
	Total    int
	Saved    int
	Resolved int
	Failed   int
	Elapsed  time.Duration
	Output   string
	Checksum string
}

// ProgressEvent reports the outcome of one place.
type ProgressEvent struct {
	Index   int
	Total   int
	Place   mapaddr.Place
	Result  mapaddr.Result
	Failure mapaddr.Failure
}

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// Run resolves every place in order. Per-place extraction failures are
// recorded as AddressNotFound rows and never stop the batch. Any other error
// stops the batch; the browser is closed and the results collected so far
// are written before the error is returned. The report is always non-nil.
func (r *Runner) Run(ctx context.Context, places []mapaddr.Place, progress ProgressFunc) (report *Report, err error) {
	begin := time.Now()
	report = &Report{Total: len(places), Output: r.Output}
	results := make([]mapaddr.Result, 0, len(places))

	defer func() {
		if closeErr := r.Browser.Close(); closeErr != nil && err == nil {
			err = mapaddr.WrapError(mapaddr.ESESSION, closeErr, "closing browser")
		}

		sum, writeErr := r.Writer.WriteResults(context.WithoutCancel(ctx), r.Output, results)
		if writeErr != nil {
			if err == nil {
				err = writeErr
			} else {
				err = errors.Join(err, writeErr)
			}
		} else {
			report.Saved = len(results)
			report.Checksum = sum
		}
		report.Elapsed = time.Since(begin)
	}()

	for i, place := range places {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := r.resolve(ctx, place)
		if err != nil {
			return report, err
		}

		result := mapaddr.ResultFor(place, res, r.KeepName)
		results = append(results, result)
		if res.OK() {
			report.Resolved++
		} else {
			report.Failed++
		}

		if progress != nil {
			progress(ProgressEvent{
				Index:   i,
				Total:   len(places),
				Place:   place,
				Result:  result,
				Failure: res.Failure,
			})
		}
	}

	return report, nil
}

// resolve queries and extracts a single place. Only unrecoverable errors
// are returned; everything else is folded into the Resolution.
func (r *Runner) resolve(ctx context.Context, place mapaddr.Place) (mapaddr.Resolution, error) {
	if r.Limiter != nil {
		if err := r.Limiter.Wait(ctx); err != nil {
			return mapaddr.Resolution{}, err
		}
	}

	url := mapaddr.SearchURL(r.baseURL(), place)
	if err := r.Browser.Navigate(ctx, url); err != nil {
		if mapaddr.ErrorCode(err) == mapaddr.ENOTFOUND {
			return mapaddr.Resolution{Failure: mapaddr.FailureNavigation}, nil
		}
		return mapaddr.Resolution{}, err
	}

	if err := sleep(ctx, r.Settle); err != nil {
		return mapaddr.Resolution{}, err
	}

	if err := r.Browser.WaitText(ctx, r.layout().Heading, r.headingWait()); err != nil {
		if mapaddr.ErrorCode(err) == mapaddr.ETIMEOUT {
			return mapaddr.Resolution{Failure: mapaddr.FailureHeadingTimeout}, nil
		}
		return mapaddr.Resolution{}, err
	}

	html, err := r.Browser.HTML(ctx)
	if err != nil {
		return mapaddr.Resolution{}, err
	}

	return r.Extractor.Extract(html), nil
}

func (r *Runner) layout() mapaddr.Layout {
	if r.Layout == (mapaddr.Layout{}) {
		return mapaddr.DefaultLayout
	}
	return r.Layout
}

func (r *Runner) baseURL() string {
	if r.BaseURL == "" {
		return mapaddr.DefaultSearchURL
	}
	return r.BaseURL
}

func (r *Runner) headingWait() time.Duration {
	if r.HeadingWait <= 0 {
		return DefaultHeadingWait
	}
	return r.HeadingWait
}

// sleep pauses for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
