package mapaddr

import (
	"context"
	"time"
)

// Browser drives a single browser tab through a batch of searches.
// Implementations own a real browser process; a crash or disconnect is
// reported as ESESSION and is not recoverable.
type Browser interface {
	// Navigate loads url in a fresh tab, replacing the previous one.
	Navigate(ctx context.Context, url string) error

	// WaitText polls the current tab until an element matching selector
	// exists and has non-whitespace text. Returns ETIMEOUT if that does not
	// happen within timeout.
	WaitText(ctx context.Context, selector string, timeout time.Duration) error

	// HTML returns the rendered document of the current tab.
	HTML(ctx context.Context) (string, error)

	// Close releases the browser. Close is safe to call more than once.
	Close() error
}

// Limiter paces navigations.
// *rate.Limiter from golang.org/x/time/rate satisfies it.
type Limiter interface {
	Wait(ctx context.Context) error
}
