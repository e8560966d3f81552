package mock

import (
	"context"
	"time"

	"github.com/fwojciec/mapaddr"
)

var _ mapaddr.Browser = (*Browser)(nil)

// Browser is a mock implementation of mapaddr.Browser.
type Browser struct {
	NavigateFn func(ctx context.Context, url string) error
	WaitTextFn func(ctx context.Context, selector string, timeout time.Duration) error
	HTMLFn     func(ctx context.Context) (string, error)
	CloseFn    func() error
}

func (b *Browser) Navigate(ctx context.Context, url string) error {
	return b.NavigateFn(ctx, url)
}

func (b *Browser) WaitText(ctx context.Context, selector string, timeout time.Duration) error {
	return b.WaitTextFn(ctx, selector, timeout)
}

func (b *Browser) HTML(ctx context.Context) (string, error) {
	return b.HTMLFn(ctx)
}

func (b *Browser) Close() error {
	return b.CloseFn()
}

var _ mapaddr.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of mapaddr.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
