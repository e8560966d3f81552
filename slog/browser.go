// Package slog provides logging decorators for mapaddr services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/mapaddr"
)

// Ensure LoggingBrowser implements mapaddr.Browser.
var _ mapaddr.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with debug logging.
type LoggingBrowser struct {
	next   mapaddr.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next mapaddr.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// Navigate logs the URL and delegates to the wrapped browser.
func (b *LoggingBrowser) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		b.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.Navigate(ctx, url)
}

// WaitText logs the selector and how long the wait took.
func (b *LoggingBrowser) WaitText(ctx context.Context, selector string, timeout time.Duration) (err error) {
	defer func(begin time.Time) {
		b.logger.Info("wait text",
			"selector", selector,
			"timeout", timeout,
			"duration", time.Since(begin),
			"code", mapaddr.ErrorCode(err),
			"err", err,
		)
	}(time.Now())
	return b.next.WaitText(ctx, selector, timeout)
}

// HTML logs the document size.
func (b *LoggingBrowser) HTML(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		b.logger.Info("html",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return b.next.HTML(ctx)
}

// Close logs and delegates to the wrapped browser.
func (b *LoggingBrowser) Close() (err error) {
	defer func() {
		b.logger.Info("close browser", "err", err)
	}()
	return b.next.Close()
}
