// Package rod drives Chrome through go-rod for mapaddr searches.
package rod

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fwojciec/mapaddr"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Browser implements mapaddr.Browser at compile time.
var _ mapaddr.Browser = (*Browser)(nil)

// waitTextJS reports whether the first element matching the selector has
// non-whitespace rendered text.
const waitTextJS = `(selector) => {
	const el = document.querySelector(selector);
	return el !== null && el.innerText.trim() !== "";
}`

// Browser implements mapaddr.Browser with a single Chrome tab at a time.
// Each Navigate closes the previous tab and opens a new one, so a page left
// in a bad state by one search does not leak into the next.
type Browser struct {
	manager *BrowserManager

	mu     sync.Mutex
	page   *rod.Page
	closed atomic.Bool
}

// NewBrowser launches Chrome and returns a Browser ready to navigate.
// Close must be called when the Browser is no longer needed.
//
// Returns ESESSION if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...ManagerOption) (*Browser, error) {
	manager, err := NewBrowserManager(opts...)
	if err != nil {
		return nil, mapaddr.WrapError(mapaddr.ESESSION, err, "starting browser")
	}
	return &Browser{manager: manager}, nil
}

// Navigate opens url in a fresh tab.
// Chrome navigation failures such as an unresolvable host are reported as
// ENOTFOUND; every other failure is ESESSION.
func (b *Browser) Navigate(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed.Load() {
		return mapaddr.Errorf(mapaddr.EINVALID, "browser is closed")
	}

	b.closePage()

	page, err := b.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return mapaddr.WrapError(mapaddr.ESESSION, err, "opening tab")
	}
	b.manager.IncrementPageCount()
	b.page = page

	if err := page.Context(ctx).Navigate(url); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		var navErr *rod.NavigationError
		if errors.As(err, &navErr) {
			return mapaddr.WrapError(mapaddr.ENOTFOUND, err, "navigating to %s", url)
		}
		return mapaddr.WrapError(mapaddr.ESESSION, err, "navigating to %s", url)
	}

	return nil
}

// WaitText polls the current tab until selector matches an element with
// non-whitespace text or timeout elapses.
func (b *Browser) WaitText(ctx context.Context, selector string, timeout time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	page, err := b.current()
	if err != nil {
		return err
	}

	p := page.Context(ctx).Timeout(timeout)
	defer p.CancelTimeout()

	err = p.Wait(rod.Eval(waitTextJS, selector))
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return mapaddr.Errorf(mapaddr.ETIMEOUT, "no text for %q within %s", selector, timeout)
	}
	return mapaddr.WrapError(mapaddr.ESESSION, err, "waiting for %q", selector)
}

// HTML returns the rendered document of the current tab.
func (b *Browser) HTML(ctx context.Context) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	page, err := b.current()
	if err != nil {
		return "", err
	}

	html, err := page.Context(ctx).HTML()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", mapaddr.WrapError(mapaddr.ESESSION, err, "reading page")
	}
	return html, nil
}

// Close closes the current tab and shuts down Chrome.
// Close is safe to call multiple times.
func (b *Browser) Close() error {
	if !b.closed.CompareAndSwap(false, true) {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.closePage()
	return b.manager.Close()
}

// LauncherPID returns the process ID of the Chrome launcher.
// This method exists for testing purposes to verify proper cleanup.
func (b *Browser) LauncherPID() int {
	return b.manager.LauncherPID()
}

// current returns the open tab. Must be called with mu held.
func (b *Browser) current() (*rod.Page, error) {
	if b.closed.Load() {
		return nil, mapaddr.Errorf(mapaddr.EINVALID, "browser is closed")
	}
	if b.page == nil {
		return nil, mapaddr.Errorf(mapaddr.EINVALID, "no page loaded")
	}
	return b.page, nil
}

// closePage closes the open tab, if any. Must be called with mu held.
func (b *Browser) closePage() {
	if b.page != nil {
		_ = b.page.Close()
		b.page = nil
	}
}
