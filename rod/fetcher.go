// Package rod provides a browser-based implementation of usacr.Fetcher.
// The legacy results site loads its result tables through JavaScript; the
// http fetcher reaches the AJAX endpoints directly, while this fetcher
// renders the page the way a visitor's browser would, which also covers
// pages whose fragments moved behind new scripts.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/usacr"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements usacr.Fetcher at compile time.
var _ usacr.Fetcher = (*Fetcher)(nil)

// DefaultSettle is how long the fetcher waits after load for the results
// AJAX to populate the page.
const DefaultSettle = 2 * time.Second

// Fetcher retrieves rendered HTML using headless Chrome.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
	kill    func()
	settle  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithSettle sets how long to wait after page load for scripted content.
func WithSettle(d time.Duration) Option {
	return func(f *Fetcher) {
		f.settle = d
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{settle: DefaultSettle}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.kill = l.Kill
	return f, nil
}

// Fetch navigates to the URL, waits for the page scripts to settle, and
// returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	// The result tables arrive after load; give the site's scripts a
	// moment, bounded by the caller's context.
	if f.settle > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.settle):
		}
	}

	return page.HTML()
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	if f.kill != nil {
		f.kill()
	}
	return err
}
