package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Options controls the browser process and the overall session budget.
type Options struct {
	Headless     bool
	WindowWidth  int
	WindowHeight int
	Timeout      time.Duration
}

// Session owns one browser context and the cancel funcs that tear it down.
type Session struct {
	ctx     context.Context
	cancels []context.CancelFunc
}

// NewSession starts a browser and returns a session bound to it. The caller
// must call Close, which releases the contexts in reverse order of creation.
func NewSession(parent context.Context, opts Options) (*Session, error) {
	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", opts.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.WindowSize(opts.WindowWidth, opts.WindowHeight),
	)

	s := &Session{}

	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, allocOpts...)
	s.cancels = append(s.cancels, allocCancel)

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	s.cancels = append(s.cancels, browserCancel)

	if opts.Timeout > 0 {
		timeoutCtx, timeoutCancel := context.WithTimeout(browserCtx, opts.Timeout)
		s.cancels = append(s.cancels, timeoutCancel)
		browserCtx = timeoutCtx
	}
	s.ctx = browserCtx

	// First Run starts the browser process
	if err := chromedp.Run(s.ctx); err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}

	return s, nil
}

// Ctx returns the session's browser context.
func (s *Session) Ctx() context.Context {
	return s.ctx
}

// Close releases all session resources. Safe to call more than once.
func (s *Session) Close() {
	for i := len(s.cancels) - 1; i >= 0; i-- {
		s.cancels[i]()
	}
	s.cancels = nil
}

// Run executes chromedp actions against the session context.
func (s *Session) Run(actions ...chromedp.Action) error {
	return chromedp.Run(s.ctx, actions...)
}

// runWithTimeout executes actions under a bounded child context.
func (s *Session) runWithTimeout(timeout time.Duration, actions ...chromedp.Action) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()
	return chromedp.Run(ctx, actions...)
}

// Navigate loads the given URL.
func (s *Session) Navigate(url string) error {
	if err := s.Run(chromedp.Navigate(url)); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// Title returns the current document title.
func (s *Session) Title() (string, error) {
	var title string
	if err := s.Run(chromedp.Title(&title)); err != nil {
		return "", fmt.Errorf("failed to read page title: %w", err)
	}
	return title, nil
}

// Location returns the current document URL.
func (s *Session) Location() (string, error) {
	var loc string
	if err := s.Run(chromedp.Location(&loc)); err != nil {
		return "", fmt.Errorf("failed to read page location: %w", err)
	}
	return loc, nil
}
