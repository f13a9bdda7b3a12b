package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// Pause blocks for d or until ctx is done, whichever comes first. Fixed
// pauses are the fallback for storefront animations with no readiness
// signal; prefer Poll when a concrete condition exists.
func Pause(ctx context.Context, d time.Duration) error {
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

// WaitVisible blocks until sel is visible or the timeout elapses.
func (s *Session) WaitVisible(sel string, timeout time.Duration) error {
	if err := s.runWithTimeout(timeout, chromedp.WaitVisible(sel, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("element %q not visible within %s: %w", sel, timeout, err)
	}
	return nil
}

// WaitClickable blocks until sel is visible and enabled or the timeout elapses.
func (s *Session) WaitClickable(sel string, timeout time.Duration) error {
	err := s.runWithTimeout(timeout,
		chromedp.WaitVisible(sel, chromedp.ByQuery),
		chromedp.WaitEnabled(sel, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("element %q not clickable within %s: %w", sel, timeout, err)
	}
	return nil
}

// WaitInvisible blocks until sel is gone or hidden. Returns false without an
// error when the element is still visible after the timeout; the caller
// decides whether that is fatal.
func (s *Session) WaitInvisible(sel string, timeout time.Duration) (bool, error) {
	gone, err := s.probeOutcome(s.runWithTimeout(timeout, chromedp.WaitNotVisible(sel, chromedp.ByQuery)))
	if err != nil {
		return false, fmt.Errorf("waiting for %q to disappear: %w", sel, err)
	}
	return gone, nil
}

// WaitTitleIs blocks until the document title equals want.
func (s *Session) WaitTitleIs(want string, timeout time.Duration) error {
	return s.waitTitle(want, timeout, func(title string) bool { return title == want })
}

// WaitTitleContains blocks until the document title contains substr.
func (s *Session) WaitTitleContains(substr string, timeout time.Duration) error {
	return s.waitTitle(substr, timeout, func(title string) bool { return strings.Contains(title, substr) })
}

func (s *Session) waitTitle(want string, timeout time.Duration, match func(string) bool) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	var last string
	for {
		if err := chromedp.Run(ctx, chromedp.Title(&last)); err != nil {
			return fmt.Errorf("title did not reach %q within %s (last %q): %w", want, timeout, last, err)
		}
		if match(last) {
			return nil
		}
		if err := Pause(ctx, 100*time.Millisecond); err != nil {
			return fmt.Errorf("title did not reach %q within %s (last %q): %w", want, timeout, last, err)
		}
	}
}

// Poll evaluates the JS expression until it is truthy or the timeout elapses.
func (s *Session) Poll(expr string, timeout time.Duration) error {
	var ok bool
	err := s.Run(chromedp.Poll(expr, &ok, chromedp.WithPollingTimeout(timeout)))
	if err != nil {
		return fmt.Errorf("condition %q not met within %s: %w", expr, timeout, err)
	}
	return nil
}
