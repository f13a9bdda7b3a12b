package browser

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/cdproto/input"
	"github.com/chromedp/chromedp"
)

// TypeSlowly clears the field then sends text one character at a time with a
// delay between characters. Cancelling ctx aborts the remaining characters.
func (s *Session) TypeSlowly(ctx context.Context, sel, text string, perChar time.Duration) error {
	if err := s.WaitVisible(sel, defaultActionTimeout); err != nil {
		return err
	}
	if err := s.runWithTimeout(defaultActionTimeout, chromedp.Clear(sel, chromedp.ByQuery)); err != nil {
		return fmt.Errorf("failed to clear %q: %w", sel, err)
	}
	for _, ch := range text {
		if err := s.runWithTimeout(defaultActionTimeout, chromedp.SendKeys(sel, string(ch), chromedp.ByQuery)); err != nil {
			return fmt.Errorf("failed to type into %q: %w", sel, err)
		}
		if err := Pause(ctx, perChar); err != nil {
			return fmt.Errorf("typing into %q aborted: %w", sel, err)
		}
	}
	return nil
}

// ClearAndType replaces the field content in one shot, without the
// inter-character delay.
func (s *Session) ClearAndType(sel, text string) error {
	err := s.runWithTimeout(defaultActionTimeout,
		chromedp.Clear(sel, chromedp.ByQuery),
		chromedp.SendKeys(sel, text, chromedp.ByQuery),
	)
	if err != nil {
		return fmt.Errorf("failed to set value of %q: %w", sel, err)
	}
	return nil
}

// SlowClick waits out preDelay then clicks sel. The delay gives dropdown and
// hover animations time to finish before the click lands.
func (s *Session) SlowClick(ctx context.Context, sel string, preDelay time.Duration) error {
	if err := Pause(ctx, preDelay); err != nil {
		return fmt.Errorf("click on %q aborted: %w", sel, err)
	}
	return s.Click(sel)
}

// Click clicks the first visible match for sel. A match that never appears
// fails within the default action bound, not the session budget.
func (s *Session) Click(sel string) error {
	if err := s.runWithTimeout(defaultActionTimeout, chromedp.Click(sel, chromedp.ByQuery, chromedp.NodeVisible)); err != nil {
		return fmt.Errorf("failed to click %q within %s: %w", sel, defaultActionTimeout, err)
	}
	return nil
}

// ScriptClick clicks sel through the DOM, bypassing overlays that would
// intercept a trusted click.
func (s *Session) ScriptClick(sel string) error {
	js := fmt.Sprintf(`(function() {
		var el = document.querySelector(%q);
		if (!el) { return false; }
		el.click();
		return true;
	})()`, sel)
	var clicked bool
	if err := s.Run(chromedp.Evaluate(js, &clicked)); err != nil {
		return fmt.Errorf("script click on %q failed: %w", sel, err)
	}
	if !clicked {
		return fmt.Errorf("script click on %q failed: element not found", sel)
	}
	return nil
}

// ScrollIntoView centers sel in the viewport.
func (s *Session) ScrollIntoView(sel string) error {
	js := fmt.Sprintf(`(function() {
		var el = document.querySelector(%q);
		if (!el) { return false; }
		el.scrollIntoView({block: 'center'});
		return true;
	})()`, sel)
	var found bool
	if err := s.Run(chromedp.Evaluate(js, &found)); err != nil {
		return fmt.Errorf("failed to scroll %q into view: %w", sel, err)
	}
	if !found {
		return fmt.Errorf("failed to scroll %q into view: element not found", sel)
	}
	return nil
}

// ScrollToTop scrolls the window back to the top of the page.
func (s *Session) ScrollToTop() error {
	var done bool
	if err := s.Run(chromedp.Evaluate(`(function() { window.scrollTo(0, 0); return true; })()`, &done)); err != nil {
		return fmt.Errorf("failed to scroll to top: %w", err)
	}
	return nil
}

// Hover moves the mouse to the center of sel.
func (s *Session) Hover(sel string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(s.ctx, timeout)
	defer cancel()

	var nodes []*cdp.Node
	if err := chromedp.Run(ctx, chromedp.Nodes(sel, &nodes, chromedp.ByQuery, chromedp.NodeVisible)); err != nil {
		return fmt.Errorf("failed to resolve %q for hover: %w", sel, err)
	}
	if len(nodes) == 0 {
		return fmt.Errorf("failed to resolve %q for hover: no visible node", sel)
	}

	return chromedp.Run(ctx, chromedp.ActionFunc(func(ctx context.Context) error {
		box, err := dom.GetBoxModel().WithNodeID(nodes[0].NodeID).Do(ctx)
		if err != nil {
			return fmt.Errorf("failed to read box model of %q: %w", sel, err)
		}
		x := (box.Content[0] + box.Content[4]) / 2
		y := (box.Content[1] + box.Content[5]) / 2
		if err := input.DispatchMouseEvent(input.MouseMoved, x, y).Do(ctx); err != nil {
			return fmt.Errorf("failed to hover %q: %w", sel, err)
		}
		return nil
	}))
}

// Text returns the text content of the first visible match for sel, failing
// within the default action bound when no match appears.
func (s *Session) Text(sel string) (string, error) {
	var out string
	if err := s.runWithTimeout(defaultActionTimeout, chromedp.Text(sel, &out, chromedp.ByQuery, chromedp.NodeVisible)); err != nil {
		return "", fmt.Errorf("failed to read text of %q within %s: %w", sel, defaultActionTimeout, err)
	}
	return strings.TrimSpace(out), nil
}

// Count returns the number of elements matching sel, zero when none match.
func (s *Session) Count(sel string) (int, error) {
	js := fmt.Sprintf(`document.querySelectorAll(%q).length`, sel)
	var n int
	if err := s.Run(chromedp.Evaluate(js, &n)); err != nil {
		return 0, fmt.Errorf("failed to count %q: %w", sel, err)
	}
	return n, nil
}

// Exists reports whether sel becomes visible within the timeout. A timeout is
// an ordinary false, not an error.
func (s *Session) Exists(sel string, timeout time.Duration) (bool, error) {
	found, err := s.probeOutcome(s.runWithTimeout(timeout, chromedp.WaitVisible(sel, chromedp.ByQuery)))
	if err != nil {
		return false, fmt.Errorf("failed probing for %q: %w", sel, err)
	}
	return found, nil
}

// IsDisplayed reports whether sel exists in the DOM and is currently rendered.
func (s *Session) IsDisplayed(sel string) (bool, error) {
	js := fmt.Sprintf(`(function() {
		var el = document.querySelector(%q);
		if (!el) { return false; }
		var style = window.getComputedStyle(el);
		return style.display !== 'none' && style.visibility !== 'hidden' && el.offsetParent !== null;
	})()`, sel)
	var displayed bool
	if err := s.Run(chromedp.Evaluate(js, &displayed)); err != nil {
		return false, fmt.Errorf("failed to check visibility of %q: %w", sel, err)
	}
	return displayed, nil
}

// FirstDisplayed walks the candidate selectors in order and returns the first
// one that matches a rendered element. Candidates are only evaluated until a
// match is found.
func (s *Session) FirstDisplayed(candidates []string) (string, error) {
	for _, sel := range candidates {
		displayed, err := s.IsDisplayed(sel)
		if err != nil {
			return "", err
		}
		if displayed {
			return sel, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrNoCandidateMatched, strings.Join(candidates, ", "))
}

// CSSValue returns the computed value of the given CSS property on sel.
func (s *Session) CSSValue(sel, property string) (string, error) {
	js := fmt.Sprintf(`(function() {
		var el = document.querySelector(%q);
		if (!el) { return ''; }
		return window.getComputedStyle(el).getPropertyValue(%q);
	})()`, sel, property)
	var value string
	if err := s.Run(chromedp.Evaluate(js, &value)); err != nil {
		return "", fmt.Errorf("failed to read CSS %q of %q: %w", property, sel, err)
	}
	return strings.TrimSpace(value), nil
}

// Attribute returns the value of the named attribute on sel, "" when unset.
func (s *Session) Attribute(sel, name string) (string, error) {
	var value string
	var ok bool
	if err := s.runWithTimeout(defaultActionTimeout, chromedp.AttributeValue(sel, name, &value, &ok, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("failed to read attribute %q of %q: %w", name, sel, err)
	}
	if !ok {
		return "", nil
	}
	return value, nil
}

// OuterHTML returns the serialized HTML of the first match for sel.
func (s *Session) OuterHTML(sel string) (string, error) {
	var html string
	if err := s.runWithTimeout(defaultActionTimeout, chromedp.OuterHTML(sel, &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("failed to read HTML of %q: %w", sel, err)
	}
	return html, nil
}

// SelectByVisibleText picks the option whose text equals label and fires the
// select's change handler.
func (s *Session) SelectByVisibleText(sel, label string) error {
	js := fmt.Sprintf(`(function() {
		var el = document.querySelector(%q);
		if (!el) { return false; }
		for (var i = 0; i < el.options.length; i++) {
			if (el.options[i].text.trim() === %q) {
				el.selectedIndex = i;
				el.dispatchEvent(new Event('change', {bubbles: true}));
				if (el.options[i].value && el.options[i].value.indexOf('http') === 0) {
					window.location = el.options[i].value;
				}
				return true;
			}
		}
		return false;
	})()`, sel, label)
	var selected bool
	if err := s.Run(chromedp.Evaluate(js, &selected)); err != nil {
		return fmt.Errorf("failed to select %q in %q: %w", label, sel, err)
	}
	if !selected {
		return fmt.Errorf("failed to select %q in %q: no such option", label, sel)
	}
	return nil
}
