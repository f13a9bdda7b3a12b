package ui

import (
	"testing"
	"time"
)

// TestMissingElementFailsFast verifies element actions on a selector that
// never matches fail within their own bound instead of running out the whole
// test budget.
func TestMissingElementFailsFast(t *testing.T) {
	utc := NewUITestContext(t)
	defer utc.Cleanup()

	utc.Log("Step 1: Opening storefront home page")
	utc.OpenHome()

	const ghost = "#shopcheck-no-such-element"
	const bound = 15 * time.Second

	utc.Log("Step 2: Clicking a selector that matches nothing")
	start := time.Now()
	err := utc.Session.Click(ghost)
	elapsed := time.Since(start)
	if err == nil {
		t.Fatalf("Expected clicking %s to fail", ghost)
	}
	if elapsed > bound {
		t.Errorf("Click on missing element took %s, expected a bounded failure", elapsed)
	}
	utc.Log("✓ Click failed after %s: %v", elapsed, err)

	utc.Log("Step 3: Reading text of a selector that matches nothing")
	start = time.Now()
	_, err = utc.Session.Text(ghost)
	elapsed = time.Since(start)
	if err == nil {
		t.Fatalf("Expected reading %s to fail", ghost)
	}
	if elapsed > bound {
		t.Errorf("Text read on missing element took %s, expected a bounded failure", elapsed)
	}
	utc.Log("✓ Text read failed after %s", elapsed)
}
