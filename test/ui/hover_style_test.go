package ui

import (
	"testing"

	"github.com/ternarybob/shopcheck/internal/pages"
)

// TestProductNameHoverStyle verifies product name links restyle on hover.
func TestProductNameHoverStyle(t *testing.T) {
	utc := NewUITestContext(t)
	defer utc.Cleanup()

	utc.Log("Step 1: Opening storefront home page")
	utc.OpenHome()

	utc.Log("Step 2: Opening the full Women listing")
	if err := utc.Nav.OpenAllWomenPage(); err != nil {
		t.Fatalf("Failed to open the Women listing: %v", err)
	}
	utc.Screenshot("women_listing")

	women := pages.NewWomen(utc.Nav)

	utc.Log("Step 3: Reading the product name color before hover")
	before, err := women.FirstProductNameColor()
	if err != nil {
		t.Fatalf("Failed to read product name color: %v", err)
	}
	utc.Log("Color before hover: %s", before)

	utc.Log("Step 4: Hovering the first product name")
	if err := women.HoverFirstProductName(); err != nil {
		t.Fatalf("Failed to hover product name: %v", err)
	}
	utc.Screenshot("name_hovered")

	utc.Log("Step 5: Reading the product name color on hover")
	after, err := women.FirstProductNameColor()
	if err != nil {
		t.Fatalf("Failed to read product name color on hover: %v", err)
	}
	utc.Log("Color on hover: %s", after)

	if before == after {
		t.Errorf("Expected product name color to change on hover, stayed %s", before)
	} else {
		utc.Log("✓ Product name color changed on hover: %s -> %s", before, after)
	}
}
