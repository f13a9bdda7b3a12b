package ui

import (
	"strings"
	"testing"

	"github.com/ternarybob/shopcheck/internal/pages"
)

const (
	oldPriceGrey     = "rgb(160, 160, 160)"
	specialPriceBlue = "rgb(51, 153, 204)"
)

// TestSalePriceStyles verifies sale tiles render the old price in struck-through
// grey and the special price in plain blue.
func TestSalePriceStyles(t *testing.T) {
	utc := NewUITestContext(t)
	defer utc.Cleanup()

	utc.Log("Step 1: Opening storefront home page")
	utc.OpenHome()

	utc.Log("Step 2: Opening the full Sale listing")
	if err := utc.Nav.OpenAllSalePage(); err != nil {
		t.Fatalf("Failed to open the Sale listing: %v", err)
	}
	utc.Screenshot("sale_listing")

	sale := pages.NewSale(utc.Nav)

	count, err := sale.ProductCount()
	if err != nil {
		t.Fatalf("Failed to count sale products: %v", err)
	}
	if count == 0 {
		t.Fatalf("Expected sale products, found none")
	}
	utc.Log("Sale listing has %d products", count)

	utc.Log("Step 3: Checking price styling on discounted tiles")
	checked := 0
	for i := 0; i < count && checked < 3; i++ {
		has, err := sale.HasOldPrice(i)
		if err != nil {
			t.Fatalf("Failed to check old price on tile %d: %v", i, err)
		}
		if !has {
			continue
		}

		old, err := sale.OldPriceStyle(i)
		if err != nil {
			t.Fatalf("Failed to read old price style on tile %d: %v", i, err)
		}
		if old.Color != oldPriceGrey {
			t.Errorf("Tile %d: expected old price color %s, got %s", i, oldPriceGrey, old.Color)
		}
		if !strings.Contains(old.TextDecoration, "line-through") {
			t.Errorf("Tile %d: expected old price struck through, got %q", i, old.TextDecoration)
		}

		special, err := sale.SpecialPriceStyle(i)
		if err != nil {
			t.Fatalf("Failed to read special price style on tile %d: %v", i, err)
		}
		if special.Color != specialPriceBlue {
			t.Errorf("Tile %d: expected special price color %s, got %s", i, specialPriceBlue, special.Color)
		}
		if strings.Contains(special.TextDecoration, "line-through") {
			t.Errorf("Tile %d: special price must not be struck through, got %q", i, special.TextDecoration)
		}

		utc.Log("✓ Tile %d price styling verified", i)
		checked++
	}

	if checked == 0 {
		t.Fatalf("No discounted tiles found on the Sale listing")
	}
	utc.Screenshot("sale_styles_checked")
}
