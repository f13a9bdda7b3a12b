package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/ternarybob/shopcheck/internal/browser"
)

const (
	addToCartButton = "#product_addtocart_form button[title='Add to Cart']"
	colorSwatches   = "ul.configurable-swatch-list[id*='configurable_swatch_color'] li"
	sizeSwatches    = "ul.configurable-swatch-list[id*='configurable_swatch_size'] li"
)

const (
	addToCartPreDelay = 500 * time.Millisecond
	cartAddSettle     = 2 * time.Second
)

// ProductDetail is a single product's detail page with its configurable
// swatches.
type ProductDetail struct {
	s   *browser.Session
	nav *Navigator
}

func NewProductDetail(nav *Navigator) *ProductDetail {
	return &ProductDetail{s: nav.Session(), nav: nav}
}

// selectFirstAvailable walks the swatch list and clicks the label of the
// first swatch not marked not-available. A product without swatches is left
// as-is.
func (p *ProductDetail) selectFirstAvailable(listSel string) error {
	count, err := p.s.Count(listSel)
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		swatch := fmt.Sprintf("%s:nth-of-type(%d)", listSel, i+1)
		classes, err := p.s.Attribute(swatch, "class")
		if err != nil {
			continue
		}
		if strings.Contains(classes, "not-available") {
			continue
		}

		label := swatch + " a span.swatch-label"
		if err := p.s.ScrollIntoView(label); err != nil {
			continue
		}
		if err := browser.Pause(p.s.Ctx(), p.nav.Timing().SettleDelay); err != nil {
			return err
		}
		if err := p.s.ScriptClick(label); err != nil {
			continue
		}
		return nil
	}
	return nil
}

// SelectFirstAvailableColor picks the first in-stock color swatch.
func (p *ProductDetail) SelectFirstAvailableColor() error {
	return p.selectFirstAvailable(colorSwatches)
}

// SelectFirstAvailableSize picks the first in-stock size swatch.
func (p *ProductDetail) SelectFirstAvailableSize() error {
	return p.selectFirstAvailable(sizeSwatches)
}

// AddToCart submits the add-to-cart form and waits out the cart round-trip.
func (p *ProductDetail) AddToCart() error {
	if err := p.s.ScrollIntoView(addToCartButton); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), addToCartPreDelay); err != nil {
		return err
	}
	if err := p.s.ScriptClick(addToCartButton); err != nil {
		return err
	}
	return browser.Pause(p.s.Ctx(), cartAddSettle)
}
