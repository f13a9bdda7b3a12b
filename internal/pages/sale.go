package pages

import (
	"fmt"

	"github.com/ternarybob/shopcheck/internal/browser"
)

const (
	saleProductTiles = "body > div.wrapper > div > div.main-container.col3-layout > div > " +
		"div.col-wrapper > div.col-main > div.category-products > ul > li"

	// Relative to a tile
	saleOldPrice     = " div.price-box p.old-price .price"
	saleSpecialPrice = " div.price-box p.special-price .price"
)

// PriceStyle captures the computed styling of a rendered price label.
type PriceStyle struct {
	Color          string
	TextDecoration string
}

// Sale is the full Sale category listing, where tiles show a struck-through
// old price next to the special price.
type Sale struct {
	s   *browser.Session
	nav *Navigator
}

func NewSale(nav *Navigator) *Sale {
	return &Sale{s: nav.Session(), nav: nav}
}

func (p *Sale) tile(i int) string {
	return fmt.Sprintf("%s:nth-child(%d)", saleProductTiles, i+1)
}

func (p *Sale) checkBounds(i int) error {
	count, err := p.ProductCount()
	if err != nil {
		return err
	}
	if i < 0 || i >= count {
		return fmt.Errorf("product tile %d of %d: %w", i, count, ErrOutOfRange)
	}
	return nil
}

// ProductCount returns the number of product tiles on the page.
func (p *Sale) ProductCount() (int, error) {
	return p.s.Count(saleProductTiles)
}

// HasOldPrice reports whether tile i renders an old price.
func (p *Sale) HasOldPrice(i int) (bool, error) {
	if err := p.checkBounds(i); err != nil {
		return false, err
	}
	count, err := p.s.Count(p.tile(i) + saleOldPrice)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *Sale) priceStyle(sel string) (PriceStyle, error) {
	color, err := p.s.CSSValue(sel, "color")
	if err != nil {
		return PriceStyle{}, err
	}
	decoration, err := p.s.CSSValue(sel, "text-decoration-line")
	if err != nil {
		return PriceStyle{}, err
	}
	return PriceStyle{Color: color, TextDecoration: decoration}, nil
}

// OldPriceStyle returns the computed style of tile i's old price label.
func (p *Sale) OldPriceStyle(i int) (PriceStyle, error) {
	if err := p.checkBounds(i); err != nil {
		return PriceStyle{}, err
	}
	sel := p.tile(i) + saleOldPrice
	if err := p.scrollTo(sel); err != nil {
		return PriceStyle{}, err
	}
	return p.priceStyle(sel)
}

// SpecialPriceStyle returns the computed style of tile i's special price label.
func (p *Sale) SpecialPriceStyle(i int) (PriceStyle, error) {
	if err := p.checkBounds(i); err != nil {
		return PriceStyle{}, err
	}
	sel := p.tile(i) + saleSpecialPrice
	if err := p.scrollTo(sel); err != nil {
		return PriceStyle{}, err
	}
	return p.priceStyle(sel)
}

func (p *Sale) scrollTo(sel string) error {
	if err := p.s.ScrollIntoView(sel); err != nil {
		return err
	}
	return browser.Pause(p.s.Ctx(), p.nav.Timing().SettleDelay)
}
