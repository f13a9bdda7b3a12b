package pages

import (
	"fmt"
	"time"

	"github.com/ternarybob/shopcheck/internal/browser"
	"github.com/ternarybob/shopcheck/internal/catalog"
)

const (
	menProductTiles = "body > div.wrapper > div > div.main-container.col3-layout > div > " +
		"div.col-wrapper > div.col-main > div.category-products > ul > li"

	// Shopping Options sidebar
	menBlackColorFilter = "#narrow-by-list > dd:nth-child(6) > ol > li:nth-child(1) > a > span.swatch-label > img"
	menFirstPriceFilter = "#narrow-by-list > dd:nth-child(4) > ol > li:nth-child(1) > a"

	menItemsCountText = "body > div.wrapper > div > div.main-container.col3-layout > div > " +
		"div.col-wrapper > div.col-main > div.category-products > div.toolbar > " +
		"div.pager > div > p"

	// Within a tile, the swatch left selected by the black color filter
	menSelectedBlackSwatch = " div > ul > li.option-black.is-media.filter-match.selected > a > span > img"
)

const filterReloadDelay = 1500 * time.Millisecond

// Men is the full Men category listing with its filter sidebar.
type Men struct {
	s   *browser.Session
	nav *Navigator
}

func NewMen(nav *Navigator) *Men {
	return &Men{s: nav.Session(), nav: nav}
}

func (p *Men) tile(i int) string {
	return fmt.Sprintf("%s:nth-child(%d)", menProductTiles, i+1)
}

// ProductCount returns the number of product tiles on the page.
func (p *Men) ProductCount() (int, error) {
	return p.s.Count(menProductTiles)
}

func (p *Men) clickFilter(sel string) error {
	if err := p.s.WaitVisible(sel, p.nav.Timing().WaitTimeout); err != nil {
		return err
	}
	if err := p.s.ScrollIntoView(sel); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), p.nav.Timing().SettleDelay); err != nil {
		return err
	}
	if err := p.s.ScriptClick(sel); err != nil {
		return err
	}
	// Filter links reload the listing.
	if err := browser.Pause(p.s.Ctx(), filterReloadDelay); err != nil {
		return err
	}
	return p.s.WaitVisible(menProductTiles, p.nav.Timing().WaitTimeout)
}

// ApplyBlackColorFilter narrows the listing to black products.
func (p *Men) ApplyBlackColorFilter() error {
	return p.clickFilter(menBlackColorFilter)
}

// ApplyFirstPriceFilter narrows the listing to the first price bucket,
// $0.00 - $99.99.
func (p *Men) ApplyFirstPriceFilter() error {
	return p.clickFilter(menFirstPriceFilter)
}

// ItemsCountText returns the pager summary, e.g. "3 Item(s)".
func (p *Men) ItemsCountText() (string, error) {
	return p.s.Text(menItemsCountText)
}

// TileHasSelectedBlackSwatch reports whether tile i shows the selected black
// color swatch the filter pins.
func (p *Men) TileHasSelectedBlackSwatch(i int) (bool, error) {
	count, err := p.ProductCount()
	if err != nil {
		return false, err
	}
	if i < 0 || i >= count {
		return false, fmt.Errorf("product tile %d of %d: %w", i, count, ErrOutOfRange)
	}
	return p.s.IsDisplayed(p.tile(i) + menSelectedBlackSwatch)
}

// SelectedBlackSwatchBorderColor returns the computed border color of tile
// i's selected black swatch link.
func (p *Men) SelectedBlackSwatchBorderColor(i int) (string, error) {
	count, err := p.ProductCount()
	if err != nil {
		return "", err
	}
	if i < 0 || i >= count {
		return "", fmt.Errorf("product tile %d of %d: %w", i, count, ErrOutOfRange)
	}
	sel := p.tile(i) + " div > ul > li.option-black.is-media.filter-match.selected > a"
	// The border-color shorthand computes to "" in Blink; read one edge.
	return p.s.CSSValue(sel, "border-top-color")
}

// TilePrice returns the first displayed price of tile i.
func (p *Men) TilePrice(i int) (float64, error) {
	count, err := p.ProductCount()
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("product tile %d of %d: %w", i, count, ErrOutOfRange)
	}
	label, err := p.s.Text(p.tile(i) + " span.price")
	if err != nil {
		return 0, err
	}
	return catalog.ParsePrice(label)
}
