package pages

import (
	"fmt"
	"time"

	"github.com/ternarybob/shopcheck/internal/browser"
	"github.com/ternarybob/shopcheck/internal/catalog"
)

const (
	womenProductList = "body > div.wrapper > div > div.main-container.col3-layout > div > " +
		"div.col-wrapper > div.col-main > div.category-products > ul"
	womenProductTiles = womenProductList + " > li"

	womenSortSelect = "body > div.wrapper > div > div.main-container.col3-layout > div > " +
		"div.col-wrapper > div.col-main > div.category-products > div.toolbar > " +
		"div.sorter > div > select"
	womenSortPriceOption = womenSortSelect + " > option:nth-child(3)"

	womenFirstProductNameLink = womenProductTiles + ":nth-child(1) > div > h2 > a"
)

const (
	resortSettleDelay   = 3 * time.Second
	hoverRevealDelay    = 500 * time.Millisecond
	wishlistSettleDelay = 1500 * time.Millisecond
)

// Women is the full Women category listing.
type Women struct {
	s   *browser.Session
	nav *Navigator
}

func NewWomen(nav *Navigator) *Women {
	return &Women{s: nav.Session(), nav: nav}
}

func (p *Women) tile(i int) string {
	return fmt.Sprintf("%s:nth-child(%d)", womenProductTiles, i+1)
}

func (p *Women) wishlistLink(i int) string {
	return p.tile(i) + " > div > div.actions > ul > li:nth-child(1) > a"
}

// ProductCount returns the number of product tiles on the page.
func (p *Women) ProductCount() (int, error) {
	return p.s.Count(womenProductTiles)
}

// EffectivePrices snapshots the listing and returns the price a shopper
// would pay per tile, in display order.
func (p *Women) EffectivePrices() ([]float64, error) {
	html, err := p.s.OuterHTML(womenProductList)
	if err != nil {
		return nil, err
	}
	return catalog.EffectivePrices(html)
}

// SortByPrice selects "Price" in the Sort By dropdown and waits out the
// page resort.
func (p *Women) SortByPrice() error {
	if err := p.s.ScrollIntoView(womenSortSelect); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), hoverRevealDelay); err != nil {
		return err
	}
	if err := p.s.SelectByVisibleText(womenSortSelect, "Price"); err != nil {
		return err
	}
	// The sorter reloads the page; the listing has no resort-done signal.
	if err := browser.Pause(p.s.Ctx(), resortSettleDelay); err != nil {
		return err
	}
	return p.s.WaitVisible(womenProductTiles, p.nav.Timing().WaitTimeout)
}

// ClickSortByPriceOption sorts by clicking the Price option directly.
func (p *Women) ClickSortByPriceOption() error {
	if err := p.s.ScrollIntoView(womenSortSelect); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), p.nav.Timing().SettleDelay); err != nil {
		return err
	}
	if err := p.s.Click(womenSortPriceOption); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), resortSettleDelay); err != nil {
		return err
	}
	return p.s.WaitVisible(womenProductTiles, p.nav.Timing().WaitTimeout)
}

// AddToWishlist hovers product tile i to reveal its actions and clicks its
// wishlist link. The storefront then redirects to the wishlist page.
func (p *Women) AddToWishlist(i int) error {
	count, err := p.ProductCount()
	if err != nil {
		return err
	}
	if i < 0 || i >= count {
		return fmt.Errorf("product tile %d of %d: %w", i, count, ErrOutOfRange)
	}

	tile := p.tile(i)
	if err := p.s.ScrollIntoView(tile); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), p.nav.Timing().SettleDelay); err != nil {
		return err
	}
	if err := p.s.Hover(tile, p.nav.Timing().WaitTimeout); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), hoverRevealDelay); err != nil {
		return err
	}
	if err := p.s.ScriptClick(p.wishlistLink(i)); err != nil {
		return err
	}
	return browser.Pause(p.s.Ctx(), wishlistSettleDelay)
}

// HoverFirstProductName moves the mouse onto the first product's name link.
func (p *Women) HoverFirstProductName() error {
	if err := p.s.ScrollIntoView(womenFirstProductNameLink); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), p.nav.Timing().SettleDelay); err != nil {
		return err
	}
	return p.s.Hover(womenFirstProductNameLink, p.nav.Timing().WaitTimeout)
}

// FirstProductNameColor returns the computed text color of the first
// product's name link.
func (p *Women) FirstProductNameColor() (string, error) {
	return p.s.CSSValue(womenFirstProductNameLink, "color")
}
