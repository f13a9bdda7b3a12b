package pages

import (
	"fmt"
	"time"

	"github.com/ternarybob/shopcheck/internal/browser"
)

const (
	wishlistHeading      = "div.page-title h1"
	wishlistAddAllButton = "button.button.btn-add[title='Add All to Cart']"
	wishlistRows         = "table#wishlist-table tbody tr"
)

const (
	addAllPreDelay      = 500 * time.Millisecond
	editRowScrollDelay  = 500 * time.Millisecond
	productDetailSettle = 1500 * time.Millisecond
)

// Wishlist is the customer's wishlist page.
type Wishlist struct {
	s   *browser.Session
	nav *Navigator
}

func NewWishlist(nav *Navigator) *Wishlist {
	return &Wishlist{s: nav.Session(), nav: nav}
}

func (p *Wishlist) row(i int) string {
	return fmt.Sprintf("%s:nth-child(%d)", wishlistRows, i+1)
}

// Heading returns the page heading, e.g. "My Wishlist".
func (p *Wishlist) Heading() (string, error) {
	if err := p.s.WaitVisible(wishlistHeading, p.nav.Timing().WaitTimeout); err != nil {
		return "", err
	}
	return p.s.Text(wishlistHeading)
}

// ItemCount returns the number of wishlist rows.
func (p *Wishlist) ItemCount() (int, error) {
	return p.s.Count(wishlistRows)
}

// AddAllToCart moves every wishlist item into the shopping cart.
func (p *Wishlist) AddAllToCart() error {
	return p.s.SlowClick(p.s.Ctx(), wishlistAddAllButton, addAllPreDelay)
}

// EditItem follows row i's Edit link to the product detail page.
func (p *Wishlist) EditItem(i int) error {
	count, err := p.ItemCount()
	if err != nil {
		return err
	}
	if i < 0 || i >= count {
		return fmt.Errorf("wishlist item %d of %d: %w", i, count, ErrOutOfRange)
	}

	row := p.row(i)
	if err := p.s.ScrollIntoView(row); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), editRowScrollDelay); err != nil {
		return err
	}
	if err := p.s.ScriptClick(row + " a.link-edit"); err != nil {
		return err
	}
	return browser.Pause(p.s.Ctx(), productDetailSettle)
}
