// Package pages models the storefront as page objects over a browser
// session. Each page object owns its locators; shared navigation chrome
// (consent dialog, account dropdown, top menu) lives on the Navigator.
package pages

import "strings"

// PageType identifies a storefront page by path and expected document title.
// The title match is the navigation completeness signal.
type PageType int

const (
	PageHome PageType = iota
	PageCreateAccount
	PageMyAccount
	PageWishlist
	PageShoppingCart
)

// Path returns the page's path relative to the storefront base URL.
func (p PageType) Path() string {
	switch p {
	case PageHome:
		return "/"
	case PageCreateAccount:
		return "/customer/account/create/"
	case PageMyAccount:
		return "/customer/account/"
	case PageWishlist:
		return "/wishlist/"
	case PageShoppingCart:
		return "/checkout/cart/"
	}
	return "/"
}

// Title returns the document title the storefront renders for the page.
func (p PageType) Title() string {
	switch p {
	case PageHome:
		return "Tealium Ecommerce Demo"
	case PageCreateAccount:
		return "Create New Customer Account"
	case PageMyAccount:
		return "My Account"
	case PageWishlist:
		return "My Wishlist"
	case PageShoppingCart:
		return "Shopping Cart"
	}
	return ""
}

// URL joins the page path onto the storefront base URL.
func (p PageType) URL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + p.Path()
}
