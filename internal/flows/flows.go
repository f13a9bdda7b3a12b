// Package flows composes page objects into the multi-page shopper journeys
// the test cases build on.
package flows

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ternarybob/arbor"

	"github.com/ternarybob/shopcheck/internal/catalog"
	"github.com/ternarybob/shopcheck/internal/common"
	"github.com/ternarybob/shopcheck/internal/credstore"
	"github.com/ternarybob/shopcheck/internal/pages"
)

// Runner drives shopper journeys over one browser session.
type Runner struct {
	nav   *pages.Navigator
	cfg   *common.Config
	creds *credstore.Store
	log   arbor.ILogger
}

// NewRunner binds a flow runner to a navigator, configuration and
// credential store.
func NewRunner(nav *pages.Navigator, cfg *common.Config, creds *credstore.Store) *Runner {
	return &Runner{
		nav:   nav,
		cfg:   cfg,
		creds: creds,
		log:   common.GetLogger(),
	}
}

// Navigator returns the underlying navigator.
func (r *Runner) Navigator() *pages.Navigator {
	return r.nav
}

// OpenHome loads the storefront home page and dismisses the privacy dialog
// when it shows up.
func (r *Runner) OpenHome() error {
	if err := r.nav.Open(pages.PageHome); err != nil {
		return err
	}
	accepted, err := r.nav.TryAcceptConsent()
	if err != nil {
		return err
	}
	if accepted {
		r.log.Debug().Msg("Privacy consent dialog accepted")
	}
	return nil
}

// fixtureEmail generates a unique registration email.
func (r *Runner) fixtureEmail() string {
	token := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("test-%s@%s", token, r.cfg.Account.EmailDomain)
}

// CreateAccount registers a fresh fixture account and persists its
// credentials. The home page must already be open; the browser is left
// signed in on the My Account page.
func (r *Runner) CreateAccount() (credstore.Credentials, error) {
	creds := credstore.Credentials{
		Email:    r.fixtureEmail(),
		Password: r.cfg.Account.Password,
	}
	r.log.Info().Str("email", creds.Email).Msg("Registering fixture account")

	if err := r.nav.OpenRegisterPage(); err != nil {
		return credstore.Credentials{}, err
	}

	account := pages.NewAccount(r.nav)
	steps := []struct {
		name string
		fn   func() error
	}{
		{"first name", func() error { return account.FillFirstName(r.cfg.Account.FirstName) }},
		{"middle name", func() error { return account.FillMiddleName(r.cfg.Account.MiddleName) }},
		{"last name", func() error { return account.FillLastName(r.cfg.Account.LastName) }},
		{"email", func() error { return account.FillEmail(creds.Email) }},
		{"password", func() error { return account.FillPassword(creds.Password) }},
		{"confirmation", func() error { return account.FillConfirmation(creds.Password) }},
	}
	for _, step := range steps {
		if err := step.fn(); err != nil {
			return credstore.Credentials{}, fmt.Errorf("filling %s: %w", step.name, err)
		}
	}

	if err := account.Submit(); err != nil {
		return credstore.Credentials{}, err
	}
	if err := r.nav.Session().WaitTitleIs(pages.PageMyAccount.Title(), r.nav.Timing().WaitTimeout); err != nil {
		return credstore.Credentials{}, fmt.Errorf("registration did not land on the account page: %w", err)
	}

	if err := r.creds.Save(creds); err != nil {
		return credstore.Credentials{}, err
	}
	r.log.Info().Str("email", creds.Email).Msg("Fixture account registered")
	return creds, nil
}

// EnsureAccount returns a usable fixture account, creating and persisting
// one when none is stored. The second return reports whether a fresh account
// was registered during this call, which leaves the browser signed in.
func (r *Runner) EnsureAccount() (credstore.Credentials, bool, error) {
	creds, err := r.creds.Load()
	if err == nil {
		return creds, false, nil
	}
	if err != credstore.ErrNoCredentials {
		return credstore.Credentials{}, false, err
	}

	r.log.Info().Msg("No stored account, registering a fresh one")
	creds, err = r.CreateAccount()
	if err != nil {
		return credstore.Credentials{}, false, err
	}
	return creds, true, nil
}

// SignIn signs the given account in and verifies the My Account landing page.
func (r *Runner) SignIn(creds credstore.Credentials) error {
	if err := r.nav.OpenLoginPage(); err != nil {
		return err
	}

	login := pages.NewLogin(r.nav)
	if err := login.FillEmail(creds.Email); err != nil {
		return err
	}
	if err := login.FillPassword(creds.Password); err != nil {
		return err
	}
	if err := login.SubmitLogin(); err != nil {
		return err
	}

	if err := r.nav.Session().WaitTitleIs(pages.PageMyAccount.Title(), r.nav.Timing().WaitTimeout); err != nil {
		return fmt.Errorf("sign-in did not land on the account page: %w", err)
	}
	r.log.Info().Str("email", creds.Email).Msg("Signed in")
	return nil
}

// EnsureSignedIn leaves the browser signed in with the fixture account,
// registering one first when needed.
func (r *Runner) EnsureSignedIn() (credstore.Credentials, error) {
	creds, created, err := r.EnsureAccount()
	if err != nil {
		return credstore.Credentials{}, err
	}
	if created {
		// Registration signs the new account in.
		return creds, nil
	}
	if err := r.SignIn(creds); err != nil {
		return credstore.Credentials{}, err
	}
	return creds, nil
}

// WomenSortingAndWishlist runs the sorting and wishlist journey: sign in,
// open the full Women listing, sort by price, verify ascending order, add
// the first two products to the wishlist and confirm the account dropdown
// reflects both items.
func (r *Runner) WomenSortingAndWishlist() error {
	if err := r.OpenHome(); err != nil {
		return err
	}
	if _, err := r.EnsureSignedIn(); err != nil {
		return err
	}

	r.log.Info().Msg("Step 1: Opening the full Women listing")
	if err := r.nav.OpenAllWomenPage(); err != nil {
		return err
	}

	women := pages.NewWomen(r.nav)

	r.log.Info().Msg("Step 2: Sorting by price")
	if err := women.SortByPrice(); err != nil {
		return err
	}

	r.log.Info().Msg("Step 3: Verifying ascending price order")
	prices, err := women.EffectivePrices()
	if err != nil {
		return err
	}
	if len(prices) == 0 {
		return fmt.Errorf("no product prices found after sorting")
	}
	if !catalog.IsSortedAscending(prices) {
		return fmt.Errorf("prices not ascending after sort: %v", prices)
	}

	r.log.Info().Msg("Step 4: Adding the first two products to the wishlist")
	if err := women.AddToWishlist(0); err != nil {
		return err
	}
	// Adding redirects to the wishlist; go back for the second product.
	if err := r.nav.OpenAllWomenPage(); err != nil {
		return err
	}
	if err := pages.NewWomen(r.nav).AddToWishlist(1); err != nil {
		return err
	}

	r.log.Info().Msg("Step 5: Checking the account dropdown wishlist entry")
	text, err := r.nav.WishlistMenuText()
	if err != nil {
		return err
	}
	if text != "My Wishlist (2 items)" {
		return fmt.Errorf("unexpected wishlist menu text %q", text)
	}
	r.log.Info().Msg("Women sorting and wishlist journey completed")
	return nil
}

// AddWishlistToCart moves every wishlist item into the cart, picking the
// first available color and size on each product detail page.
func (r *Runner) AddWishlistToCart() error {
	if err := r.nav.Open(pages.PageWishlist); err != nil {
		return err
	}

	wishlist := pages.NewWishlist(r.nav)
	remaining, err := wishlist.ItemCount()
	if err != nil {
		return err
	}

	for remaining > 0 {
		r.log.Info().Int("remaining", remaining).Msg("Moving wishlist item to cart")

		// Always edit the first row; the row disappears once carted.
		if err := wishlist.EditItem(0); err != nil {
			return err
		}

		detail := pages.NewProductDetail(r.nav)
		if err := detail.SelectFirstAvailableColor(); err != nil {
			return err
		}
		if err := detail.SelectFirstAvailableSize(); err != nil {
			return err
		}
		if err := detail.AddToCart(); err != nil {
			return err
		}

		if err := r.nav.Open(pages.PageWishlist); err != nil {
			return err
		}
		wishlist = pages.NewWishlist(r.nav)
		remaining, err = wishlist.ItemCount()
		if err != nil {
			return err
		}
	}

	r.log.Info().Msg("Wishlist emptied into the cart")
	return nil
}
