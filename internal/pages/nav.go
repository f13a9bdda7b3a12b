package pages

import (
	"fmt"
	"time"

	"github.com/ternarybob/shopcheck/internal/browser"
	"github.com/ternarybob/shopcheck/internal/common"
)

// Shared chrome locators: consent dialog, header account dropdown, top menu.
const (
	consentPrompt = ".privacy_prompt"
	consentOptIn  = "#privacy_pref_optin"
	consentSubmit = "#consent_prompt_submit"

	accountDropdown      = "#header > div > div.skip-links > div > a"
	accountRegisterLink  = "#header-account > div > ul > li:nth-child(5) > a"
	accountWishlistLink  = "#header-account > div > ul > li:nth-child(2) > a"
	accountLoginLink     = "#header-account a[href*='customer/account/login']"
	accountLogoutLink    = "#header-account a[href*='customer/account/logout']"
	successMessage       = "li.success-msg span"
	categoryProductsList = "div.category-products"

	womenTopMenu = "#nav li.nav-1 > a"
	womenViewAll = "#nav li.nav-1 li.view-all > a"
	menTopMenu   = "#nav li.nav-2 > a"
	menViewAll   = "#nav li.nav-2 li.view-all > a"
	saleTopMenu  = "#nav li.nav-5 > a"
	saleViewAll  = "#nav li.nav-5 li.view-all > a"
)

const (
	dropdownPreDelay = 200 * time.Millisecond
	logoutPreDelay   = 300 * time.Millisecond
	menuRevealDelay  = 500 * time.Millisecond
)

// Timing carries the delays and wait bounds the page objects use.
type Timing struct {
	WaitTimeout     time.Duration
	ConsentProbe    time.Duration
	TypingDelay     time.Duration
	SettleDelay     time.Duration
	CartUpdateDelay time.Duration
}

// TimingFromConfig maps the suite configuration onto page-object timing.
func TimingFromConfig(cfg *common.Config) Timing {
	return Timing{
		WaitTimeout:     cfg.WaitTimeout(),
		ConsentProbe:    cfg.ConsentProbeTimeout(),
		TypingDelay:     cfg.TypingDelay(),
		SettleDelay:     cfg.SettleDelay(),
		CartUpdateDelay: cfg.CartUpdateDelay(),
	}
}

// Navigator provides the capabilities every storefront page shares. Page
// objects hold one rather than embedding it.
type Navigator struct {
	s       *browser.Session
	baseURL string
	timing  Timing
}

// NewNavigator binds a navigator to a browser session and storefront base URL.
func NewNavigator(s *browser.Session, baseURL string, timing Timing) *Navigator {
	return &Navigator{s: s, baseURL: baseURL, timing: timing}
}

// Session exposes the underlying browser session.
func (n *Navigator) Session() *browser.Session {
	return n.s
}

// Timing exposes the navigator's timing settings.
func (n *Navigator) Timing() Timing {
	return n.timing
}

// Open navigates to the page and waits for its expected title.
func (n *Navigator) Open(pt PageType) error {
	if err := n.s.Navigate(pt.URL(n.baseURL)); err != nil {
		return err
	}
	if title := pt.Title(); title != "" {
		if err := n.s.WaitTitleIs(title, n.timing.WaitTimeout); err != nil {
			return err
		}
	}
	return nil
}

// TryAcceptConsent accepts the privacy dialog when it is shown. An absent
// dialog is the normal case and reports (false, nil). A dialog that stays
// visible after submit is a hard failure.
func (n *Navigator) TryAcceptConsent() (bool, error) {
	present, err := n.s.Exists(consentPrompt, n.timing.ConsentProbe)
	if err != nil {
		return false, err
	}
	if !present {
		return false, nil
	}

	if err := n.s.Click(consentOptIn); err != nil {
		return false, fmt.Errorf("failed to opt in on consent dialog: %w", err)
	}
	if err := n.s.Click(consentSubmit); err != nil {
		return false, fmt.Errorf("failed to submit consent dialog: %w", err)
	}

	gone, err := n.s.WaitInvisible(consentPrompt, n.timing.WaitTimeout)
	if err != nil {
		return false, err
	}
	if !gone {
		return false, ErrConsentNotClosed
	}
	return true, nil
}

// OpenAccountDropdown expands the header account menu. The header re-renders
// after wishlist and cart mutations, so a click that loses the race gets
// exactly one retry against a fresh lookup; a timeout is never retried.
func (n *Navigator) OpenAccountDropdown() error {
	click := func() error {
		if err := n.s.ScrollToTop(); err != nil {
			return err
		}
		if err := browser.Pause(n.s.Ctx(), n.timing.SettleDelay); err != nil {
			return err
		}
		return n.s.Click(accountDropdown)
	}

	if err := click(); err != nil {
		// A timed-out lookup is terminal; only a detached-node race earns
		// the single retry against a fresh lookup.
		if browser.IsTimeout(err) {
			return fmt.Errorf("failed to open account dropdown: %w", err)
		}
		if retryErr := click(); retryErr != nil {
			return fmt.Errorf("failed to open account dropdown after retry: %w", retryErr)
		}
	}
	return nil
}

// OpenRegisterPage opens the account dropdown, follows the register link and
// waits for the create-account page.
func (n *Navigator) OpenRegisterPage() error {
	if err := n.OpenAccountDropdown(); err != nil {
		return err
	}
	if err := n.s.Click(accountRegisterLink); err != nil {
		return fmt.Errorf("failed to follow register link: %w", err)
	}
	return n.s.WaitTitleIs(PageCreateAccount.Title(), n.timing.WaitTimeout)
}

// OpenLoginPage opens the account dropdown and follows the log-in link.
func (n *Navigator) OpenLoginPage() error {
	if err := n.OpenAccountDropdown(); err != nil {
		return err
	}
	if err := n.s.Click(accountLoginLink); err != nil {
		return fmt.Errorf("failed to follow log in link: %w", err)
	}
	return n.s.WaitVisible(loginEmailField, n.timing.WaitTimeout)
}

// Logout signs the current account out through the account dropdown.
func (n *Navigator) Logout() error {
	if err := n.s.SlowClick(n.s.Ctx(), accountDropdown, dropdownPreDelay); err != nil {
		return fmt.Errorf("failed to open account dropdown for logout: %w", err)
	}
	if err := n.s.SlowClick(n.s.Ctx(), accountLogoutLink, logoutPreDelay); err != nil {
		return fmt.Errorf("failed to click log out: %w", err)
	}
	return nil
}

// WishlistMenuText opens the account dropdown and returns the wishlist menu
// entry text, e.g. "My Wishlist (2 items)".
func (n *Navigator) WishlistMenuText() (string, error) {
	if err := n.OpenAccountDropdown(); err != nil {
		return "", err
	}
	if err := n.s.WaitVisible(accountWishlistLink, n.timing.WaitTimeout); err != nil {
		return "", err
	}
	return n.s.Text(accountWishlistLink)
}

// SuccessMessageShown reports whether a success flash message is visible.
// Absence is an ordinary false.
func (n *Navigator) SuccessMessageShown() (bool, error) {
	count, err := n.s.Count(successMessage)
	if err != nil {
		return false, err
	}
	if count == 0 {
		return false, nil
	}
	return n.s.IsDisplayed(successMessage)
}

// SuccessMessage returns the success flash message text, "" when absent.
func (n *Navigator) SuccessMessage() (string, error) {
	shown, err := n.SuccessMessageShown()
	if err != nil || !shown {
		return "", err
	}
	return n.s.Text(successMessage)
}

// Title returns the current document title.
func (n *Navigator) Title() (string, error) {
	return n.s.Title()
}

// Location returns the current document URL.
func (n *Navigator) Location() (string, error) {
	return n.s.Location()
}

// openCategory hovers a top menu entry until its flyout shows the view-all
// link, clicks it, and waits for the category listing.
func (n *Navigator) openCategory(topMenu, viewAll string) error {
	if err := n.s.Hover(topMenu, n.timing.WaitTimeout); err != nil {
		return err
	}
	if err := browser.Pause(n.s.Ctx(), menuRevealDelay); err != nil {
		return err
	}
	if err := n.s.WaitVisible(viewAll, n.timing.WaitTimeout); err != nil {
		return err
	}
	if err := n.s.Click(viewAll); err != nil {
		return fmt.Errorf("failed to click view-all link: %w", err)
	}
	return n.s.WaitVisible(categoryProductsList, n.timing.WaitTimeout)
}

// OpenAllWomenPage navigates to the full Women category listing.
func (n *Navigator) OpenAllWomenPage() error {
	return n.openCategory(womenTopMenu, womenViewAll)
}

// OpenAllMenPage navigates to the full Men category listing.
func (n *Navigator) OpenAllMenPage() error {
	return n.openCategory(menTopMenu, menViewAll)
}

// OpenAllSalePage navigates to the full Sale category listing.
func (n *Navigator) OpenAllSalePage() error {
	return n.openCategory(saleTopMenu, saleViewAll)
}
