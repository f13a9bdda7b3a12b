package pages

import (
	"time"

	"github.com/ternarybob/shopcheck/internal/browser"
)

const (
	loginEmailField    = "#email"
	loginPasswordField = "#pass"
	loginSubmitButton  = "#send2"

	// Header welcome banner, top right corner
	welcomeMessage = "body > div.wrapper > div > div.header-language-background > div > p"
)

const loginSubmitPreDelay = 200 * time.Millisecond

// Login is the customer sign-in page.
type Login struct {
	s   *browser.Session
	nav *Navigator
}

func NewLogin(nav *Navigator) *Login {
	return &Login{s: nav.Session(), nav: nav}
}

// FillEmail types the email address with a human typing cadence.
func (p *Login) FillEmail(email string) error {
	return p.s.TypeSlowly(p.s.Ctx(), loginEmailField, email, p.nav.Timing().TypingDelay)
}

// FillPassword types the password with a human typing cadence.
func (p *Login) FillPassword(password string) error {
	return p.s.TypeSlowly(p.s.Ctx(), loginPasswordField, password, p.nav.Timing().TypingDelay)
}

// SubmitLogin clicks the sign-in button.
func (p *Login) SubmitLogin() error {
	return p.s.SlowClick(p.s.Ctx(), loginSubmitButton, loginSubmitPreDelay)
}

// WelcomeText returns the header welcome banner text, "" when the banner is
// not rendered.
func (p *Login) WelcomeText() (string, error) {
	count, err := p.s.Count(welcomeMessage)
	if err != nil {
		return "", err
	}
	if count == 0 {
		return "", nil
	}
	return p.s.Text(welcomeMessage)
}
