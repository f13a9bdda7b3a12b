package pages

import (
	"github.com/ternarybob/shopcheck/internal/browser"
)

const (
	registerFirstName  = "#firstname"
	registerMiddleName = "#middlename"
	registerLastName   = "#lastname"
	registerEmail      = "#email_address"
	registerPassword   = "#password"
	registerConfirm    = "#confirmation"
	registerSubmit     = "#form-validate button[title='Register']"
)

// Account is the create-account registration page.
type Account struct {
	s   *browser.Session
	nav *Navigator
}

func NewAccount(nav *Navigator) *Account {
	return &Account{s: nav.Session(), nav: nav}
}

func (p *Account) typeField(sel, value string) error {
	return p.s.TypeSlowly(p.s.Ctx(), sel, value, p.nav.Timing().TypingDelay)
}

func (p *Account) FillFirstName(v string) error  { return p.typeField(registerFirstName, v) }
func (p *Account) FillMiddleName(v string) error { return p.typeField(registerMiddleName, v) }
func (p *Account) FillLastName(v string) error   { return p.typeField(registerLastName, v) }
func (p *Account) FillEmail(v string) error      { return p.typeField(registerEmail, v) }
func (p *Account) FillPassword(v string) error   { return p.typeField(registerPassword, v) }
func (p *Account) FillConfirmation(v string) error {
	return p.typeField(registerConfirm, v)
}

// Submit registers the account. The button sits below the fold, so it is
// scrolled into view and clicked through the DOM.
func (p *Account) Submit() error {
	if err := p.s.WaitClickable(registerSubmit, p.nav.Timing().WaitTimeout); err != nil {
		return err
	}
	if err := p.s.ScrollIntoView(registerSubmit); err != nil {
		return err
	}
	if err := browser.Pause(p.s.Ctx(), p.nav.Timing().SettleDelay); err != nil {
		return err
	}
	return p.s.ScriptClick(registerSubmit)
}
