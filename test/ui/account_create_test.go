package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ternarybob/shopcheck/internal/credstore"
	"github.com/ternarybob/shopcheck/internal/pages"
)

// TestAccountCreation registers a fresh customer account and verifies the
// storefront lands on the account page with a success message.
func TestAccountCreation(t *testing.T) {
	utc := NewUITestContext(t)
	defer utc.Cleanup()

	config := utc.Env.Config

	utc.Log("Step 1: Opening storefront home page")
	utc.OpenHome()
	utc.Screenshot("home")

	utc.Log("Step 2: Opening the registration page")
	if err := utc.Nav.OpenRegisterPage(); err != nil {
		t.Fatalf("Failed to open registration page: %v", err)
	}
	title, err := utc.Nav.Title()
	if err != nil {
		t.Fatalf("Failed to read page title: %v", err)
	}
	if title != pages.PageCreateAccount.Title() {
		t.Fatalf("Expected title %q, got %q", pages.PageCreateAccount.Title(), title)
	}
	utc.Screenshot("register_form")

	utc.Log("Step 3: Filling the registration form")
	email := fmt.Sprintf("test%d@%s", time.Now().UnixMilli(), config.Account.EmailDomain)
	account := pages.NewAccount(utc.Nav)

	if err := account.FillFirstName(config.Account.FirstName); err != nil {
		t.Fatalf("Failed to fill first name: %v", err)
	}
	if err := account.FillMiddleName(config.Account.MiddleName); err != nil {
		t.Fatalf("Failed to fill middle name: %v", err)
	}
	if err := account.FillLastName(config.Account.LastName); err != nil {
		t.Fatalf("Failed to fill last name: %v", err)
	}
	if err := account.FillEmail(email); err != nil {
		t.Fatalf("Failed to fill email: %v", err)
	}
	if err := account.FillPassword(config.Account.Password); err != nil {
		t.Fatalf("Failed to fill password: %v", err)
	}
	if err := account.FillConfirmation(config.Account.Password); err != nil {
		t.Fatalf("Failed to fill password confirmation: %v", err)
	}
	utc.Screenshot("register_filled")

	utc.Log("Step 4: Submitting the registration")
	if err := account.Submit(); err != nil {
		t.Fatalf("Failed to submit registration: %v", err)
	}
	if err := utc.Session.WaitTitleIs(pages.PageMyAccount.Title(), utc.Nav.Timing().WaitTimeout); err != nil {
		t.Fatalf("Registration did not land on the account page: %v", err)
	}
	utc.Screenshot("account_created")

	utc.Log("Step 5: Verifying the success message")
	shown, err := utc.Nav.SuccessMessageShown()
	if err != nil {
		t.Fatalf("Failed to check success message: %v", err)
	}
	if !shown {
		t.Errorf("Expected a success message after registration")
	} else {
		msg, _ := utc.Nav.SuccessMessage()
		utc.Log("Success message: %s", msg)
	}

	utc.Log("Step 6: Verifying page title and URL")
	title, err = utc.Nav.Title()
	if err != nil {
		t.Fatalf("Failed to read page title: %v", err)
	}
	if title != pages.PageMyAccount.Title() {
		t.Errorf("Expected title %q, got %q", pages.PageMyAccount.Title(), title)
	}
	location, err := utc.Nav.Location()
	if err != nil {
		t.Fatalf("Failed to read page URL: %v", err)
	}
	if !strings.Contains(location, "/customer/account/") {
		t.Errorf("Expected URL to contain /customer/account/, got %s", location)
	}

	utc.Log("Step 7: Storing credentials for later journeys")
	store := credstore.New(config.Output.CredentialsFile)
	if err := store.Save(credstore.Credentials{Email: email, Password: config.Account.Password}); err != nil {
		t.Fatalf("Failed to store credentials: %v", err)
	}
	utc.Log("✓ Account created: %s", email)

	utc.Log("Step 8: Logging out")
	if err := utc.Nav.Logout(); err != nil {
		t.Errorf("Failed to log out: %v", err)
	}
}
