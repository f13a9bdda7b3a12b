// uitest_context_test.go - Shared UI test context and helpers.
// This provides UITestContext and helper functions used by all UI tests.
// NOTE: This contains no tests - it holds shared test infrastructure.

package ui

import (
	"context"
	"fmt"
	"testing"

	"github.com/ternarybob/shopcheck/internal/browser"
	"github.com/ternarybob/shopcheck/internal/credstore"
	"github.com/ternarybob/shopcheck/internal/flows"
	"github.com/ternarybob/shopcheck/internal/pages"
)

// UITestContext holds shared state for UI tests: one browser session, the
// storefront navigator and the flow runner, plus per-test results and logging.
type UITestContext struct {
	T       *testing.T
	Env     *TestEnvironment
	Session *browser.Session
	Nav     *pages.Navigator
	Flows   *flows.Runner
	BaseURL string

	// Internal cleanup functions
	cleanup []func()

	// Screenshot counter for sequential naming
	screenshotNum int
}

// NewUITestContext creates a new UI test context with browser and environment
func NewUITestContext(t *testing.T) *UITestContext {
	requireStorefront(t)

	env, err := SetupTestEnvironment(t.Name())
	if err != nil {
		t.Fatalf("Failed to setup test environment: %v", err)
	}

	config := env.Config

	// Timeout context for the entire test
	ctx, cancelTimeout := context.WithTimeout(context.Background(), config.TestTimeout())

	session, err := browser.NewSession(ctx, browser.Options{
		Headless:     config.Browser.Headless,
		WindowWidth:  config.Browser.WindowWidth,
		WindowHeight: config.Browser.WindowHeight,
	})
	if err != nil {
		cancelTimeout()
		env.Cleanup()
		t.Skipf("Browser not available: %v", err)
	}

	nav := pages.NewNavigator(session, config.Storefront.BaseURL, pages.TimingFromConfig(config))
	creds := credstore.New(config.Output.CredentialsFile)

	utc := &UITestContext{
		T:       t,
		Env:     env,
		Session: session,
		Nav:     nav,
		Flows:   flows.NewRunner(nav, config, creds),
		BaseURL: config.Storefront.BaseURL,
		cleanup: make([]func(), 0),
	}

	// Add cleanup functions in reverse order (LIFO)
	utc.cleanup = append(utc.cleanup, func() { env.Cleanup() })
	utc.cleanup = append(utc.cleanup, func() { cancelTimeout() })
	utc.cleanup = append(utc.cleanup, func() { session.Close() })

	return utc
}

// Cleanup releases all resources. Call this with defer.
func (utc *UITestContext) Cleanup() {
	// Write test result to log file before cleanup
	// This ensures PASS/FAIL status is captured in test.log
	if utc.T.Failed() {
		utc.Screenshot("failure")
		utc.Log("=== TEST RESULT: FAIL ===")
	} else {
		utc.Log("=== TEST RESULT: PASS ===")
	}

	// Execute cleanup functions in reverse order
	for i := len(utc.cleanup) - 1; i >= 0; i-- {
		utc.cleanup[i]()
	}
}

// Log writes a message to the test log
func (utc *UITestContext) Log(format string, args ...interface{}) {
	utc.Env.LogTest(utc.T, format, args...)
}

// Screenshot captures the viewport with a sequential number prefix.
func (utc *UITestContext) Screenshot(name string) error {
	utc.screenshotNum++
	fullName := fmt.Sprintf("%02d_%s", utc.screenshotNum, name)
	if err := utc.Session.Screenshot(utc.Env.GetScreenshotPath(fullName)); err != nil {
		utc.T.Logf("Warning: Failed to take screenshot %s: %v", fullName, err)
		return err
	}
	return nil
}

// OpenHome loads the storefront home page and handles the consent dialog.
func (utc *UITestContext) OpenHome() {
	utc.T.Helper()
	if err := utc.Flows.OpenHome(); err != nil {
		utc.Screenshot("home_failed")
		utc.T.Fatalf("Failed to open storefront home: %v", err)
	}
}
