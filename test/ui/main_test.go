package ui

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/ternarybob/shopcheck/internal/httpclient"
)

// storefrontErr is set by TestMain when the demo storefront cannot be
// reached; tests then skip instead of failing on network conditions.
var storefrontErr error

// TestMain runs before all tests in the ui package. It verifies the demo
// storefront is reachable before running any UI tests.
func TestMain(m *testing.M) {
	if err := verifyStorefrontConnectivity(); err != nil {
		storefrontErr = err
		fmt.Fprintf(os.Stderr, "\n⚠ Storefront not reachable, UI tests will be skipped\n")
		fmt.Fprintf(os.Stderr, "   Note: %v\n\n", err)
	} else {
		fmt.Fprintln(os.Stderr, "✓ Storefront connectivity verified - proceeding with UI tests")
	}

	// Run all tests with cleanup guarantee
	var exitCode int
	func() {
		defer func() {
			if r := recover(); r != nil {
				fmt.Fprintf(os.Stderr, "\n⚠ PANIC during test execution: %v\n", r)
				exitCode = 1
			}
		}()
		exitCode = m.Run()
	}()

	os.Exit(exitCode)
}

// requireStorefront skips the calling test when the storefront was not
// reachable at startup.
func requireStorefront(t *testing.T) {
	t.Helper()
	if storefrontErr != nil {
		t.Skipf("Storefront not reachable: %v", storefrontErr)
	}
}

// verifyStorefrontConnectivity checks the storefront over plain HTTP and
// with a headless page load.
func verifyStorefrontConnectivity() error {
	config, err := LoadTestConfig()
	if err != nil {
		return fmt.Errorf("failed to load test config: %w", err)
	}
	baseURL := config.Storefront.BaseURL

	// Test 1: HTTP check
	client, err := httpclient.NewStorefrontClient(10 * time.Second)
	if err != nil {
		return err
	}
	if err := httpclient.Probe(client, baseURL); err != nil {
		return err
	}

	// Test 2: Home page loads in browser
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(),
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
		)...,
	)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	ctx, cancelTimeout := context.WithTimeout(browserCtx, 30*time.Second)
	defer cancelTimeout()

	var title string
	err = chromedp.Run(ctx,
		chromedp.Navigate(baseURL),
		chromedp.WaitVisible(`body`, chromedp.ByQuery),
		chromedp.Title(&title),
	)
	if err != nil {
		return fmt.Errorf("home page failed to load in browser: %w", err)
	}

	fmt.Fprintf(os.Stderr, "   Storefront URL: %s\n", baseURL)
	fmt.Fprintf(os.Stderr, "   Home Page Title: %s\n", title)

	return nil
}
