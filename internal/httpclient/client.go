// Package httpclient builds the HTTP clients used to probe the storefront
// outside the browser.
package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// NewDefaultHTTPClient creates a simple HTTP client with a timeout.
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
	}
}

// NewStorefrontClient creates an HTTP client with a cookie jar so probe
// requests carry the storefront session cookie across redirects.
func NewStorefrontClient(timeout time.Duration) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}
	return &http.Client{
		Jar:     jar,
		Timeout: timeout,
	}, nil
}

// Probe issues a GET against the URL and reports whether the storefront
// answered with a non-5xx status.
func Probe(client *http.Client, url string) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("storefront not accessible at %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("storefront returned status %d", resp.StatusCode)
	}
	return nil
}

// WaitReachable polls the URL until it answers or the deadline passes.
func WaitReachable(ctx context.Context, url string, deadline time.Duration) error {
	client := NewDefaultHTTPClient(5 * time.Second)

	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	var lastErr error
	for {
		if lastErr = Probe(client, url); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("storefront not reachable within %s: %w", deadline, lastErr)
		case <-time.After(time.Second):
		}
	}
}
