package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shopcheck.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, "https://ecommerce.tealiumdemo.com", config.Storefront.BaseURL)
	assert.True(t, config.Browser.Headless)
	assert.Equal(t, 1920, config.Browser.WindowWidth)
	assert.Equal(t, 1080, config.Browser.WindowHeight)
	assert.Equal(t, "Test", config.Account.FirstName)
	assert.Equal(t, "mail.com", config.Account.EmailDomain)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[storefront]
base_url = "https://staging.example.com"

[browser]
headless = false
window_width = 1280
window_height = 720

[timing]
wait_timeout_seconds = 12
typing_delay_millis = 50
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://staging.example.com", config.Storefront.BaseURL)
	assert.False(t, config.Browser.Headless)
	assert.Equal(t, 1280, config.Browser.WindowWidth)
	assert.Equal(t, 720, config.Browser.WindowHeight)
	assert.Equal(t, 12*time.Second, config.WaitTimeout())
	assert.Equal(t, 50*time.Millisecond, config.TypingDelay())

	// Sections absent from the file keep their defaults.
	assert.Equal(t, "Password123!", config.Account.Password)
	assert.Equal(t, 2000, config.Timing.CartUpdateDelayMillis)
}

func TestLoadConfigRejectsInvalidURL(t *testing.T) {
	path := writeConfig(t, `
[storefront]
base_url = "not a url"
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}

func TestLoadConfigRejectsMalformedTOML(t *testing.T) {
	path := writeConfig(t, `[storefront`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDurationHelpers(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, 5*time.Second, config.WaitTimeout())
	assert.Equal(t, 3*time.Second, config.ConsentProbeTimeout())
	assert.Equal(t, 5*time.Minute, config.TestTimeout())
	assert.Equal(t, 75*time.Millisecond, config.TypingDelay())
	assert.Equal(t, 300*time.Millisecond, config.SettleDelay())
	assert.Equal(t, 2*time.Second, config.CartUpdateDelay())
}
