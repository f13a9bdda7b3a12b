package common

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
)

// Config represents the suite configuration loaded from shopcheck.toml
type Config struct {
	Storefront StorefrontConfig `toml:"storefront" validate:"required"`
	Browser    BrowserConfig    `toml:"browser"`
	Timing     TimingConfig     `toml:"timing"`
	Account    AccountConfig    `toml:"account"`
	Output     OutputConfig     `toml:"output"`
	Logging    LoggingConfig    `toml:"logging"`
}

type StorefrontConfig struct {
	BaseURL string `toml:"base_url" validate:"required,url"`
}

type BrowserConfig struct {
	Headless     bool `toml:"headless"`
	WindowWidth  int  `toml:"window_width" validate:"gte=0"`
	WindowHeight int  `toml:"window_height" validate:"gte=0"`
}

type TimingConfig struct {
	WaitTimeoutSeconds    int `toml:"wait_timeout_seconds" validate:"gte=0"`
	ConsentProbeSeconds   int `toml:"consent_probe_seconds" validate:"gte=0"`
	TestTimeoutMinutes    int `toml:"test_timeout_minutes" validate:"gte=0"`
	TypingDelayMillis     int `toml:"typing_delay_millis" validate:"gte=0"`
	SettleDelayMillis     int `toml:"settle_delay_millis" validate:"gte=0"`
	CartUpdateDelayMillis int `toml:"cart_update_delay_millis" validate:"gte=0"`
}

type AccountConfig struct {
	FirstName   string `toml:"first_name"`
	MiddleName  string `toml:"middle_name"`
	LastName    string `toml:"last_name"`
	Password    string `toml:"password"`
	EmailDomain string `toml:"email_domain"`
}

type OutputConfig struct {
	ResultsBaseDir  string `toml:"results_base_dir"`
	CredentialsFile string `toml:"credentials_file"`
}

type LoggingConfig struct {
	Level  string   `toml:"level"`
	Output []string `toml:"output"`
}

// LoadConfig loads and validates the configuration from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := validator.New().Struct(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// DefaultConfig returns a configuration with working defaults for the demo storefront.
func DefaultConfig() *Config {
	return &Config{
		Storefront: StorefrontConfig{
			BaseURL: "https://ecommerce.tealiumdemo.com",
		},
		Browser: BrowserConfig{
			Headless:     true,
			WindowWidth:  1920,
			WindowHeight: 1080,
		},
		Timing: TimingConfig{
			WaitTimeoutSeconds:    5,
			ConsentProbeSeconds:   3,
			TestTimeoutMinutes:    5,
			TypingDelayMillis:     75,
			SettleDelayMillis:     300,
			CartUpdateDelayMillis: 2000,
		},
		Account: AccountConfig{
			FirstName:   "Test",
			MiddleName:  "Selenium",
			LastName:    "Automation",
			Password:    "Password123!",
			EmailDomain: "mail.com",
		},
		Output: OutputConfig{
			ResultsBaseDir:  "test/results",
			CredentialsFile: "test/results/last-account.txt",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Output: []string{"stdout"},
		},
	}
}

// WaitTimeout returns the bound for element and title condition waits.
func (c *Config) WaitTimeout() time.Duration {
	return time.Duration(c.Timing.WaitTimeoutSeconds) * time.Second
}

// ConsentProbeTimeout returns the bound for the consent dialog presence probe.
func (c *Config) ConsentProbeTimeout() time.Duration {
	return time.Duration(c.Timing.ConsentProbeSeconds) * time.Second
}

// TestTimeout returns the overall per-test budget.
func (c *Config) TestTimeout() time.Duration {
	return time.Duration(c.Timing.TestTimeoutMinutes) * time.Minute
}

// TypingDelay returns the inter-character delay for slow typing.
func (c *Config) TypingDelay() time.Duration {
	return time.Duration(c.Timing.TypingDelayMillis) * time.Millisecond
}

// SettleDelay returns the pause used after scroll and animation triggering actions.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.Timing.SettleDelayMillis) * time.Millisecond
}

// CartUpdateDelay returns the pause used after cart update and delete round-trips.
func (c *Config) CartUpdateDelay() time.Duration {
	return time.Duration(c.Timing.CartUpdateDelayMillis) * time.Millisecond
}
