package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ternarybob/shopcheck/internal/common"
)

// TestEnvironment holds the per-test results directory and log.
type TestEnvironment struct {
	Config     *common.Config
	ResultsDir string
	TestLog    *os.File
}

// LoadTestConfig loads the suite configuration from config.toml. The
// STOREFRONT_URL environment variable, set by the test runner, overrides the
// configured storefront.
func LoadTestConfig() (*common.Config, error) {
	config, err := common.LoadConfig(filepath.Join(".", "config.toml"))
	if err != nil {
		return nil, err
	}
	if url := os.Getenv("STOREFRONT_URL"); url != "" {
		config.Storefront.BaseURL = url
	}
	return config, nil
}

// SetupTestEnvironment prepares a results directory and test log for one test.
func SetupTestEnvironment(testName string) (*TestEnvironment, error) {
	config, err := LoadTestConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load test config: %w", err)
	}

	// Create test-specific results directory: {test-name}-{datetime}
	var resultsDir string
	if envDir := os.Getenv("TEST_RESULTS_DIR"); envDir != "" {
		resultsDir = filepath.Join(envDir, testName)
	} else {
		timestamp := time.Now().Format("20060102-150405")
		resultsDir = filepath.Join(config.Output.ResultsBaseDir, fmt.Sprintf("%s-%s", testName, timestamp))
	}
	if err := os.MkdirAll(resultsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create results directory: %w", err)
	}

	// Create test output log file
	testLogPath := filepath.Join(resultsDir, "test.log")
	testLogFile, err := os.Create(testLogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create test log file: %w", err)
	}

	return &TestEnvironment{
		Config:     config,
		ResultsDir: resultsDir,
		TestLog:    testLogFile,
	}, nil
}

// Cleanup closes the environment's resources.
func (env *TestEnvironment) Cleanup() {
	if env.TestLog != nil {
		env.TestLog.Close()
	}
}

// GetScreenshotPath returns the path for saving a screenshot
func (env *TestEnvironment) GetScreenshotPath(name string) string {
	return filepath.Join(env.ResultsDir, fmt.Sprintf("%s.png", name))
}

// LogTest writes a message to both the test log file and the test output (via t.Log)
func (env *TestEnvironment) LogTest(t *testing.T, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	timestamp := time.Now().Format("15:04:05")
	logMsg := fmt.Sprintf("[%s] %s\n", timestamp, msg)

	// Write to test log file
	if env.TestLog != nil {
		env.TestLog.WriteString(logMsg)
	}

	// Also log to test output (appears in console and go test output)
	t.Log(msg)
}
