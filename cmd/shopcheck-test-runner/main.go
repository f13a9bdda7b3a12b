package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/ternarybob/shopcheck/internal/common"
	"github.com/ternarybob/shopcheck/internal/httpclient"
)

type TestSuite struct {
	Name    string
	Path    string
	Command []string
}

type TestResult struct {
	Suite    string
	Success  bool
	Output   string
	Duration time.Duration
}

type TestRunnerConfig struct {
	TestRunner struct {
		TestsDir  string `toml:"tests_dir"`
		OutputDir string `toml:"output_dir"`
	} `toml:"test_runner"`
	Storefront struct {
		BaseURL               string `toml:"base_url"`
		StartupTimeoutSeconds int    `toml:"startup_timeout_seconds"`
	} `toml:"storefront"`
}

// loadConfig loads the test runner configuration
func loadConfig() (*TestRunnerConfig, error) {
	// Get the directory of the executable
	exePath, err := os.Executable()
	if err != nil {
		return nil, fmt.Errorf("failed to get executable path: %w", err)
	}
	exeDir := filepath.Dir(exePath)

	// Look for config file in executable directory first
	configPath := filepath.Join(exeDir, "shopcheck-test-runner.toml")

	// If not found, try current directory
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configPath = "shopcheck-test-runner.toml"
	}

	var config TestRunnerConfig
	if data, err := os.ReadFile(configPath); err == nil {
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Set defaults if not specified
	if config.TestRunner.TestsDir == "" {
		config.TestRunner.TestsDir = "./test"
	}
	if config.TestRunner.OutputDir == "" {
		config.TestRunner.OutputDir = "./test/results"
	}
	if config.Storefront.BaseURL == "" {
		config.Storefront.BaseURL = "https://ecommerce.tealiumdemo.com"
	}
	if config.Storefront.StartupTimeoutSeconds == 0 {
		config.Storefront.StartupTimeoutSeconds = 15
	}

	return &config, nil
}

func main() {
	common.InstallCrashHandler("./test/results/logs")
	defer common.RecoverWithCrashFile()

	common.PrintBanner(common.LoadVersionFromFile())

	fmt.Println("==============================================")
	fmt.Println("Shopcheck Test Runner")
	fmt.Println("==============================================")
	fmt.Println()

	// Load configuration
	config, err := loadConfig()
	if err != nil {
		fmt.Printf("ERROR: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Configuration:\n")
	fmt.Printf("  Tests Directory: %s\n", config.TestRunner.TestsDir)
	fmt.Printf("  Output Directory: %s\n", config.TestRunner.OutputDir)
	fmt.Printf("  Storefront: %s\n\n", config.Storefront.BaseURL)

	// Step 1: Verify the storefront is reachable
	fmt.Println("STEP 1: Verifying storefront connectivity...")
	fmt.Println(strings.Repeat("-", 80))
	timeout := time.Duration(config.Storefront.StartupTimeoutSeconds) * time.Second
	if err := httpclient.WaitReachable(context.Background(), config.Storefront.BaseURL, timeout); err != nil {
		fmt.Printf("ERROR: Storefront not reachable: %v\n", err)
		fmt.Println("UI tests need the demo storefront; aborting.")
		os.Exit(1)
	}
	fmt.Printf("✓ Storefront reachable on %s\n\n", config.Storefront.BaseURL)

	// Step 2: Run tests
	fmt.Println("STEP 2: Running tests...")
	fmt.Println(strings.Repeat("-", 80))

	uiTestPath := filepath.ToSlash(filepath.Join(config.TestRunner.TestsDir, "ui"))

	suites := []TestSuite{
		{
			Name:    "Unit Tests",
			Path:    "./internal/...",
			Command: []string{"go", "test", "-v", "./internal/..."},
		},
		{
			Name:    "UI Tests",
			Path:    uiTestPath,
			Command: []string{"go", "test", "-v", "-timeout", "30m", "./" + uiTestPath},
		},
	}

	fmt.Printf("Test results will be saved to: %s/{testname}-{datetime}/\n", config.TestRunner.OutputDir)
	fmt.Printf("UI tests will include screenshots for each journey\n\n")

	results := make([]TestResult, 0, len(suites))
	allPassed := true

	for _, suite := range suites {
		fmt.Printf("Running %s...\n", suite.Name)
		fmt.Println(strings.Repeat("-", 80))

		result := runTestSuite(suite, config.TestRunner.OutputDir, config.Storefront.BaseURL)
		results = append(results, result)

		if result.Success {
			fmt.Printf("✓ %s PASSED (%.2fs)\n\n", suite.Name, result.Duration.Seconds())
		} else {
			fmt.Printf("✗ %s FAILED (%.2fs)\n\n", suite.Name, result.Duration.Seconds())
			allPassed = false
		}
	}

	// Print summary
	printSummary(results, allPassed)

	// Exit with appropriate code
	if !allPassed {
		os.Exit(1)
	}
}

func runTestSuite(suite TestSuite, outputDir string, storefrontURL string) TestResult {
	startTime := time.Now()
	timestamp := time.Now().Format("2006-01-02_15-04-05")

	// Create results directory structure: {output_dir}/{testname}-{datetime}/
	suiteDir := filepath.Join(outputDir, fmt.Sprintf("%s-%s", sanitizeFilename(suite.Name), timestamp))
	if err := os.MkdirAll(suiteDir, 0755); err != nil {
		fmt.Printf("ERROR: Failed to create suite directory: %v\n", err)
	}

	// Convert to absolute path for environment variable
	absSuiteDir, err := filepath.Abs(suiteDir)
	if err != nil {
		fmt.Printf("ERROR: Failed to resolve absolute path: %v\n", err)
		absSuiteDir = suiteDir
	}

	// Create screenshots subdirectory for UI tests
	if strings.Contains(strings.ToLower(suite.Name), "ui") {
		screenshotDir := filepath.Join(absSuiteDir, "screenshots")
		if err := os.MkdirAll(screenshotDir, 0755); err != nil {
			fmt.Printf("ERROR: Failed to create screenshots directory: %v\n", err)
		}
	}

	// Run the test command with environment variables
	cmd := exec.Command(suite.Command[0], suite.Command[1:]...)
	cmd.Dir = "."

	// Pass environment variables to test process with ABSOLUTE paths
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("TEST_RESULTS_DIR=%s", absSuiteDir),
		fmt.Sprintf("STOREFRONT_URL=%s", storefrontURL),
	)

	output, err := cmd.CombinedOutput()
	duration := time.Since(startTime)

	// Save output to test.log in the suite directory
	outputFile := filepath.Join(suiteDir, "test.log")
	os.WriteFile(outputFile, output, 0644)

	// Determine success
	success := err == nil

	return TestResult{
		Suite:    suite.Name,
		Success:  success,
		Output:   string(output),
		Duration: duration,
	}
}

func printSummary(results []TestResult, allPassed bool) {
	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("TEST SUMMARY")
	fmt.Println(strings.Repeat("=", 80))

	totalDuration := time.Duration(0)
	passed := 0
	failed := 0

	for _, result := range results {
		status := "PASS"
		if !result.Success {
			status = "FAIL"
			failed++
		} else {
			passed++
		}

		fmt.Printf("%-30s %s (%.2fs)\n", result.Suite, status, result.Duration.Seconds())
		totalDuration += result.Duration
	}

	fmt.Println(strings.Repeat("-", 80))
	fmt.Printf("Total: %d passed, %d failed (%.2fs)\n", passed, failed, totalDuration.Seconds())

	if allPassed {
		fmt.Println("\n✓ ALL TESTS PASSED")
	} else {
		fmt.Println("\n✗ SOME TESTS FAILED")
	}
}

func sanitizeFilename(name string) string {
	// Replace spaces and special characters with underscores
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "_",
		"\\", "_",
		":", "_",
	)
	return strings.ToLower(replacer.Replace(name))
}
