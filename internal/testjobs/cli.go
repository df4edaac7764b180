package testjobs

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/autoweb/sitesmith/pkg/logger"
)

// File permission constants.
const (
	logFilePermission = 0600
)

// SetupLogging configures logging to both console and file.
// If logFile is empty, a timestamped filename is generated.
func SetupLogging(logFile string) error {
	// Initialize the logger first
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if logFile == "" {
		timestamp := time.Now().Format("20060102_150405")
		logFile = "test_log_" + timestamp + ".log"
	}

	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	multiWriter := io.MultiWriter(os.Stdout, file)
	log.SetOutput(multiWriter)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	logger.Get().Info(context.Background(), "logging to file", logger.String("logFile", logFile))
	return nil
}

// ShowHelp prints usage information for the test jobs tool.
func ShowHelp() {
	os.Stdout.WriteString(`SiteSmith Synthesis Test Tool
=============================

A concurrent tool for load testing the SiteSmith template synthesis pipeline.

Usage:
  go run cmd/test-jobs/main.go [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8080")
  -jobs int
        Number of synthesis jobs to generate and submit (default 1000)
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -wait duration
        How long to wait for synthesis before fetching artifacts (default 30s)
  -output string
        Output file for generated jobs (default: generated_jobs_TIMESTAMP.json)
  -log string
        Log file for test output (default: test_log_TIMESTAMP.log)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Test with default settings
  go run cmd/test-jobs/main.go

  # Test with custom parameters
  go run cmd/test-jobs/main.go -jobs 5000 -workers 16 -url http://localhost:9090

  # Test with verbose output
  go run cmd/test-jobs/main.go -verbose -jobs 1000

  # Test with custom log file
  go run cmd/test-jobs/main.go -jobs 5000 -log my_test.log
`)
}
