package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/autoweb/sitesmith/internal/testjobs"
)

// Default configuration constants.
const (
	defaultNumJobs     = 1000
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultTimeout     = 30 * time.Second
	defaultWaitFor     = 30 * time.Second
	defaultTestTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL    = flag.String("url", "http://localhost:8080", "Base URL of the service")
		numJobs    = flag.Int("jobs", defaultNumJobs, "Number of synthesis jobs to generate and submit")
		workers    = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout    = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		waitFor    = flag.Duration("wait", defaultWaitFor, "How long to wait for synthesis before fetching artifacts")
		outputFile = flag.String("output", "", "Output file for generated jobs (default: generated_jobs_TIMESTAMP.json)")
		logFile    = flag.String("log", "", "Log file for test output (default: test_log_TIMESTAMP.log)")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		help       = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		testjobs.ShowHelp()
		return
	}

	// Setup logging
	if err := testjobs.SetupLogging(*logFile); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		return
	}

	// Create context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	// Create test configuration
	config := &testjobs.Config{
		BaseURL:    *baseURL,
		NumJobs:    *numJobs,
		Workers:    *workers,
		Timeout:    *timeout,
		WaitFor:    *waitFor,
		OutputFile: *outputFile,
		LogFile:    *logFile,
		Verbose:    *verbose,
	}

	// Run the test
	if err := testjobs.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Test failed: " + err.Error() + "\n")
		return
	}
}
