package testjobs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/autoweb/sitesmith/pkg/logger"
)

// File permission constants.
const (
	directoryPermission = 0750
)

// Run executes the complete synthesis load test.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting sitesmith synthesis test",
		logger.String("baseURL", config.BaseURL),
		logger.Int("jobs", config.NumJobs),
		logger.Int("workers", config.Workers),
		logger.String("timeout", config.Timeout.String()),
		logger.String("waitFor", config.WaitFor.String()),
		logger.String("logFile", config.LogFile),
		logger.Any("verbose", config.Verbose))

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Generate jobs
	jobs, err := generateJobs(ctx, config, stats)
	if err != nil {
		return fmt.Errorf("job generation failed: %w", err)
	}

	// Step 3: Submit jobs concurrently
	if err := submitJobs(ctx, config, jobs, stats); err != nil {
		return fmt.Errorf("job submission failed: %w", err)
	}

	// Step 4: Wait for the pipeline to drain
	logger.Get().Info(ctx, "waiting for jobs to be synthesized")
	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled while waiting for synthesis: %w", ctx.Err())
	case <-time.After(config.WaitFor):
	}

	// Step 5: Retrieve artifacts concurrently
	artifacts, err := retrieveArtifacts(ctx, config, jobs, stats)
	if err != nil {
		return fmt.Errorf("artifact retrieval failed: %w", err)
	}

	// Step 6: Verify results
	if err := verifyResults(config, artifacts, stats); err != nil {
		return fmt.Errorf("result verification failed: %w", err)
	}

	// Step 7: Save jobs to file
	if err := saveJobsToFile(ctx, config, jobs); err != nil {
		logger.Get().Warn(ctx, "failed to save jobs to file", logger.Error(err))
	}

	// Final statistics
	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/healthz"

	resp, err := client.Get(ctx, url)
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Accept any 200 response as healthy (the service returns Prometheus metrics)
	if resp.StatusCode != StatusOK {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// saveJobsToFile saves the generated jobs to a JSON file.
func saveJobsToFile(ctx context.Context, config *Config, jobs []Job) error {
	if len(jobs) == 0 {
		return fmt.Errorf("no jobs to save")
	}

	// Determine output filename
	filename := config.OutputFile
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = "generated_jobs_" + timestamp + ".json"
	}

	// Ensure the directory exists
	dir := filepath.Dir(filename)
	if dir != "." {
		if err := os.MkdirAll(dir, directoryPermission); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	// Write jobs to file
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close file", logger.Error(err))
		}
	}()

	// Write JSON array
	if _, err := file.WriteString("[\n"); err != nil {
		return fmt.Errorf("failed to write opening bracket: %w", err)
	}

	for i, job := range jobs {
		jsonData, err := marshalJSON(job)
		if err != nil {
			return fmt.Errorf("failed to marshal job %d: %w", i, err)
		}

		if _, err := file.Write(jsonData); err != nil {
			return fmt.Errorf("failed to write job %d: %w", i, err)
		}

		// Add comma except for last job
		if i < len(jobs)-1 {
			if _, err := file.WriteString(","); err != nil {
				return fmt.Errorf("failed to write comma: %w", err)
			}
		}
		_, _ = file.WriteString("\n")
	}

	if _, err := file.WriteString("]\n"); err != nil {
		return fmt.Errorf("failed to write closing bracket: %w", err)
	}

	logger.Get().Info(ctx, "jobs saved to file", logger.String("filename", filename))
	return nil
}

// displayFinalStats prints the final test statistics.
func displayFinalStats(stats *Stats) {
	var acceptRate, artifactRate, jobsPerSecond float64

	if stats.JobsSubmitted > 0 {
		acceptRate = float64(stats.JobsAccepted) / float64(stats.JobsSubmitted) * PercentageMultiplier
	}

	if stats.QualifyingJobs > 0 {
		artifactRate = float64(stats.ArtifactsRetrieved) / float64(stats.QualifyingJobs) * PercentageMultiplier
	}

	if stats.Duration > 0 {
		jobsPerSecond = float64(stats.JobsSubmitted) / stats.Duration.Seconds()
	}

	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("jobsGenerated", stats.JobsGenerated),
		logger.Int("jobsSubmitted", stats.JobsSubmitted),
		logger.Int("jobsAccepted", stats.JobsAccepted),
		logger.Int("jobsDuplicate", stats.JobsDuplicate),
		logger.Int("jobsFailed", stats.JobsFailed),
		logger.Int("qualifyingJobs", stats.QualifyingJobs),
		logger.Int("artifactsRetrieved", stats.ArtifactsRetrieved),
		logger.Int("artifactsMissing", stats.ArtifactsMissing),
		logger.String("duration", stats.Duration.String()),
		logger.Float64("acceptRate", acceptRate),
		logger.Float64("artifactRate", artifactRate),
		logger.Float64("jobsPerSecond", jobsPerSecond))
}
