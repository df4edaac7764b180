package testjobs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	return c.client.Do(req)
}

// Post performs a POST request with JSON body
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := marshalJSON(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	return c.client.Do(req)
}

// marshalJSON marshals a struct to JSON
func marshalJSON(v interface{}) ([]byte, error) {
	return json.Marshal(v)
}

// unmarshalJSON unmarshals JSON to a struct
func unmarshalJSON(data []byte, v interface{}) error {
	return json.Unmarshal(data, v)
}

// readResponseBody reads and closes the response body
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(resp.Body)
}

// submitJobs submits synthesis jobs concurrently using worker pools
func submitJobs(ctx context.Context, config *Config, jobs []Job, stats *Stats) error {
	log.Printf("Submitting %d jobs with %d workers...", len(jobs), config.Workers)

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/synthesize"

	// Counters for statistics
	var (
		accepted  int64
		duplicate int64
		failed    int64
		submitted int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	// Create worker pool
	jobChan := make(chan Job, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for job := range jobChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleJob(ctx, client, url, job)

					// Update counters
					atomic.AddInt64(&submitted, 1)
					switch result {
					case "accepted":
						atomic.AddInt64(&accepted, 1)
					case "duplicate":
						atomic.AddInt64(&duplicate, 1)
					case "failed":
						atomic.AddInt64(&failed, 1)
					}

					// Progress reporting
					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&submitted)
						acc := atomic.LoadInt64(&accepted)
						dup := atomic.LoadInt64(&duplicate)
						fail := atomic.LoadInt64(&failed)

						if config.Verbose {
							log.Printf("Progress: %d/%d submitted (accepted: %d, duplicate: %d, failed: %d)",
								total, len(jobs), acc, dup, fail)
						} else {
							fmt.Printf("\rSubmitted: %d/%d (accepted: %d, duplicate: %d, failed: %d)",
								total, len(jobs), acc, dup, fail)
						}
					}
				}
			}
		}()
	}

	// Send jobs to workers
	go func() {
		defer close(jobChan)
		for _, job := range jobs {
			select {
			case <-ctx.Done():
				return
			case jobChan <- job:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Final progress report
	if !config.Verbose {
		fmt.Println() // New line after progress indicator
	}

	// Update stats
	stats.JobsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.JobsAccepted = int(atomic.LoadInt64(&accepted))
	stats.JobsDuplicate = int(atomic.LoadInt64(&duplicate))
	stats.JobsFailed = int(atomic.LoadInt64(&failed))

	log.Printf(`Job submission completed:
   Accepted: %d
   Duplicate: %d
   Failed: %d
`, stats.JobsAccepted, stats.JobsDuplicate, stats.JobsFailed)

	return nil
}

// submitSingleJob submits a single job and returns the result
func submitSingleJob(ctx context.Context, client *HTTPClient, url string, job Job) string {
	resp, err := client.Post(ctx, url, job)
	if err != nil {
		return "failed"
	}

	// Read response body
	body, err := readResponseBody(resp)
	if err != nil {
		return "failed"
	}

	// Parse response based on status code
	switch resp.StatusCode {
	case StatusAccepted:
		// Accepted - new job
		var ack AckResponse
		if err := unmarshalJSON(body, &ack); err == nil && ack.Status == "accepted" {
			return "accepted"
		}
		return "accepted" // Assume accepted for 202 even if parsing fails
	case StatusOK:
		// OK - duplicate request
		var ack AckResponse
		if err := unmarshalJSON(body, &ack); err == nil && ack.Duplicate {
			return "duplicate"
		}
		return "duplicate" // Assume duplicate for 200 even if parsing fails
	default:
		// Error (including 429 backpressure)
		return "failed"
	}
}
