package testjobs

import (
	"context"
	"fmt"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// retrieveArtifacts fetches the latest artifact for every qualifying business
// concurrently.
func retrieveArtifacts(ctx context.Context, config *Config, jobs []Job, stats *Stats) ([]Artifact, error) {
	// Skipped jobs never produce an artifact; only poll qualifying ones.
	var businessIDs []string
	for _, job := range jobs {
		if job.ExpectQualify {
			businessIDs = append(businessIDs, job.Business.ID)
		}
	}

	log.Printf("Retrieving artifacts for %d qualifying businesses with %d workers...", len(businessIDs), config.Workers)

	client := newHTTPClient(config.Timeout)

	// Results storage
	artifacts := make([]Artifact, len(businessIDs))
	var (
		retrieved int64
		missing   int64
		failed    int64
	)

	// Progress reporting
	var lastReport time.Time
	reportInterval := 1 * time.Second

	// Create worker pool
	indexChan := make(chan int, config.Workers*WorkerChannelMultiplier)
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for index := range indexChan {
				select {
				case <-ctx.Done():
					return
				default:
					businessID := businessIDs[index]
					artifact, found, err := retrieveLatestArtifact(ctx, client, config.BaseURL, businessID)

					switch {
					case err != nil:
						atomic.AddInt64(&failed, 1)
						if config.Verbose {
							log.Printf("Failed to get artifact for %s: %v", businessID, err)
						}
					case !found:
						atomic.AddInt64(&missing, 1)
					default:
						artifacts[index] = artifact
						atomic.AddInt64(&retrieved, 1)
					}

					// Progress reporting
					if time.Since(lastReport) >= reportInterval {
						lastReport = time.Now()
						total := atomic.LoadInt64(&retrieved) + atomic.LoadInt64(&missing) + atomic.LoadInt64(&failed)
						log.Printf("Artifacts: %d/%d checked (found: %d, missing: %d, failed: %d)",
							total, len(businessIDs),
							atomic.LoadInt64(&retrieved),
							atomic.LoadInt64(&missing),
							atomic.LoadInt64(&failed))
					}
				}
			}
		}()
	}

	// Send business indices to workers
	go func() {
		defer close(indexChan)
		for i := range businessIDs {
			select {
			case <-ctx.Done():
				return
			case indexChan <- i:
			}
		}
	}()

	// Wait for all workers to complete
	wg.Wait()

	// Filter out empty entries (missing or failed retrievals)
	validArtifacts := make([]Artifact, 0, len(artifacts))
	for _, artifact := range artifacts {
		if artifact.BusinessID != "" {
			validArtifacts = append(validArtifacts, artifact)
		}
	}

	// Update stats
	stats.ArtifactsRetrieved = len(validArtifacts)
	stats.ArtifactsMissing = int(atomic.LoadInt64(&missing) + atomic.LoadInt64(&failed))

	log.Printf(`Artifact retrieval completed:
   Retrieved: %d
   Missing: %d
   Failed: %d
`, len(validArtifacts), int(atomic.LoadInt64(&missing)), int(atomic.LoadInt64(&failed)))

	return validArtifacts, nil
}

// retrieveLatestArtifact retrieves the latest artifact for a single business.
// A 404 means the pipeline has not persisted one; that is reported as not
// found rather than an error.
func retrieveLatestArtifact(ctx context.Context, client *HTTPClient, baseURL, businessID string) (Artifact, bool, error) {
	url := fmt.Sprintf("%s/artifacts/%s/latest", baseURL, businessID)

	resp, err := client.Get(ctx, url)
	if err != nil {
		return Artifact{}, false, fmt.Errorf("request failed: %w", err)
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return Artifact{}, false, fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case StatusOK:
		var artifact Artifact
		if err := unmarshalJSON(body, &artifact); err != nil {
			return Artifact{}, false, fmt.Errorf("failed to parse response: %w", err)
		}
		return artifact, true, nil
	case StatusNotFound:
		return Artifact{}, false, nil
	default:
		return Artifact{}, false, fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))
	}
}
