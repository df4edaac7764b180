package testjobs

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"

	"github.com/autoweb/sitesmith/pkg/logger"
)

// Constants for random number generation.
const (
	randomFloatDivisor = 1000000
	scoreBandDivisor   = 8
)

// Constants for score generation bands (0-100 scale, gate threshold 70).
const (
	strugglingMin   = 20.0
	strugglingRange = 25.0
	mediocreMin     = 45.0
	mediocreRange   = 20.0
	borderlineMin   = 60.0
	borderlineRange = 9.0
	nearPassMin     = 70.0
	nearPassRange   = 8.0
	healthyMin      = 78.0
	healthyRange    = 14.0
	brokenMin       = 5.0
	brokenRange     = 20.0
	unevenLowMin    = 15.0
	unevenLowRange  = 20.0
	unevenHighMin   = 80.0
	unevenHighRange = 15.0
	wideMin         = 5.0
	wideRange       = 90.0
)

// Constants for score band cases.
const (
	caseStruggling = 0
	caseMediocre   = 1
	caseBorderline = 2
	caseNearPass   = 3
	caseHealthy    = 4
	caseBroken     = 5
	caseUneven     = 6
	caseWide       = 7
)

// businessSeed pairs a name template with the category and copy that drives
// classification.
type businessSeed struct {
	name        string
	category    string
	description string
	location    string
}

// businessSeeds covers every business type the classifier detects, so a load
// run exercises the full specialization surface.
var businessSeeds = []businessSeed{
	{"Smith & Sons Plumbing", "plumber", "24/7 emergency plumbing, licensed and insured, residential and commercial", "Springfield, IL"},
	{"Bella Cucina", "restaurant", "family-owned italian restaurant, homemade pasta and wood-fired pizza", "Portland, OR"},
	{"Harbor Law Group", "law firm", "attorneys handling litigation, tax and estate matters", "Boston, MA"},
	{"Bright Smile Dental", "dentist", "dental clinic offering orthodontic and pediatric treatment", "Austin, TX"},
	{"Velvet Touch Salon", "salon", "hair salon and spa with manicure, pedicure and facial services", "Denver, CO"},
	{"Iron Works Gym", "gym", "strength and cardio fitness with personal training and crossfit classes", "Phoenix, AZ"},
	{"Maple Street Boutique", "boutique", "clothing and apparel shop with seasonal fashion catalog", "Savannah, GA"},
	{"Lakeside Realty", "real estate", "realtor for residential homes, apartments and rental listings", "Madison, WI"},
	{"Precision Auto Care", "auto repair", "mechanic shop for oil change, brake and transmission service", "Columbus, OH"},
	{"Summit Learning Academy", "tutoring", "tutoring and certification courses with workshop-style lessons", "Raleigh, NC"},
	{"Golden Hour Studio", "photographer", "photography and branding studio for creative campaigns", "Santa Fe, NM"},
	{"The Wayfarer Inn", "hotel", "bed and breakfast lodging with vacation booking and guest amenities", "Asheville, NC"},
}

// getRandomFloat returns a random float64 between 0.0 and 1.0 using crypto/rand.
func getRandomFloat() float64 {
	n, _ := rand.Int(rand.Reader, big.NewInt(randomFloatDivisor))
	return float64(n.Int64()) / float64(randomFloatDivisor)
}

// generateJobs creates the specified number of synthesis jobs with unique
// business IDs and a varied evaluation score distribution.
func generateJobs(ctx context.Context, config *Config, stats *Stats) ([]Job, error) {
	logger.Get().Info(ctx, "generating synthesis jobs with unique business IDs", logger.Int("numJobs", config.NumJobs))

	jobs := make([]Job, config.NumJobs)

	// Pre-allocate business IDs to ensure uniqueness
	businessIDs := make([]string, config.NumJobs)
	for i := 0; i < config.NumJobs; i++ {
		businessIDs[i] = uuid.New().String()
	}

	// Generate jobs concurrently
	type jobResult struct {
		index int
		job   Job
		err   error
	}

	resultChan := make(chan jobResult, config.NumJobs)

	// Use worker pool for job generation
	workerCount := minInt(config.Workers, config.NumJobs)
	jobsPerWorker := config.NumJobs / workerCount

	for worker := 0; worker < workerCount; worker++ {
		start := worker * jobsPerWorker
		end := start + jobsPerWorker
		if worker == workerCount-1 {
			end = config.NumJobs // Last worker gets remaining jobs
		}

		go func(start, end int) {
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					resultChan <- jobResult{index: i, err: ctx.Err()}
					return
				default:
					job := generateSingleJob(i, businessIDs[i])
					resultChan <- jobResult{index: i, job: job, err: nil}
				}
			}
		}(start, end)
	}

	// Collect results
	qualifying := 0
	for i := 0; i < config.NumJobs; i++ {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("context cancelled during job generation: %w", ctx.Err())
		case result := <-resultChan:
			if result.err != nil {
				return nil, fmt.Errorf("failed to generate job %d: %w", result.index, result.err)
			}
			jobs[result.index] = result.job
			if result.job.ExpectQualify {
				qualifying++
			}
		}
	}

	stats.JobsGenerated = len(jobs)
	stats.QualifyingJobs = qualifying
	logger.Get().Info(ctx, "generated jobs successfully",
		logger.Int("count", len(jobs)),
		logger.Int("qualifying", qualifying))

	return jobs, nil
}

// generateSingleJob creates a single job with the given index and business ID.
func generateSingleJob(index int, businessID string) Job {
	seed := businessSeeds[index%len(businessSeeds)]

	perf := generateBandedScore()
	seo := generateBandedScore()
	access := generateBandedScore()

	// The gate aggregates the unweighted mean of present sub-scores.
	mean := (perf + seo + access) / 3

	return Job{
		RequestID: "req_" + businessID,
		Business: Business{
			ID:          businessID,
			Name:        seed.name,
			Category:    seed.category,
			Description: seed.description,
			Location:    seed.location,
		},
		Evaluation: Evaluation{
			Performance:   &perf,
			SEO:           &seo,
			Accessibility: &access,
			EvaluatedAt:   time.Now().UTC().Format(time.RFC3339),
		},
		ExpectQualify: mean < QualificationThreshold,
	}
}

// generateBandedScore creates a score with varied distribution across the
// qualification boundary.
func generateBandedScore() float64 {
	randNum, _ := rand.Int(rand.Reader, big.NewInt(scoreBandDivisor))
	switch randNum.Int64() {
	case caseStruggling:
		// Struggling sites (20 - 45) - most qualify
		return strugglingMin + getRandomFloat()*strugglingRange
	case caseMediocre:
		// Mediocre sites (45 - 65)
		return mediocreMin + getRandomFloat()*mediocreRange
	case caseBorderline:
		// Just below the gate (60 - 69)
		return borderlineMin + getRandomFloat()*borderlineRange
	case caseNearPass:
		// Just above the gate (70 - 78)
		return nearPassMin + getRandomFloat()*nearPassRange
	case caseHealthy:
		// Healthy sites (78 - 92) - skipped
		return healthyMin + getRandomFloat()*healthyRange
	case caseBroken:
		// Badly broken sites (5 - 25)
		return brokenMin + getRandomFloat()*brokenRange
	case caseUneven:
		// Uneven profile: alternate low and high bands
		if getRandomFloat() < 0.5 {
			return unevenLowMin + getRandomFloat()*unevenLowRange
		}
		return unevenHighMin + getRandomFloat()*unevenHighRange
	case caseWide:
		// Random across full range (5 - 95)
		return wideMin + getRandomFloat()*wideRange
	default:
		return wideMin + getRandomFloat()*wideRange
	}
}

// minInt returns the minimum of two integers.
func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
