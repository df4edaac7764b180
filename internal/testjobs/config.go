package testjobs

import "time"

// Config holds configuration for the synthesis load test
type Config struct {
	BaseURL    string        // Base URL of the service
	NumJobs    int           // Number of synthesis jobs to generate
	Workers    int           // Number of concurrent workers
	Timeout    time.Duration // HTTP request timeout
	WaitFor    time.Duration // How long to wait for the pipeline before fetching artifacts
	OutputFile string        // Output file for jobs
	LogFile    string        // Log file for test output
	Verbose    bool          // Enable verbose logging
}

// Job represents a synthesis request to be submitted
type Job struct {
	RequestID  string     `json:"request_id"`
	Business   Business   `json:"business"`
	Evaluation Evaluation `json:"evaluation"`

	// ExpectQualify records whether the aggregate score is below the
	// qualification threshold; skipped jobs never produce an artifact.
	ExpectQualify bool `json:"-"`
}

// Business mirrors the business payload of the synthesis API.
type Business struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// Evaluation mirrors the evaluation payload of the synthesis API.
type Evaluation struct {
	Performance   *float64 `json:"performance,omitempty"`
	SEO           *float64 `json:"seo,omitempty"`
	Accessibility *float64 `json:"accessibility,omitempty"`
	EvaluatedAt   string   `json:"evaluated_at,omitempty"`
}

// Artifact is the subset of the persisted template artifact the verifier
// cares about.
type Artifact struct {
	ID            string    `json:"id"`
	BusinessID    string    `json:"business_id"`
	VariantNumber int       `json:"variant_number"`
	BusinessType  string    `json:"business_type"`
	Confidence    float64   `json:"confidence"`
	Structure     Structure `json:"structure"`
	Media         []Media   `json:"media"`
}

// Structure is the assembled template skeleton.
type Structure struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Section is one named block of the template.
type Section struct {
	Name string `json:"name"`
}

// Media is one sourced asset reference.
type Media struct {
	URL string `json:"url"`
}

// AckResponse represents the response from job submission
type AckResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// Stats holds test statistics
type Stats struct {
	JobsGenerated      int
	JobsSubmitted      int
	JobsAccepted       int
	JobsDuplicate      int
	JobsFailed         int
	QualifyingJobs     int
	ArtifactsRetrieved int
	ArtifactsMissing   int
	StartTime          time.Time
	EndTime            time.Time
	Duration           time.Duration
}
