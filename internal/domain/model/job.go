package model

import "time"

// SynthesisJob is one unit of work flowing from the API to the workers:
// a business, its evaluation, and the request identity used for dedupe.
type SynthesisJob struct {
	RequestID   string            `json:"request_id"`
	Business    BusinessProfile   `json:"business"`
	Evaluation  EvaluationSummary `json:"evaluation"`
	SubmittedAt time.Time         `json:"submitted_at"`
}
