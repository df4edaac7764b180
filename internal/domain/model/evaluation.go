package model

import "time"

// ProblemCategory classifies an evaluation problem by the audit that found it.
type ProblemCategory string

const (
	ProblemPerformance   ProblemCategory = "performance"
	ProblemSEO           ProblemCategory = "seo"
	ProblemAccessibility ProblemCategory = "accessibility"
	ProblemOther         ProblemCategory = "other"
)

// Severity orders problems within an evaluation.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityMajor    Severity = "major"
	SeverityMinor    Severity = "minor"
)

// Problem is a single issue surfaced by the external evaluator.
type Problem struct {
	Category    ProblemCategory
	Severity    Severity
	Description string
}

// EvaluationSummary is the read-only evaluation snapshot produced by the
// external evaluator. Sub-scores are 0-100; a nil pointer means the audit
// did not run, which is distinct from a zero score. Summaries are immutable
// once stored; re-evaluation creates a new one.
type EvaluationSummary struct {
	BusinessID    string
	Performance   *float64
	SEO           *float64
	Accessibility *float64
	Aggregate     *float64
	Problems      []Problem
	EvaluatedAt   time.Time
}

// Score is a convenience constructor for optional sub-scores.
func Score(v float64) *float64 { return &v }
