// Package gap derives the qualification decision and a ranked problem list
// from an evaluation summary. It is the gate in front of the synthesis
// pipeline: businesses scoring at or above the threshold never reach it.
package gap

import (
	"errors"
	"math"
	"sort"

	"github.com/autoweb/sitesmith/internal/domain/model"
)

// DefaultThreshold is the aggregate score below which a business qualifies
// for synthesis.
const DefaultThreshold = 70

// ErrEvaluationIncomplete is returned when no sub-score is present at all.
// The analyzer fails closed rather than guessing; the caller can retry once
// evaluation data is complete.
var ErrEvaluationIncomplete = errors.New("evaluation incomplete: no sub-scores present")

// Analysis is the analyzer's verdict for one evaluation summary.
type Analysis struct {
	Aggregate        int
	ShouldSynthesize bool
	Problems         []model.Problem
}

// Analyzer gates synthesis on evaluation quality.
type Analyzer struct {
	threshold int
}

// Option applies a configuration option to the Analyzer.
type Option func(*Analyzer)

// WithThreshold overrides the qualification threshold.
func WithThreshold(t int) Option {
	return func(a *Analyzer) {
		if t > 0 {
			a.threshold = t
		}
	}
}

// New creates an Analyzer with the default threshold.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze computes the aggregate score and qualification decision.
//
// The aggregate, when not supplied upstream, is the unweighted mean of the
// sub-scores that are present, rounded to the nearest integer. Missing
// sub-scores are excluded from the mean, never treated as zero. If all
// three are missing, ErrEvaluationIncomplete is returned.
func (a *Analyzer) Analyze(summary model.EvaluationSummary) (Analysis, error) {
	aggregate, err := a.aggregate(summary)
	if err != nil {
		return Analysis{}, err
	}

	return Analysis{
		Aggregate:        aggregate,
		ShouldSynthesize: aggregate < a.threshold,
		Problems:         RankProblems(summary.Problems),
	}, nil
}

func (a *Analyzer) aggregate(summary model.EvaluationSummary) (int, error) {
	if summary.Aggregate != nil {
		return int(math.Round(*summary.Aggregate)), nil
	}

	var sum float64
	var n int
	for _, sub := range []*float64{summary.Performance, summary.SEO, summary.Accessibility} {
		if sub != nil {
			sum += *sub
			n++
		}
	}
	if n == 0 {
		return 0, ErrEvaluationIncomplete
	}
	return int(math.Round(sum / float64(n))), nil
}

// severityRank orders critical before major before minor.
var severityRank = map[model.Severity]int{
	model.SeverityCritical: 0,
	model.SeverityMajor:    1,
	model.SeverityMinor:    2,
}

// categoryRank orders performance, seo, accessibility, other.
var categoryRank = map[model.ProblemCategory]int{
	model.ProblemPerformance:   0,
	model.ProblemSEO:           1,
	model.ProblemAccessibility: 2,
	model.ProblemOther:         3,
}

// RankProblems returns a copy of problems ordered by severity, then by
// category within the same severity. Unknown severities and categories sort
// last, preserving their relative input order.
func RankProblems(problems []model.Problem) []model.Problem {
	ranked := make([]model.Problem, len(problems))
	copy(ranked, problems)

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := rankOf(severityRank, ranked[i].Severity), rankOf(severityRank, ranked[j].Severity)
		if si != sj {
			return si < sj
		}
		return rankOf(categoryRank, ranked[i].Category) < rankOf(categoryRank, ranked[j].Category)
	})
	return ranked
}

func rankOf[K comparable](table map[K]int, k K) int {
	if r, ok := table[k]; ok {
		return r
	}
	return len(table)
}
