package validate

// Outcome is a terminal state of the validation and repair loop.
type Outcome string

const (
	Accepted             Outcome = "accepted"
	AcceptedWithWarnings Outcome = "accepted_with_warnings"
	FailedFatal          Outcome = "failed_fatal"
)

// MaxRepairAttempts bounds the repair loop. One pass: re-run the failed
// concern's producing component, re-validate once, then settle.
const MaxRepairAttempts = 1

// Loop tracks repair attempts toward a terminal outcome. It is a small
// explicit state machine rather than ad hoc flags so the bound is visible
// and testable.
type Loop struct {
	attempts int
}

// CanRepair reports whether the loop has repair budget left.
func (l *Loop) CanRepair() bool {
	return l.attempts < MaxRepairAttempts
}

// RecordAttempt consumes one repair attempt.
func (l *Loop) RecordAttempt() {
	l.attempts++
}

// Attempts returns how many repair passes have run.
func (l *Loop) Attempts() int { return l.attempts }

// Settle maps a final report to the terminal outcome. Fatality is decided
// upstream (assembly with zero sections never reaches validation), so a
// non-empty report here always means accept-with-warnings.
func (l *Loop) Settle(empty bool) Outcome {
	if empty {
		return Accepted
	}
	return AcceptedWithWarnings
}
