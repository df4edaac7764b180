package metrics

import (
	"errors"
)

// Sentinel kinds for metrics errors. Callers match with errors.Is.
var (
	ErrObserveFailed = errors.New("metrics observe failed")
)
