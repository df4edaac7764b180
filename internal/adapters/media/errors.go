package media

import "errors"

// Sentinel kinds for media sourcing errors.
var (
	ErrProviderUnavailable = errors.New("media provider unavailable")
	ErrNoResults           = errors.New("no media results for query")
	ErrWaitBudget          = errors.New("rate limit wait budget exceeded")
)
