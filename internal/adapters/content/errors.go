package content

import "errors"

// Sentinel kinds for content enhancement errors.
var (
	ErrEmptyResponse        = errors.New("model returned empty response")
	ErrMalformedResponse    = errors.New("model response is not valid content JSON")
	ErrGeneratorUnavailable = errors.New("no content generator configured")
)
