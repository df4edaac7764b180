package repository

import "errors"

// Sentinel kinds for artifact store errors.
var (
	ErrNotFound  = errors.New("no artifacts for business")
	ErrMissingID = errors.New("artifact has no business id")
)
