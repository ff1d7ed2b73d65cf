package api

import "errors"

// Sentinel kinds for API errors.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrSpanExceeded = errors.New("season span exceeded")
)
