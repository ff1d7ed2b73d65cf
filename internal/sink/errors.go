package sink

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrUnknownFormat = errors.New("unknown output format")
	ErrShape         = errors.New("unsupported dataset shape")
	ErrWrite         = errors.New("write failed")
)
