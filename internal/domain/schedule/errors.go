package schedule

import "errors"

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	// ErrInvalidSeasons is returned when a season range or count falls
	// outside the historical bounds of the competition.
	ErrInvalidSeasons = errors.New("invalid seasons")
)
