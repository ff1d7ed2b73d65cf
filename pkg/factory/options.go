package factory

import "github.com/okian/sherrin/internal/domain/schedule"

// Option applies a configuration option to the Factory.
type Option func(*Factory)

// WithSeasonCount generates the given number of seasons starting from a
// randomly chosen year for which AFL data exists. Zero yields empty
// datasets; negative counts are rejected by New.
func WithSeasonCount(count int) Option {
	return func(f *Factory) {
		f.seasonCount = count
		f.seasonRange = nil
	}
}

// WithSeasonRange generates the half-open season range [start, end),
// following the same convention as a year-by-year loop. The range must
// stay within [1897, current year].
func WithSeasonRange(start, end int) Option {
	return func(f *Factory) {
		f.seasonRange = &schedule.Range{Start: start, End: end}
	}
}

// WithSeed fixes the random seed, making every dataset reproducible.
func WithSeed(seed int64) Option {
	return func(f *Factory) {
		f.seed = seed
	}
}
