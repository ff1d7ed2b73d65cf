// Package schedule generates randomized AFL match schedules that
// respect the competition's calendar and team-uniqueness constraints.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Generator with defaults.
package schedule

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/okian/sherrin/internal/domain/league"
)

// Historical calendar bounds.
const (
	// FirstSeason is the first year for which AFL data exists.
	FirstSeason = 1897

	// Seasons have typically started in mid-to-late March since the 70s.
	seasonStartMonth = time.March
	seasonStartDay   = 15

	// Seasons typically end somewhere between mid September and mid
	// October, so we split the difference.
	seasonEndMonth = time.September
	seasonEndDay   = 30

	// About as early and as late as matches ever start.
	minMatchHour = 12
	maxMatchHour = 20

	daysPerWeek    = 7
	minutesPerHour = 60
	secondsPerMin  = 60
)

// Match is a single scheduled game before any results exist.
type Match struct {
	Date     time.Time
	Season   int
	Round    int
	HomeTeam string
	AwayTeam string
	Venue    string
}

// Range is a half-open range of seasons [Start, End).
type Range struct {
	Start int
	End   int
}

// Len returns the number of seasons in the range.
func (r Range) Len() int {
	if r.End < r.Start {
		return 0
	}
	return r.End - r.Start
}

// Seasons returns the season years in ascending order.
func (r Range) Seasons() []int {
	seasons := make([]int, 0, r.Len())
	for year := r.Start; year < r.End; year++ {
		seasons = append(seasons, year)
	}
	return seasons
}

// NewRange validates and builds an explicit season range. Start must not
// exceed End, and every season must fall within [FirstSeason, current
// year]. An empty range (Start == End) is valid and yields no matches.
func NewRange(start, end int) (Range, error) {
	currentYear := time.Now().Year()

	switch {
	case start > end:
		return Range{}, fmt.Errorf("%w: start season %d is after end season %d", ErrInvalidSeasons, start, end)
	case start < FirstSeason:
		return Range{}, fmt.Errorf("%w: start season %d predates %d", ErrInvalidSeasons, start, FirstSeason)
	case end > currentYear+1:
		return Range{}, fmt.Errorf("%w: end season %d is beyond current year %d", ErrInvalidSeasons, end-1, currentYear)
	}
	return Range{Start: start, End: end}, nil
}

// RandomRange builds a range of the given length starting from a
// randomly chosen season for which data exists. A zero count yields an
// empty range; a negative count is rejected.
func RandomRange(rng *rand.Rand, count int) (Range, error) {
	if count < 0 {
		return Range{}, fmt.Errorf("%w: season count %d is negative", ErrInvalidSeasons, count)
	}
	if count == 0 {
		return Range{}, nil
	}

	currentYear := time.Now().Year()
	maxStart := currentYear - count + 1
	if maxStart < FirstSeason {
		return Range{}, fmt.Errorf("%w: season count %d exceeds available history", ErrInvalidSeasons, count)
	}

	start := FirstSeason + rng.Intn(maxStart-FirstSeason+1)
	return Range{Start: start, End: start + count}, nil
}

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithRand sets the random source, making generation reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(g *Generator) {
		if rng != nil {
			g.rng = rng
		}
	}
}

// WithSeed seeds a fresh random source for the generator.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // deterministic fixtures, not crypto
	}
}

// Generator produces constraint-respecting match schedules.
type Generator struct {
	rng     *rand.Rand
	teamsFn func(*rand.Rand) []string
	venueFn func(*rand.Rand) []string
}

// New creates a Generator using provided options.
func New(opts ...Option) *Generator {
	g := &Generator{
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())), //nolint:gosec // fixtures, not crypto
		teamsFn: league.RoundTeams,
		venueFn: league.RoundVenues,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Matches generates the full ordered match set covering every round of
// every season in the range.
func (g *Generator) Matches(r Range) []Match {
	var matches []Match
	for _, season := range r.Seasons() {
		matches = append(matches, g.Season(season)...)
	}
	return matches
}

// Season generates all rounds for a single season. Rounds occupy
// consecutive weeks starting from the first Wednesday on or after the
// season opening date, so every match falls within the season's window.
func (g *Generator) Season(season int) []Match {
	start := seasonStart(season)
	end := time.Date(season, seasonEndMonth, seasonEndDay, 0, 0, 0, 0, time.UTC)
	weekCount := int(end.Sub(start).Hours()) / 24 / daysPerWeek

	matches := make([]Match, 0, weekCount*league.MatchesPerRound)
	for week := 0; week < weekCount; week++ {
		roundStart := start.AddDate(0, 0, week*daysPerWeek)
		matches = append(matches, g.round(season, week+1, roundStart)...)
	}
	return matches
}

// round pairs off a shuffled team list into matches and assigns each a
// distinct venue and a random date-time inside the round's week. Shuffle
// pairing satisfies the per-round constraints by construction, so no
// rejection/retry loop is needed.
func (g *Generator) round(season, roundNumber int, roundStart time.Time) []Match {
	teams := g.teamsFn(g.rng)
	venues := g.venueFn(g.rng)

	matchCount := len(teams) / 2
	matches := make([]Match, 0, matchCount)
	for i := 0; i < matchCount; i++ {
		matches = append(matches, Match{
			Date:     g.matchDateTime(roundStart),
			Season:   season,
			Round:    roundNumber,
			HomeTeam: teams[i*2],
			AwayTeam: teams[i*2+1],
			Venue:    venues[i],
		})
	}
	return matches
}

// matchDateTime picks a random day within the round's 7-day window and a
// realistic start time in [12:00, 20:00).
func (g *Generator) matchDateTime(roundStart time.Time) time.Time {
	day := g.rng.Intn(daysPerWeek)
	hour := minMatchHour + g.rng.Intn(maxMatchHour-minMatchHour)
	minute := g.rng.Intn(minutesPerHour)
	second := g.rng.Intn(secondsPerMin)

	date := roundStart.AddDate(0, 0, day)
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, second, 0, time.UTC)
}

// seasonStart returns the first Wednesday on or after the season opening
// date. Rounds typically run Thursday to Sunday but can range from
// Wednesday to Tuesday.
func seasonStart(season int) time.Time {
	opening := time.Date(season, seasonStartMonth, seasonStartDay, 0, 0, 0, 0, time.UTC)
	offset := (int(time.Wednesday) - int(opening.Weekday()) + daysPerWeek) % daysPerWeek
	return opening.AddDate(0, 0, offset)
}
