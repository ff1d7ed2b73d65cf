package dataset

import (
	"math/rand"
	"strconv"

	"github.com/okian/sherrin/internal/domain/schedule"
)

// Reasonable ranges are two standard deviations plus/minus from the
// means for all recorded AFL matches.
const (
	minGoals   = 2
	maxGoals   = 23
	minBehinds = 3
	maxBehinds = 22

	pointsPerGoal = 6
)

// finalsRoundLabels are the round labels used for finals, in order of
// play. The first two apply to the opening week of finals.
var finalsRoundLabels = []string{"QF", "EF", "SF", "PF", "GF"}

// finalsRoundCount is how many season-ending rounds are treated as finals.
const finalsRoundCount = 4

// matchResultColumns is the column order of the match results dataset,
// matching fitzRoy's get_match_results output with snake_case keys.
var matchResultColumns = []string{
	"date",
	"game",
	"season",
	"round",
	"round_number",
	"round_type",
	"home_team",
	"home_goals",
	"home_behinds",
	"home_points",
	"away_team",
	"away_goals",
	"away_behinds",
	"away_points",
	"margin",
	"venue",
}

// MatchResults overlays random final scores on the base match schedule.
// Points are derived from goals and behinds, and margin is always
// home_points minus away_points, the way fitzRoy reports it.
func MatchResults(rng *rand.Rand, matches []schedule.Match) Frame {
	maxRounds := matchMaxRounds(matches)
	games := make(seasonGameCounter)

	rows := make([][]any, 0, len(matches))
	for _, m := range matches {
		homeGoals := randBetween(rng, minGoals, maxGoals)
		homeBehinds := randBetween(rng, minBehinds, maxBehinds)
		awayGoals := randBetween(rng, minGoals, maxGoals)
		awayBehinds := randBetween(rng, minBehinds, maxBehinds)
		homePoints := homeGoals*pointsPerGoal + homeBehinds
		awayPoints := awayGoals*pointsPerGoal + awayBehinds

		rows = append(rows, []any{
			formatDate(m.Date),
			games.next(m.Season),
			m.Season,
			"R" + strconv.Itoa(m.Round),
			m.Round,
			roundType(m.Round, maxRounds[m.Season]),
			m.HomeTeam,
			homeGoals,
			homeBehinds,
			homePoints,
			m.AwayTeam,
			awayGoals,
			awayBehinds,
			awayPoints,
			homePoints - awayPoints,
			m.Venue,
		})
	}
	return Frame{Columns: matchResultColumns, Rows: rows}
}

// roundType labels the last few rounds of a season as finals.
func roundType(round, maxRound int) string {
	if maxRound > 0 && round > maxRound-finalsRoundCount {
		return "Finals"
	}
	return "Regular"
}

func matchMaxRounds(matches []schedule.Match) map[int]int {
	seasons := make([]int, len(matches))
	rounds := make([]int, len(matches))
	for i, m := range matches {
		seasons[i] = m.Season
		rounds[i] = m.Round
	}
	return maxRoundPerSeason(seasons, rounds)
}
