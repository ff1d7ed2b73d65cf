package dataset

import (
	"math"
	"math/rand"

	"github.com/okian/sherrin/internal/domain/schedule"
)

// Reasonable ranges are two standard deviations plus/minus from the
// means for all recorded AFL matches.
const (
	minScore = 23
	maxScore = 148

	minLineOdds = 0
	maxLineOdds = 89

	// Roughly the payout when win odds are even.
	baselineBetPayout = 1.92
	// Hand-wavy math to get vaguely realistic win odds.
	winOddsMultiplier = 0.8
)

// bettingOddsColumns is the column order of the betting odds dataset,
// matching fitzRoy's get_footywire_betting_odds output with snake_case
// keys.
var bettingOddsColumns = []string{
	"date",
	"season",
	"round",
	"home_team",
	"away_team",
	"home_score",
	"away_score",
	"home_margin",
	"away_margin",
	"home_win_odds",
	"away_win_odds",
	"home_win_paid",
	"away_win_paid",
	"home_line_odds",
	"away_line_odds",
	"home_line_paid",
	"away_line_paid",
	"venue",
}

// BettingOdds overlays random scores and betting markets on the base
// match schedule. Win odds are anchored at the even-money payout and
// skewed toward whichever side carries positive line odds, so win
// probabilities loosely track the handicap. Payout fields are zero
// unless the side actually won.
func BettingOdds(rng *rand.Rand, matches []schedule.Match) Frame {
	rows := make([][]any, 0, len(matches))
	for _, m := range matches {
		homeScore := randBetween(rng, minScore, maxScore)
		awayScore := randBetween(rng, minScore, maxScore)

		homeLineOdds := randBetween(rng, minLineOdds, maxLineOdds)
		winOddsDiff := roundCents(rng.Float64() * winOddsMultiplier)
		if homeLineOdds <= 0 {
			winOddsDiff = -winOddsDiff
		}
		homeWinOdds := roundCents(baselineBetPayout + winOddsDiff)
		awayWinOdds := roundCents(baselineBetPayout - winOddsDiff)

		homeWon := homeScore > awayScore
		awayWon := awayScore > homeScore

		rows = append(rows, []any{
			formatDateTime(m.Date),
			m.Season,
			m.Round,
			m.HomeTeam,
			m.AwayTeam,
			homeScore,
			awayScore,
			homeScore - awayScore,
			awayScore - homeScore,
			homeWinOdds,
			awayWinOdds,
			paidIf(homeWon, homeWinOdds),
			paidIf(awayWon, awayWinOdds),
			homeLineOdds,
			-homeLineOdds,
			paidIf(homeWon, baselineBetPayout),
			paidIf(awayWon, baselineBetPayout),
			m.Venue,
		})
	}
	return Frame{Columns: bettingOddsColumns, Rows: rows}
}

// paidIf returns the payout when the side won, otherwise zero.
func paidIf(won bool, odds float64) float64 {
	if won {
		return odds
	}
	return 0.0
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
