package dataset

import (
	"github.com/okian/sherrin/internal/domain/schedule"
)

// fixtureColumns is the column order of the fixtures dataset, matching
// fitzRoy's get_fixture output with snake_case keys.
var fixtureColumns = []string{
	"date",
	"season",
	"season_game",
	"round",
	"home_team",
	"away_team",
	"venue",
}

// Fixtures converts the base match schedule to fixture rows. The only
// derived field is season_game, a 0-based per-season match counter.
func Fixtures(matches []schedule.Match) Frame {
	games := make(seasonGameCounter)
	rows := make([][]any, 0, len(matches))
	for _, m := range matches {
		rows = append(rows, []any{
			formatDateTime(m.Date),
			m.Season,
			games.next(m.Season),
			m.Round,
			m.HomeTeam,
			m.AwayTeam,
			m.Venue,
		})
	}
	return Frame{Columns: fixtureColumns, Rows: rows}
}
