package dataset

import (
	"math/rand"
	"sort"
	"strconv"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/okian/sherrin/internal/domain/schedule"
)

// PlayersPerTeam is the match-day squad size.
const PlayersPerTeam = 22

// quarterCount is the number of quarters in a match.
const quarterCount = 4

// Uses minimum attendance, because standard deviation was too large.
const (
	minAttendance = 1071
	maxAttendance = 61120
)

// The following are ranges for per-player, per-match stats since 1965.
const (
	maxKicks                  = 21
	maxMarks                  = 10
	maxHandballs              = 14
	maxPlayerGoals            = 4
	maxPlayerBehinds          = 3
	maxHitOuts                = 12
	maxTackles                = 6
	maxRebounds               = 5
	maxInside50s              = 6
	maxClearances             = 5
	maxClangers               = 5
	maxFreesFor               = 5
	maxFreesAgainst           = 5
	maxBrownlowVotes          = 4
	maxContestedPossessions   = 11
	maxUncontestedPossessions = 17
	maxContestedMarks         = 3
	maxMarksInside50          = 3
	maxOnePercenters          = 5
	maxBounces                = 3
	maxGoalAssists            = 2
	maxTimeOnGround           = 116
	maxSubstitute             = 3
	maxJumperNumber           = 100
	maxGroupID                = 1000
	umpiresPerMatch           = 4
)

// playerColumns is the column order of the players dataset, matching
// fitzRoy's get_afltables_stats output with snake_case keys.
var playerColumns = []string{
	"season",
	"round",
	"date",
	"local_start_time",
	"venue",
	"attendance",
	"home_team",
	"hq1g", "hq1b", "hq2g", "hq2b", "hq3g", "hq3b", "hq4g", "hq4b",
	"home_score",
	"away_team",
	"aq1g", "aq1b", "aq2g", "aq2b", "aq3g", "aq3b", "aq4g", "aq4b",
	"away_score",
	"first_name",
	"surname",
	"id",
	"jumper_no",
	"playing_for",
	"kicks",
	"marks",
	"handballs",
	"goals",
	"behinds",
	"hit_outs",
	"tackles",
	"rebounds",
	"inside_50s",
	"clearances",
	"clangers",
	"frees_for",
	"frees_against",
	"brownlow_votes",
	"contested_possessions",
	"uncontested_possessions",
	"contested_marks",
	"marks_inside_50",
	"one_percenters",
	"bounces",
	"goal_assists",
	"time_on_ground",
	"substitute",
	"umpire_1",
	"umpire_2",
	"umpire_3",
	"umpire_4",
	"group_id",
}

// teamQuarters holds quarter-by-quarter scoring for one side. The final
// score is derived from the quarter values, so they always sum up.
type teamQuarters struct {
	goals   [quarterCount]int
	behinds [quarterCount]int
}

func newTeamQuarters(rng *rand.Rand) teamQuarters {
	var q teamQuarters
	for i := 0; i < quarterCount; i++ {
		q.goals[i] = randBetween(rng, minGoals, maxGoals) / quarterCount
		q.behinds[i] = randBetween(rng, minBehinds, maxBehinds) / quarterCount
	}
	return q
}

func (q teamQuarters) score() int {
	var goals, behinds int
	for i := 0; i < quarterCount; i++ {
		goals += q.goals[i]
		behinds += q.behinds[i]
	}
	return goals*pointsPerGoal + behinds
}

// Players expands each match into one row per participating player:
// match-level columns (attendance, quarter scores, umpires) joined with
// randomized per-player stats for 22 players a side.
func Players(rng *rand.Rand, faker *gofakeit.Faker, matches []schedule.Match) Frame {
	maxRounds := matchMaxRounds(matches)
	labels := playerRoundLabels(rng, maxRounds)

	rows := make([][]any, 0, len(matches)*PlayersPerTeam*2)
	for matchIdx, m := range matches {
		home := newTeamQuarters(rng)
		away := newTeamQuarters(rng)

		matchCells := []any{
			m.Season,
			labels.label(m.Season, m.Round),
			formatDate(m.Date),
			m.Date.Hour()*100 + m.Date.Minute(),
			m.Venue,
			randBetween(rng, minAttendance, maxAttendance),
			m.HomeTeam,
			home.goals[0], home.behinds[0], home.goals[1], home.behinds[1],
			home.goals[2], home.behinds[2], home.goals[3], home.behinds[3],
			home.score(),
			m.AwayTeam,
			away.goals[0], away.behinds[0], away.goals[1], away.behinds[1],
			away.goals[2], away.behinds[2], away.goals[3], away.behinds[3],
			away.score(),
		}

		umpireCells := make([]any, 0, umpiresPerMatch+1)
		for i := 0; i < umpiresPerMatch; i++ {
			umpireCells = append(umpireCells, faker.Name())
		}
		umpireCells = append(umpireCells, rng.Intn(maxGroupID))

		for side, team := range []string{m.HomeTeam, m.AwayTeam} {
			for p := 0; p < PlayersPerTeam; p++ {
				playerID := matchIdx*PlayersPerTeam*2 + side*PlayersPerTeam + p
				row := make([]any, 0, len(playerColumns))
				row = append(row, matchCells...)
				row = append(row, playerCells(rng, faker, playerID, team)...)
				row = append(row, umpireCells...)
				rows = append(rows, row)
			}
		}
	}
	return Frame{Columns: playerColumns, Rows: rows}
}

// playerCells builds the per-player stat columns. Player goal totals are
// not reconciled against team quarter totals; no point over-complicating
// the calculations until a consumer needs it.
func playerCells(rng *rand.Rand, faker *gofakeit.Faker, playerID int, team string) []any {
	return []any{
		faker.FirstName(),
		faker.LastName(),
		playerID,
		rng.Intn(maxJumperNumber),
		team,
		rng.Intn(maxKicks),
		rng.Intn(maxMarks),
		rng.Intn(maxHandballs),
		rng.Intn(maxPlayerGoals),
		rng.Intn(maxPlayerBehinds),
		rng.Intn(maxHitOuts),
		rng.Intn(maxTackles),
		rng.Intn(maxRebounds),
		rng.Intn(maxInside50s),
		rng.Intn(maxClearances),
		rng.Intn(maxClangers),
		rng.Intn(maxFreesFor),
		rng.Intn(maxFreesAgainst),
		rng.Intn(maxBrownlowVotes),
		rng.Intn(maxContestedPossessions),
		rng.Intn(maxUncontestedPossessions),
		rng.Intn(maxContestedMarks),
		rng.Intn(maxMarksInside50),
		rng.Intn(maxOnePercenters),
		rng.Intn(maxBounces),
		rng.Intn(maxGoalAssists),
		rng.Intn(maxTimeOnGround),
		rng.Intn(maxSubstitute),
	}
}

// roundLabels resolves player-data round labels per season. Finals
// rounds use QF/EF/SF/PF/GF; QF and EF share the opening finals week,
// so the first finals round picks one of the two at random.
type roundLabels struct {
	finals map[int]map[int]string
}

func playerRoundLabels(rng *rand.Rand, maxRounds map[int]int) roundLabels {
	// Seasons are drawn in sorted order so the rng stream stays stable
	// across calls; map iteration order would shuffle the draws.
	seasons := make([]int, 0, len(maxRounds))
	for season := range maxRounds {
		seasons = append(seasons, season)
	}
	sort.Ints(seasons)

	finals := make(map[int]map[int]string, len(maxRounds))
	for _, season := range seasons {
		maxRound := maxRounds[season]
		seasonLabels := make(map[int]string, finalsRoundCount)
		for i := 0; i < finalsRoundCount; i++ {
			round := maxRound - finalsRoundCount + 1 + i
			if i == 0 {
				seasonLabels[round] = finalsRoundLabels[rng.Intn(2)]
			} else {
				seasonLabels[round] = finalsRoundLabels[i+1]
			}
		}
		finals[season] = seasonLabels
	}
	return roundLabels{finals: finals}
}

func (r roundLabels) label(season, round int) string {
	if label, ok := r.finals[season][round]; ok {
		return label
	}
	return strconv.Itoa(round)
}
