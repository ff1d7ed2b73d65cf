// Package league holds the fixed enumerations of AFL teams and venues
// used by the schedule generator.
package league

import "math/rand"

// NonBrisbaneTeams lists every team that can appear in any round.
var NonBrisbaneTeams = []string{
	"Richmond",
	"Carlton",
	"Melbourne",
	"Greater Western Sydney",
	"Essendon",
	"Sydney",
	"Collingwood",
	"North Melbourne",
	"Western Bulldogs",
	"Fremantle",
	"Port Adelaide",
	"St Kilda",
	"Hawthorn",
	"Adelaide",
	"Gold Coast",
	"Geelong",
	"West Coast",
	"Fitzroy",
	"University",
}

// BrisbaneTeams are mutually exclusive within a round. Depending on how
// team names are normalised downstream, both variants in the same round
// can collapse into a duplicate team, which is invalid.
var BrisbaneTeams = []string{
	"Brisbane Bears",
	"Brisbane Lions",
}

// Venues lists the ground names used by AFL Tables and Footywire.
var Venues = []string{
	// AFL Tables venues
	"Football Park",
	"S.C.G.",
	"Windy Hill",
	"Subiaco",
	"Moorabbin Oval",
	"M.C.G.",
	"Kardinia Park",
	"Victoria Park",
	"Waverley Park",
	"Princes Park",
	"Western Oval",
	"W.A.C.A.",
	"Carrara",
	"Gabba",
	"Docklands",
	"York Park",
	"Manuka Oval",
	"Sydney Showground",
	"Adelaide Oval",
	"Bellerive Oval",
	"Marrara Oval",
	"Traeger Park",
	"Perth Stadium",
	"Stadium Australia",
	"Wellington",
	"Lake Oval",
	"East Melbourne",
	"Corio Oval",
	"Junction Oval",
	"Brunswick St",
	"Punt Rd",
	"Glenferrie Oval",
	"Arden St",
	"Olympic Park",
	"Yarraville Oval",
	"Toorak Park",
	"Euroa",
	"Coburg Oval",
	"Brisbane Exhibition",
	"North Hobart",
	"Bruce Stadium",
	"Yallourn",
	"Cazaly's Stadium",
	"Eureka Stadium",
	"Blacktown",
	"Jiangwan Stadium",
	"Albury",
	"Riverway Stadium",
	// Footywire venues
	"AAMI Stadium",
	"ANZ Stadium",
	"UTAS Stadium",
	"Blacktown International",
	"Blundstone Arena",
	"Domain Stadium",
	"Etihad Stadium",
	"GMHBA Stadium",
	"MCG",
	"Mars Stadium",
	"Metricon Stadium",
	"Optus Stadium",
	"SCG",
	"Spotless Stadium",
	"TIO Stadium",
	"Westpac Stadium",
	"Marvel Stadium",
	"Canberra Oval",
	// Correct spelling is 'Traeger', but footywire.com spells it
	// 'Traegar' in its fixtures.
	"TIO Traegar Park",
}

// TeamsPerRound is the number of teams taking the field each round:
// every non-Brisbane team plus exactly one Brisbane variant.
const TeamsPerRound = 20

// MatchesPerRound is the number of matches each round.
const MatchesPerRound = TeamsPerRound / 2

// RoundTeams returns a shuffled team list for a single round: all
// non-Brisbane teams plus one randomly chosen Brisbane variant. Pairing
// consecutive entries therefore never repeats a team and never fields
// both Brisbane variants in the same round.
func RoundTeams(rng *rand.Rand) []string {
	teams := make([]string, 0, TeamsPerRound)
	teams = append(teams, NonBrisbaneTeams...)
	teams = append(teams, BrisbaneTeams[rng.Intn(len(BrisbaneTeams))])
	rng.Shuffle(len(teams), func(i, j int) {
		teams[i], teams[j] = teams[j], teams[i]
	})
	return teams
}

// RoundVenues returns a shuffled copy of the venue list. Drawing venues
// in order assigns each round's matches distinct grounds.
func RoundVenues(rng *rand.Rand) []string {
	venues := make([]string, len(Venues))
	copy(venues, Venues)
	rng.Shuffle(len(venues), func(i, j int) {
		venues[i], venues[j] = venues[j], venues[i]
	})
	return venues
}
