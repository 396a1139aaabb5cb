package model

import (
	"fmt"
	"strings"
)

// NFLTeam is a real NFL franchise. Sleeper reports team abbreviations
// in a few different spellings (JAX vs JAC, WSH vs WAS), so parsing is
// alias-aware and unknown or empty values resolve to the free-agent
// pseudo team.
type NFLTeam struct {
	abbr    string
	loc     string
	mascot  string
	aliases []string
}

func (t *NFLTeam) String() string {
	return t.abbr
}

func (t *NFLTeam) Friendly() string {
	if t.loc == "" {
		return t.abbr
	}
	return fmt.Sprintf("%s %s", t.loc, t.mascot)
}

func (t *NFLTeam) Equals(o *NFLTeam) bool {
	if o == nil {
		return false
	}
	return t == o || t.abbr == o.abbr
}

var (
	TEAM_FA = &NFLTeam{abbr: "FA", aliases: []string{"FA*"}}

	// NFC
	TEAM_ARI = &NFLTeam{abbr: "ARI", loc: "Arizona", mascot: "Cardinals"}
	TEAM_ATL = &NFLTeam{abbr: "ATL", loc: "Atlanta", mascot: "Falcons"}
	TEAM_CAR = &NFLTeam{abbr: "CAR", loc: "Carolina", mascot: "Panthers"}
	TEAM_CHI = &NFLTeam{abbr: "CHI", loc: "Chicago", mascot: "Bears"}
	TEAM_DAL = &NFLTeam{abbr: "DAL", loc: "Dallas", mascot: "Cowboys"}
	TEAM_DET = &NFLTeam{abbr: "DET", loc: "Detroit", mascot: "Lions"}
	TEAM_GB  = &NFLTeam{abbr: "GB", loc: "Green Bay", mascot: "Packers", aliases: []string{"GBP"}}
	TEAM_LAR = &NFLTeam{abbr: "LAR", loc: "Los Angeles", mascot: "Rams"}
	TEAM_MIN = &NFLTeam{abbr: "MIN", loc: "Minnesota", mascot: "Vikings"}
	TEAM_NO  = &NFLTeam{abbr: "NO", loc: "New Orleans", mascot: "Saints", aliases: []string{"NOS"}}
	TEAM_NYG = &NFLTeam{abbr: "NYG", loc: "New York", mascot: "Giants"}
	TEAM_PHI = &NFLTeam{abbr: "PHI", loc: "Philadelphia", mascot: "Eagles"}
	TEAM_SF  = &NFLTeam{abbr: "SF", loc: "San Francisco", mascot: "49ers", aliases: []string{"SFO"}}
	TEAM_SEA = &NFLTeam{abbr: "SEA", loc: "Seattle", mascot: "Seahawks"}
	TEAM_TB  = &NFLTeam{abbr: "TB", loc: "Tampa Bay", mascot: "Buccaneers", aliases: []string{"TBB"}}
	TEAM_WAS = &NFLTeam{abbr: "WAS", loc: "Washington", mascot: "Commanders", aliases: []string{"WSH"}}

	// AFC
	TEAM_BAL = &NFLTeam{abbr: "BAL", loc: "Baltimore", mascot: "Ravens"}
	TEAM_BUF = &NFLTeam{abbr: "BUF", loc: "Buffalo", mascot: "Bills"}
	TEAM_CIN = &NFLTeam{abbr: "CIN", loc: "Cincinnati", mascot: "Bengals"}
	TEAM_CLE = &NFLTeam{abbr: "CLE", loc: "Cleveland", mascot: "Browns"}
	TEAM_DEN = &NFLTeam{abbr: "DEN", loc: "Denver", mascot: "Broncos"}
	TEAM_HOU = &NFLTeam{abbr: "HOU", loc: "Houston", mascot: "Texans"}
	TEAM_IND = &NFLTeam{abbr: "IND", loc: "Indianapolis", mascot: "Colts"}
	TEAM_JAX = &NFLTeam{abbr: "JAX", loc: "Jacksonville", mascot: "Jaguars", aliases: []string{"JAC"}}
	TEAM_KC  = &NFLTeam{abbr: "KC", loc: "Kansas City", mascot: "Chiefs", aliases: []string{"KCC"}}
	TEAM_LV  = &NFLTeam{abbr: "LV", loc: "Las Vegas", mascot: "Raiders", aliases: []string{"LVR", "OAK"}}
	TEAM_LAC = &NFLTeam{abbr: "LAC", loc: "Los Angeles", mascot: "Chargers"}
	TEAM_MIA = &NFLTeam{abbr: "MIA", loc: "Miami", mascot: "Dolphins"}
	TEAM_NE  = &NFLTeam{abbr: "NE", loc: "New England", mascot: "Patriots", aliases: []string{"NEP"}}
	TEAM_NYJ = &NFLTeam{abbr: "NYJ", loc: "New York", mascot: "Jets"}
	TEAM_PIT = &NFLTeam{abbr: "PIT", loc: "Pittsburgh", mascot: "Steelers"}
	TEAM_TEN = &NFLTeam{abbr: "TEN", loc: "Tennessee", mascot: "Titans"}

	teamMap = buildTeamMap()
)

// ParseTeam resolves an abbreviation or alias to an NFLTeam. Unknown
// values, including the empty string Sleeper uses for free agents,
// return TEAM_FA.
func ParseTeam(name string) *NFLTeam {
	t := teamMap[strings.ToLower(strings.TrimSpace(name))]
	if t == nil {
		return TEAM_FA
	}
	return t
}

func buildTeamMap() map[string]*NFLTeam {
	teams := []*NFLTeam{
		// NFC
		TEAM_ARI, TEAM_ATL, TEAM_CAR, TEAM_CHI, TEAM_DAL, TEAM_DET, TEAM_GB, TEAM_LAR,
		TEAM_MIN, TEAM_NO, TEAM_NYG, TEAM_PHI, TEAM_SF, TEAM_SEA, TEAM_TB, TEAM_WAS,
		// AFC
		TEAM_BAL, TEAM_BUF, TEAM_CIN, TEAM_CLE, TEAM_DEN, TEAM_HOU, TEAM_IND, TEAM_JAX,
		TEAM_KC, TEAM_LV, TEAM_LAC, TEAM_MIA, TEAM_NE, TEAM_NYJ, TEAM_PIT, TEAM_TEN,
	}

	m := make(map[string]*NFLTeam)
	for _, t := range teams {
		m[strings.ToLower(t.abbr)] = t
		for _, a := range t.aliases {
			m[strings.ToLower(a)] = t
		}
	}
	return m
}
