package model

import (
	"fmt"
	"strings"
)

// Player is the slice of the platform's player record used for bench
// reporting: enough to put a name, position, and NFL team next to a
// score.
type Player struct {
	ID        string
	FirstName string
	LastName  string
	Position  Position
	Team      *NFLTeam
	Active    bool
}

func (p Player) FullName() string {
	name := strings.TrimSpace(fmt.Sprintf("%s %s", p.FirstName, p.LastName))
	if name == "" {
		return fmt.Sprintf("Player_%s", p.ID)
	}
	return name
}

// PlaceholderPlayer stands in for an id that is missing from the
// player data. Upstream occasionally references players it no longer
// lists, so lookups must always produce something renderable.
func PlaceholderPlayer(id string) Player {
	return Player{
		ID:       id,
		Position: POS_UNKNOWN,
		Team:     TEAM_FA,
	}
}
