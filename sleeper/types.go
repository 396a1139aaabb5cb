package sleeper

import (
	"github.com/Tom-Gray/beerLeague/model"
)

// The wire types mirror the Sleeper API responses. Only the fields the
// bench pipeline needs are declared, everything else is dropped during
// decoding.

type sleeperState struct {
	Week       int    `json:"week"`
	SeasonType string `json:"season_type"`
	Season     string `json:"season"`
}

func (s *sleeperState) toState() *model.NFLState {
	return &model.NFLState{
		Week:       s.Week,
		SeasonType: s.SeasonType,
		Season:     s.Season,
	}
}

type sleeperLeague struct {
	ID           string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	TotalRosters int    `json:"total_rosters"`
}

func (l *sleeperLeague) toLeague() *model.League {
	return &model.League{
		ExternalID: l.ID,
		Name:       l.Name,
		Season:     l.Season,
		TotalTeams: l.TotalRosters,
	}
}

type sleeperUser struct {
	UserID      string        `json:"user_id"`
	DisplayName string        `json:"display_name"`
	Metadata    *userMetadata `json:"metadata"`
}

type userMetadata struct {
	TeamName string `json:"team_name"`
}

// teamName prefers the custom team name and falls back to the display
// name, matching how Sleeper's own UI labels rosters.
func (u *sleeperUser) teamName() string {
	if u.Metadata != nil && u.Metadata.TeamName != "" {
		return u.Metadata.TeamName
	}
	return u.DisplayName
}

type sleeperRoster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Reserve  []string `json:"reserve"`
}

func (r *sleeperRoster) toRoster() model.Roster {
	return model.Roster{
		RosterID: r.RosterID,
		OwnerID:  r.OwnerID,
		Reserve:  r.Reserve,
	}
}

type sleeperMatchup struct {
	RosterID      int                `json:"roster_id"`
	MatchupID     int                `json:"matchup_id"`
	Players       []string           `json:"players"`
	Starters      []string           `json:"starters"`
	PlayersPoints map[string]float64 `json:"players_points"`
}

func (m *sleeperMatchup) toEntry() model.MatchupEntry {
	return model.MatchupEntry{
		RosterID:     m.RosterID,
		MatchupID:    m.MatchupID,
		Players:      m.Players,
		Starters:     m.Starters,
		PlayerPoints: m.PlayersPoints,
	}
}

type sleeperPlayer struct {
	ID        string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	Active    bool   `json:"active"`
}

func (p *sleeperPlayer) toPlayer() model.Player {
	return model.Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      model.ParseTeam(p.Team),
		Active:    p.Active,
	}
}
