package model

// League is the Sleeper league metadata needed for reporting.
type League struct {
	ExternalID string
	Name       string
	Season     string
	TotalTeams int
}

// Roster is a team's season-level roster record. Reserve holds the IR
// slot player ids; those are excluded from bench identification.
type Roster struct {
	RosterID int
	OwnerID  string
	Reserve  []string
}

// MatchupEntry is one roster's side of a week's matchup data as
// reported by the platform: the full player list, the declared
// starters, and the points every rostered player scored that week.
// Entries sharing a MatchupID form a head-to-head pairing.
type MatchupEntry struct {
	RosterID     int
	MatchupID    int
	Players      []string
	Starters     []string
	PlayerPoints map[string]float64
}

// NFLState is the slice of the platform's global state we care about.
type NFLState struct {
	Week       int
	SeasonType string
	Season     string
}
