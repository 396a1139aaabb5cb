package mocksleeper

import (
	"github.com/Tom-Gray/beerLeague/model"
	"github.com/stretchr/testify/mock"
)

type Client struct {
	mock.Mock
}

func (c *Client) GetNFLState() (*model.NFLState, error) {
	args := c.Called()

	var res *model.NFLState
	if args.Get(0) != nil {
		res = args.Get(0).(*model.NFLState)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeague(leagueID string) (*model.League, error) {
	args := c.Called(leagueID)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}

	return res, args.Error(1)
}

func (c *Client) GetLeagueUsers(leagueID string) (map[string]string, error) {
	args := c.Called(leagueID)

	var res map[string]string
	if args.Get(0) != nil {
		res = args.Get(0).(map[string]string)
	}

	return res, args.Error(1)
}

func (c *Client) GetRosters(leagueID string) ([]model.Roster, error) {
	args := c.Called(leagueID)

	var res []model.Roster
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Roster)
	}

	return res, args.Error(1)
}

func (c *Client) GetMatchups(leagueID string, week int) ([]model.MatchupEntry, error) {
	args := c.Called(leagueID, week)

	var res []model.MatchupEntry
	if args.Get(0) != nil {
		res = args.Get(0).([]model.MatchupEntry)
	}

	return res, args.Error(1)
}

func (c *Client) LoadPlayers() ([]model.Player, error) {
	args := c.Called()

	var res []model.Player
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Player)
	}

	return res, args.Error(1)
}
