package sleeper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/Tom-Gray/beerLeague/model"
	"github.com/itbasis/go-clock"
)

const SleeperURL = "https://api.sleeper.app"

const (
	defaultMaxAttempts = 3
	defaultRetryDelay  = 2 * time.Second
)

var (
	ErrLeagueNotFound = errors.New("league not found")
)

type Client interface {
	GetNFLState() (*model.NFLState, error)
	GetLeague(leagueID string) (*model.League, error)
	// GetLeagueUsers maps owner ids to display team names.
	GetLeagueUsers(leagueID string) (map[string]string, error)
	GetRosters(leagueID string) ([]model.Roster, error)
	GetMatchups(leagueID string, week int) ([]model.MatchupEntry, error)
	LoadPlayers() ([]model.Player, error)
}

type client struct {
	url         string
	httpClient  *http.Client
	clock       clock.Clock
	maxAttempts int
	retryDelay  time.Duration
}

func New(clock clock.Clock) (Client, error) {
	c := &client{
		url: SleeperURL,
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
		clock:       clock,
		maxAttempts: defaultMaxAttempts,
		retryDelay:  defaultRetryDelay,
	}
	return c, nil
}

// NewForTest returns a client pointed at url with no delay between
// retry attempts.
func NewForTest(url string) Client {
	return &client{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		clock:       clock.New(),
		maxAttempts: defaultMaxAttempts,
		retryDelay:  0,
	}
}

func (c *client) GetNFLState() (*model.NFLState, error) {
	var parsed sleeperState
	if err := c.getJSON("/v1/state/nfl", &parsed); err != nil {
		return nil, fmt.Errorf("error loading nfl state: %w", err)
	}
	return parsed.toState(), nil
}

func (c *client) GetLeague(leagueID string) (*model.League, error) {
	// Sleeper returns a 200 with "null" for unknown league ids.
	var parsed *sleeperLeague
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s", leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error loading league %s: %w", leagueID, err)
	}
	if parsed == nil {
		return nil, ErrLeagueNotFound
	}
	return parsed.toLeague(), nil
}

func (c *client) GetLeagueUsers(leagueID string) (map[string]string, error) {
	var parsed []sleeperUser
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s/users", leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error loading users for league %s: %w", leagueID, err)
	}

	names := make(map[string]string, len(parsed))
	for i := range parsed {
		names[parsed[i].UserID] = parsed[i].teamName()
	}
	return names, nil
}

func (c *client) GetRosters(leagueID string) ([]model.Roster, error) {
	var parsed []sleeperRoster
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s/rosters", leagueID), &parsed); err != nil {
		return nil, fmt.Errorf("error loading rosters for league %s: %w", leagueID, err)
	}

	rosters := make([]model.Roster, 0, len(parsed))
	for i := range parsed {
		rosters = append(rosters, parsed[i].toRoster())
	}
	return rosters, nil
}

func (c *client) GetMatchups(leagueID string, week int) ([]model.MatchupEntry, error) {
	var parsed []sleeperMatchup
	if err := c.getJSON(fmt.Sprintf("/v1/league/%s/matchups/%d", leagueID, week), &parsed); err != nil {
		return nil, fmt.Errorf("error loading week %d matchups for league %s: %w", week, leagueID, err)
	}

	entries := make([]model.MatchupEntry, 0, len(parsed))
	for i := range parsed {
		entries = append(entries, parsed[i].toEntry())
	}
	return entries, nil
}

func (c *client) LoadPlayers() ([]model.Player, error) {
	var parsed map[string]sleeperPlayer
	if err := c.getJSON("/v1/players/nfl", &parsed); err != nil {
		return nil, fmt.Errorf("error loading players: %w", err)
	}

	result := make([]model.Player, 0, len(parsed))
	for _, p := range parsed {
		if p.FirstName == "Player" && p.LastName == "Invalid" {
			continue
		}
		result = append(result, p.toPlayer())
	}
	return result, nil
}

// getJSON sends a GET request and decodes the response body, retrying
// transient failures up to maxAttempts times.
func (c *client) getJSON(path string, out any) error {
	var lastErr error
	for attempt := 1; attempt <= c.maxAttempts; attempt++ {
		if attempt > 1 {
			c.clock.Sleep(c.retryDelay)
		}

		err := c.doGet(path, out)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		lastErr = err
	}
	return fmt.Errorf("giving up after %d attempts: %w", c.maxAttempts, lastErr)
}

func (c *client) doGet(path string, out any) error {
	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s%s", c.url, path), nil)
	if err != nil {
		return fmt.Errorf("error creating http request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &transientError{err: fmt.Errorf("error sending http request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		if resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests {
			return &transientError{err: err}
		}
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("error parsing response from sleeper: %w", err)
	}
	return nil
}

type transientError struct {
	err error
}

func (e *transientError) Error() string {
	return e.err.Error()
}

func (e *transientError) Unwrap() error {
	return e.err
}

func retryable(err error) bool {
	var t *transientError
	return errors.As(err, &t)
}
