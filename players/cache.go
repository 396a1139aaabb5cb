// Package players resolves player ids to player records. The full
// Sleeper player dump is around 5MB, so it is snapshotted to disk and
// refetched at most once per day.
package players

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"sync"
	"time"

	"github.com/Tom-Gray/beerLeague/model"
	"github.com/Tom-Gray/beerLeague/sleeper"
	"github.com/itbasis/go-clock"
)

const cacheTTL = 24 * time.Hour

type Cache struct {
	mu      sync.RWMutex
	players map[string]model.Player
	fetched time.Time

	path    string
	sleeper sleeper.Client
	clock   clock.Clock
}

// NewCache returns an empty cache backed by the snapshot file at path.
// Call Load before the first Lookup.
func NewCache(sleeper sleeper.Client, path string, clock clock.Clock) *Cache {
	return &Cache{
		players: make(map[string]model.Player),
		path:    path,
		sleeper: sleeper,
		clock:   clock,
	}
}

// Load populates the cache from the snapshot file when it is fresh
// enough, and falls back to a full refresh when the snapshot is
// missing, unreadable, or older than the TTL.
func (c *Cache) Load() error {
	snap, err := readSnapshot(c.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("ignoring unreadable player snapshot %s: %v", c.path, err)
		}
		return c.Refresh()
	}

	if c.clock.Now().Sub(snap.FetchedAt) > cacheTTL {
		return c.Refresh()
	}

	players := make(map[string]model.Player, len(snap.Players))
	for _, p := range snap.Players {
		players[p.ID] = p.toPlayer()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.players = players
	c.fetched = snap.FetchedAt
	return nil
}

// Refresh downloads the full player list and rewrites the snapshot.
func (c *Cache) Refresh() error {
	loaded, err := c.sleeper.LoadPlayers()
	if err != nil {
		return fmt.Errorf("error refreshing player cache: %w", err)
	}

	now := c.clock.Now()
	players := make(map[string]model.Player, len(loaded))
	for _, p := range loaded {
		players[p.ID] = p
	}

	if err := writeSnapshot(c.path, now, loaded); err != nil {
		// The in-memory data is still good, keep going.
		log.Printf("error writing player snapshot %s: %v", c.path, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.players = players
	c.fetched = now
	return nil
}

// Lookup resolves a player id. Unknown ids resolve to a placeholder
// rather than an error since scoring must proceed even when Sleeper no
// longer lists a player.
func (c *Cache) Lookup(id string) model.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if p, found := c.players[id]; found {
		return p
	}
	return model.PlaceholderPlayer(id)
}

// Stale reports whether the cached data is older than the TTL.
func (c *Cache) Stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clock.Now().Sub(c.fetched) > cacheTTL
}

func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.players)
}

// The snapshot stores positions and teams as their abbreviations so
// the file stays diffable and reparses through the model parsers.
type snapshot struct {
	FetchedAt time.Time        `json:"fetched_at"`
	Players   []snapshotPlayer `json:"players"`
}

type snapshotPlayer struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
	Active    bool   `json:"active"`
}

func (p *snapshotPlayer) toPlayer() model.Player {
	return model.Player{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Position:  model.ParsePosition(p.Position),
		Team:      model.ParseTeam(p.Team),
		Active:    p.Active,
	}
}

func readSnapshot(path string) (*snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err := json.Unmarshal(b, &snap); err != nil {
		return nil, fmt.Errorf("error parsing player snapshot: %w", err)
	}
	return &snap, nil
}

func writeSnapshot(path string, fetched time.Time, players []model.Player) error {
	snap := snapshot{
		FetchedAt: fetched,
		Players:   make([]snapshotPlayer, 0, len(players)),
	}
	for _, p := range players {
		snap.Players = append(snap.Players, snapshotPlayer{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Position:  string(p.Position),
			Team:      p.Team.String(),
			Active:    p.Active,
		})
	}

	b, err := json.Marshal(&snap)
	if err != nil {
		return fmt.Errorf("error encoding player snapshot: %w", err)
	}
	return os.WriteFile(path, b, 0644)
}
