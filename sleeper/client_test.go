package sleeper

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/Tom-Gray/beerLeague/model"
	"github.com/Tom-Gray/beerLeague/testutils"
)

func TestGetNFLState(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	state, err := c.GetNFLState()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	expected := &model.NFLState{Week: 2, SeasonType: "regular", Season: "2024"}
	if !reflect.DeepEqual(state, expected) {
		t.Errorf("expected state %+v, got %+v", expected, state)
	}
}

func TestGetLeague(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	league, err := c.GetLeague(testutils.LeagueID)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	expected := &model.League{
		ExternalID: testutils.LeagueID,
		Name:       "Beer League",
		Season:     "2024",
		TotalTeams: 4,
	}
	if !reflect.DeepEqual(league, expected) {
		t.Errorf("expected league %+v, got %+v", expected, league)
	}
}

func TestGetLeague_notFound(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	league, err := c.GetLeague("1234")
	if !errors.Is(err, ErrLeagueNotFound) {
		t.Errorf("expected ErrLeagueNotFound, got: %v", err)
	}
	if league != nil {
		t.Errorf("league should have been nil, was %+v", league)
	}
}

func TestGetLeagueUsers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	names, err := c.GetLeagueUsers(testutils.LeagueID)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	// Custom team names are preferred, display names fill the gaps.
	expected := map[string]string{
		"300638784440004608": "Hop Devils",
		"362744067425296384": "mww",
		"300368913101774848": "gee17",
		"325106323354046464": "Stout Hearts",
	}
	if !reflect.DeepEqual(names, expected) {
		t.Errorf("expected names %v, got %v", expected, names)
	}
}

func TestGetRosters(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	rosters, err := c.GetRosters(testutils.LeagueID)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(rosters) != 4 {
		t.Fatalf("expected 4 rosters, got %d", len(rosters))
	}

	expected := model.Roster{
		RosterID: 1,
		OwnerID:  "300638784440004608",
		Reserve:  []string{"8154"},
	}
	if !reflect.DeepEqual(rosters[0], expected) {
		t.Errorf("expected roster %+v, got %+v", expected, rosters[0])
	}
	if rosters[1].Reserve != nil {
		t.Errorf("expected no reserve for roster 2, got %v", rosters[1].Reserve)
	}
}

func TestGetMatchups(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	entries, err := c.GetMatchups(testutils.LeagueID, 1)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("expected 4 entries, got %d", len(entries))
	}

	expected := model.MatchupEntry{
		RosterID:  1,
		MatchupID: 1,
		Players:   []string{"2374", "6904", "8154"},
		Starters:  []string{"6904", "2374"},
		PlayerPoints: map[string]float64{
			"2374": 11.2,
			"6904": 24.5,
			"8154": 15.0,
		},
	}
	if !reflect.DeepEqual(entries[0], expected) {
		t.Errorf("expected entry %+v, got %+v", expected, entries[0])
	}
}

func TestGetMatchups_futureWeekIsEmpty(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	entries, err := c.GetMatchups(testutils.LeagueID, 16)
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected no entries for an unplayed week, got %d", len(entries))
	}
}

func TestLoadPlayers(t *testing.T) {
	fakeSleeper := testutils.NewFakeSleeperServer()
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL())

	players, err := c.LoadPlayers()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}

	byID := make(map[string]model.Player)
	for _, p := range players {
		byID[p.ID] = p
	}

	if _, found := byID["9999"]; found {
		t.Error("invalid placeholder players should be filtered out")
	}

	hurts, found := byID["6904"]
	if !found {
		t.Fatal("expected player 6904 in the response")
	}
	if hurts.FullName() != "Jalen Hurts" {
		t.Errorf("expected Jalen Hurts, got %s", hurts.FullName())
	}
	if hurts.Position != model.POS_QB {
		t.Errorf("expected QB, got %v", hurts.Position)
	}
	if !hurts.Team.Equals(model.TEAM_PHI) {
		t.Errorf("expected PHI, got %v", hurts.Team)
	}

	def, found := byID["SEA"]
	if !found {
		t.Fatal("expected team defense SEA in the response")
	}
	if def.Position != model.POS_DEF {
		t.Errorf("expected DEF, got %v", def.Position)
	}
}

func TestGetNFLState_httpError(t *testing.T) {
	fakeSleeper := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusNotFound)
	}))
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL)

	state, err := c.GetNFLState()
	if err == nil {
		t.Fatal("error should not have been nil")
	}
	if state != nil {
		t.Fatalf("state should have been nil, was %+v", state)
	}
}

func TestGetJSON_retriesServerErrors(t *testing.T) {
	calls := 0
	fakeSleeper := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		calls++
		if calls < 3 {
			rw.WriteHeader(http.StatusInternalServerError)
			return
		}
		rw.WriteHeader(http.StatusOK)
		rw.Write([]byte(`{"week":5,"season_type":"regular","season":"2024"}`))
	}))
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL)

	state, err := c.GetNFLState()
	if err != nil {
		t.Fatalf("error should have been nil, was: %v", err)
	}
	if state.Week != 5 {
		t.Errorf("expected week 5, got %d", state.Week)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestGetJSON_doesNotRetryClientErrors(t *testing.T) {
	calls := 0
	fakeSleeper := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		calls++
		rw.WriteHeader(http.StatusNotFound)
	}))
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL)

	if _, err := c.GetNFLState(); err == nil {
		t.Fatal("error should not have been nil")
	}
	if calls != 1 {
		t.Errorf("expected a single attempt for a 404, got %d", calls)
	}
}

func TestGetJSON_givesUpAfterMaxAttempts(t *testing.T) {
	calls := 0
	fakeSleeper := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		calls++
		rw.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer fakeSleeper.Close()

	c := NewForTest(fakeSleeper.URL)

	if _, err := c.GetNFLState(); err == nil {
		t.Fatal("error should not have been nil")
	}
	if calls != defaultMaxAttempts {
		t.Errorf("expected %d attempts, got %d", defaultMaxAttempts, calls)
	}
}
