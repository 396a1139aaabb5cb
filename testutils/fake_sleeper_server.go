package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

//go:embed sleeperdata
var sleeperdata embed.FS

// LeagueID is the league the fake server has data for.
const LeagueID = "871862798520845312"

type FakeSleeperServer struct {
	s *httptest.Server
}

func NewFakeSleeperServer() *FakeSleeperServer {
	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Get("/state/nfl", nflStateHandler)
		r.Get("/players/nfl", nflPlayersHandler)

		r.Route("/league/{leagueID}", func(r chi.Router) {
			r.Get("/", leagueHandler)
			r.Get("/users", leagueUsersHandler)
			r.Get("/rosters", leagueRostersHandler)
			r.Get("/matchups/{week}", leagueMatchupsHandler)
		})
	})

	return &FakeSleeperServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeSleeperServer) Close() {
	f.s.Close()
}

func (f *FakeSleeperServer) URL() string {
	return f.s.URL
}

func nflStateHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "state.json")
}

func nflPlayersHandler(w http.ResponseWriter, r *http.Request) {
	serveFile(w, "players.json")
}

func leagueHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") != LeagueID {
		// an unknown league returns a 200 with "null" as the body
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("null"))
		return
	}
	serveFile(w, "league.json")
}

func leagueUsersHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") != LeagueID {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}
	serveFile(w, "users.json")
}

func leagueRostersHandler(w http.ResponseWriter, r *http.Request) {
	if chi.URLParam(r, "leagueID") != LeagueID {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("[]"))
		return
	}
	serveFile(w, "rosters.json")
}

func leagueMatchupsHandler(w http.ResponseWriter, r *http.Request) {
	leagueID := chi.URLParam(r, "leagueID")
	week := chi.URLParam(r, "week")

	if leagueID == LeagueID && (week == "1" || week == "2") {
		serveFile(w, fmt.Sprintf("matchups_%s.json", week))
		return
	}
	// weeks that have not been played yet come back empty
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("[]"))
}

func serveFile(w http.ResponseWriter, name string) {
	b, err := sleeperdata.ReadFile(fmt.Sprintf("sleeperdata/%s", name))
	if err != nil {
		log.Printf("error reading sleeperdata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
