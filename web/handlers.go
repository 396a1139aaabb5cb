package web

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Tom-Gray/beerLeague/controller"
	"github.com/Tom-Gray/beerLeague/db"
	"github.com/Tom-Gray/beerLeague/export"
	"github.com/Tom-Gray/beerLeague/model"
	"github.com/go-chi/chi/v5"
	"github.com/unrolled/render"
)

type apiError struct {
	Error string `json:"error"`
}

// teamDetail is the full picture for a single team: its season standing
// plus every weekly result and matchup it appears in.
type teamDetail struct {
	Standing       export.StandingView       `json:"standing"`
	WeeklyResults  []export.WeeklyResultView `json:"weekly_results"`
	MatchupHistory []export.MatchupView      `json:"matchup_history"`
}

func healthHandler(render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func standingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		standings, err := ctrl.GetStandings(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error getting standings"})
			return
		}
		render.JSON(w, http.StatusOK, export.StandingViews(standings))
	}
}

// weeklyResultsHandler serves every team's bench score for a week, or
// the whole season when no week is given.
func weeklyResultsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, ok := weekParam(w, r, render)
		if !ok {
			return
		}

		results, err := ctrl.GetWeeklyResults(r.Context(), week)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error getting weekly results"})
			return
		}
		render.JSON(w, http.StatusOK, export.WeeklyResultViews(results))
	}
}

func teamStandingsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rosterID, err := strconv.Atoi(chi.URLParam(r, "rosterID"))
		if err != nil {
			render.JSON(w, http.StatusBadRequest, apiError{Error: "invalid roster id"})
			return
		}

		standing, err := ctrl.GetTeamStandings(r.Context(), rosterID)
		if errors.Is(err, db.ErrTeamNotFound) {
			render.JSON(w, http.StatusNotFound, apiError{Error: "team not found"})
			return
		}
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error getting team standings"})
			return
		}

		results, err := ctrl.GetWeeklyResults(r.Context(), 0)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error getting weekly results"})
			return
		}
		matchups, err := ctrl.GetMatchups(r.Context(), 0)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error getting matchups"})
			return
		}

		teamResults := make([]model.WeeklyBenchResult, 0)
		for _, res := range results {
			if res.RosterID == rosterID {
				teamResults = append(teamResults, res)
			}
		}
		teamMatchups := make([]model.BenchMatchup, 0)
		for _, m := range matchups {
			if m.Involves(rosterID) {
				teamMatchups = append(teamMatchups, m)
			}
		}

		detail := teamDetail{
			Standing:       export.StandingViews([]model.SeasonStandings{*standing})[0],
			WeeklyResults:  export.WeeklyResultViews(teamResults),
			MatchupHistory: export.MatchupViews(teamMatchups, teamResults),
		}
		render.JSON(w, http.StatusOK, detail)
	}
}

func matchupsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, ok := weekParam(w, r, render)
		if !ok {
			return
		}

		matchups, err := ctrl.GetMatchups(r.Context(), week)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error getting matchups"})
			return
		}
		results, err := ctrl.GetWeeklyResults(r.Context(), week)
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error getting weekly results"})
			return
		}
		render.JSON(w, http.StatusOK, export.MatchupViews(matchups, results))
	}
}

func analyticsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		analytics, err := ctrl.GetAnalytics(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error getting analytics"})
			return
		}
		render.JSON(w, http.StatusOK, export.NewAnalyticsView(analytics))
	}
}

func teamsHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := ctrl.GetTeams(r.Context())
		if err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error getting teams"})
			return
		}

		refs := make([]export.TeamRef, 0, len(teams))
		for _, t := range teams {
			refs = append(refs, export.TeamRef{
				RosterID: t.RosterID,
				TeamName: t.TeamName,
				OwnerID:  t.OwnerID,
			})
		}
		render.JSON(w, http.StatusOK, refs)
	}
}

func syncSeasonHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.SyncSeason(r.Context()); err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error syncing season"})
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "season synced"})
	}
}

func syncWeekHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		week, err := strconv.Atoi(chi.URLParam(r, "week"))
		if err != nil || week < 1 {
			render.JSON(w, http.StatusBadRequest, apiError{Error: "invalid week"})
			return
		}

		if err := ctrl.SyncWeek(r.Context(), week); err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error syncing week"})
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "week synced"})
	}
}

func exportHandler(ctrl controller.C, render *render.Render) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := ctrl.ExportDashboard(r.Context()); err != nil {
			render.JSON(w, http.StatusInternalServerError, apiError{Error: "error exporting dashboard"})
			return
		}
		render.JSON(w, http.StatusOK, map[string]string{"status": "dashboard exported"})
	}
}

// weekParam reads the optional ?week= query param. Zero means the full
// season. A false return means a response has already been written.
func weekParam(w http.ResponseWriter, r *http.Request, render *render.Render) (int, bool) {
	raw := r.URL.Query().Get("week")
	if raw == "" {
		return 0, true
	}

	week, err := strconv.Atoi(raw)
	if err != nil || week < 1 {
		render.JSON(w, http.StatusBadRequest, apiError{Error: "invalid week"})
		return 0, false
	}
	return week, true
}
