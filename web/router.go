package web

import (
	"time"

	"github.com/Tom-Gray/beerLeague/controller"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, adminPass string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/healthz", healthHandler(render))

	r.Route("/api", func(r chi.Router) {
		r.Get("/standings", standingsHandler(ctrl, render))
		r.Get("/standings/weekly", weeklyResultsHandler(ctrl, render))
		r.Get("/standings/team/{rosterID:\\d+}", teamStandingsHandler(ctrl, render))
		r.Get("/matchups", matchupsHandler(ctrl, render))
		r.Get("/analytics", analyticsHandler(ctrl, render))
		r.Get("/teams", teamsHandler(ctrl, render))
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.BasicAuth("beerleague", map[string]string{"admin": adminPass}))
		r.Use(middleware.Timeout(5 * time.Minute)) // full season syncs take a while

		r.Post("/sync", syncSeasonHandler(ctrl, render))
		r.Post("/sync/{week:\\d+}", syncWeekHandler(ctrl, render))
		r.Post("/export", exportHandler(ctrl, render))
	})

	return r
}
