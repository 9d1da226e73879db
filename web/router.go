package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/pietro1412/fantacontratti/controller"
	"github.com/pietro1412/fantacontratti/metrics"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, m *metrics.Metrics) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Get("/", statusHandler(ctrl, render))
	r.Handle("/metrics", m.Handler())

	r.Get("/players", playersHandler(ctrl, render))
	r.Route("/players/{playerID}", func(r chi.Router) {
		r.Post("/strategy", editStrategyHandler(ctrl, render))
		r.Post("/flush", flushHandler(ctrl, render))
		r.Post("/category", categoryHandler(ctrl, render))
	})

	r.Route("/view", func(r chi.Router) {
		r.Post("/", updateViewHandler(ctrl, render))
		r.Post("/reset", resetViewHandler(ctrl, render))
	})

	r.Get("/overview", overviewHandler(ctrl, render))

	r.Route("/compare", func(r chi.Router) {
		r.Get("/", compareListHandler(ctrl, render))
		r.Post("/{playerID}", compareToggleHandler(ctrl, render))
		r.Delete("/", compareClearHandler(ctrl, render))
	})

	r.Post("/reload", reloadHandler(ctrl, render))

	return r
}
