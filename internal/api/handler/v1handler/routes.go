package v1handler

import (
	"net/http"
	"plotmarket/internal/auth"

	"github.com/go-chi/chi/v5"
)

// Routes mounts every API route on r. authLimit wraps the /auth routes and
// may be nil.
func (h Handler) Routes(r chi.Router, authLimit func(http.Handler) http.Handler) {
	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	r.Route("/auth", func(r chi.Router) {
		if authLimit != nil {
			r.Use(authLimit)
		}
		r.Post("/login", h.Login)
		r.Post("/register", h.Register)
	})

	r.Route("/users", func(r chi.Router) {
		r.Use(h.Authenticate)

		r.With(h.Require(auth.TierActiveUser)).Get("/me", h.Me)
		r.With(h.Require(auth.TierActiveUser)).Put("/me", h.UpdateMe)

		r.Group(func(r chi.Router) {
			r.Use(h.Require(auth.TierMasterAdmin))
			r.Get("/", h.ListUsers)
			r.Get("/{id}", h.GetUser)
		})
	})

	r.Route("/plots", func(r chi.Router) {
		r.Get("/", h.SearchPlots)
		r.Get("/locations/regions", h.Regions)
		r.Get("/locations/districts", h.Districts)
		r.Get("/locations/councils", h.Councils)
		r.Get("/{id}", h.GetPlot)

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate, h.Require(auth.TierActiveUser))
			r.Post("/{id}/lock", h.LockPlot)
			r.Delete("/{id}/lock", h.UnlockPlot)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.Authenticate, h.Require(auth.TierAdmin))
			r.Post("/", h.CreatePlot)
			r.Put("/{id}", h.UpdatePlot)
			r.Delete("/{id}", h.DeletePlot)
		})
	})

	r.Route("/orders", func(r chi.Router) {
		r.Use(h.Authenticate)

		r.Group(func(r chi.Router) {
			r.Use(h.Require(auth.TierActiveUser))
			r.Get("/", h.ListOrders)
			r.Post("/", h.CreateOrder)
			r.Get("/{id}", h.GetOrder)
		})

		r.With(h.Require(auth.TierAdmin)).Put("/{id}", h.UpdateOrder)
	})
}
