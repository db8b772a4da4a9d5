package handlers

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/fx"
)

// Module provides the site handler and mounts its routes
var Module = fx.Module("handlers",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)

// RegisterRoutes mounts every route on r
func RegisterRoutes(r *chi.Mux, h *Handler) {
	r.Get("/", h.LandingPage)
	r.Get("/health", h.Health)

	r.Post("/menu/toggle", h.ToggleMenu)
	r.Post("/menu/close", h.CloseMenu)

	r.Post("/services/back", h.BackToServices)
	r.Post("/services/{slug}", h.SelectService)

	r.Post("/recommendation", h.SubmitRecommendation)
	r.Post("/contact", h.SubmitContact)

	r.Route("/api", func(r chi.Router) {
		r.Get("/services", h.APIServices)
		r.Post("/recommendation", h.APIRecommendation)
		r.Post("/contact", h.APIContact)
	})
}
