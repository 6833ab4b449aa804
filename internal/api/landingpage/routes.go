package landingpage

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers landing page routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/landing-pages", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Get("/{id}/export", h.Export)
	})

	r.Get("/profile", h.Profile)
}
