package wizard

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers wizard session routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/wizard-session", func(r chi.Router) {
		r.Post("/", h.StartSession)
		r.Get("/{id}", h.GetSession)
		r.Patch("/{id}/field", h.SetField)
		r.Post("/{id}/next", h.Next)
		r.Post("/{id}/prev", h.Prev)
		r.Post("/{id}/generate", h.Generate)
		r.Post("/{id}/submit", h.Submit)
		r.Delete("/{id}", h.Abandon)
	})
}
