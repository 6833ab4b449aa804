package generation

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers generation routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/templates/generate", h.GenerateTemplate)
	r.Post("/content/generate", h.GenerateContent)
	r.Post("/images/generate", h.GenerateImage)
}
