package wire

import (
	"film-social/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireDirector(r chi.Router, h *adaptor.DirectorHandler) {
	r.Route("/directors", func(r chi.Router) {
		r.Post("/", h.CreateDirector)
		r.Put("/", h.UpdateDirector)
		r.Get("/", h.GetDirectors)
		r.Get("/{id}", h.GetDirectorByID)
		r.Delete("/{id}", h.DeleteDirector)
	})
}
