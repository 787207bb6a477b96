package wire

import (
	"film-social/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireFilm(r chi.Router, h *adaptor.FilmHandler) {
	r.Route("/films", func(r chi.Router) {
		r.Post("/", h.CreateFilm)
		r.Put("/", h.UpdateFilm)
		r.Get("/", h.GetFilms)

		// Static segments must be wired alongside /{id}; chi matches them first.
		r.Get("/popular", h.GetPopular)
		r.Get("/common", h.GetCommonFilms)
		r.Get("/search", h.SearchFilms)
		r.Get("/director/{directorId}", h.GetFilmsByDirector)

		r.Get("/{id}", h.GetFilmByID)
		r.Delete("/{id}", h.DeleteFilm)

		r.Put("/{id}/like/{userId}", h.AddLike)
		r.Delete("/{id}/like/{userId}", h.RemoveLike)
	})
}
