package wire

import (
	"film-social/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireReference exposes the read-only genre and MPA catalogs.
func wireReference(r chi.Router, genre *adaptor.GenreHandler, mpa *adaptor.MpaHandler) {
	r.Route("/genres", func(r chi.Router) {
		r.Get("/", genre.GetGenres)
		r.Get("/{id}", genre.GetGenreByID)
	})

	r.Route("/mpa", func(r chi.Router) {
		r.Get("/", mpa.GetMpaAll)
		r.Get("/{id}", mpa.GetMpaByID)
	})
}
