package adaptor

import (
	"net/http"

	"film-social/internal/usecase"
	"film-social/pkg/utils"

	"go.uber.org/zap"
)

// GenreHandler serves the genre reference catalog.
type GenreHandler struct {
	service usecase.FilmService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.FilmService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// GetGenres handles GET /genres
func (h *GenreHandler) GetGenres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetGenres(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved", genres)
}

// GetGenreByID handles GET /genres/{id}
func (h *GenreHandler) GetGenreByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	genre, err := h.service.GetGenreByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get genre")
		return
	}

	utils.ResponseSuccess(w, "Genre retrieved", genre)
}
