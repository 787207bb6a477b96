package adaptor

import (
	"errors"
	"net/http"
	"strconv"

	"film-social/internal/usecase"
	"film-social/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	User     *UserHandler
	Film     *FilmHandler
	Review   *ReviewHandler
	Director *DirectorHandler
	Genre    *GenreHandler
	Mpa      *MpaHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		User:     NewUserHandler(service.User, service.Feed, log),
		Film:     NewFilmHandler(service.Film, log),
		Review:   NewReviewHandler(service.Review, log),
		Director: NewDirectorHandler(service.Director, log),
		Genre:    NewGenreHandler(service.Film, log),
		Mpa:      NewMpaHandler(service.Film, log),
	}
}

// handleServiceError translates usecase sentinels into HTTP statuses.
// Anything unrecognized is a 500 and gets logged with its cause.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, action string) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		utils.ResponseBadRequest(w, err.Error(), nil)
	case errors.Is(err, usecase.ErrUserNotFound),
		errors.Is(err, usecase.ErrFilmNotFound),
		errors.Is(err, usecase.ErrReviewNotFound),
		errors.Is(err, usecase.ErrDirectorNotFound),
		errors.Is(err, usecase.ErrGenreNotFound),
		errors.Is(err, usecase.ErrMpaNotFound):
		utils.ResponseNotFound(w, err.Error())
	case errors.Is(err, usecase.ErrReviewExists):
		utils.ResponseConflict(w, err.Error())
	default:
		log.Error("Request failed",
			zap.String("action", action),
			zap.Error(err),
		)
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parseURLInt reads an integer path parameter; a malformed value writes a
// 400 and returns ok=false.
func parseURLInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	value, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid "+name, nil)
		return 0, false
	}
	return value, true
}
