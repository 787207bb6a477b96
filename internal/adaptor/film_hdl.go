package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"film-social/internal/dto/request"
	"film-social/internal/usecase"
	"film-social/pkg/utils"

	"go.uber.org/zap"
)

const defaultPopularCount = 10

type FilmHandler struct {
	service usecase.FilmService
	log     *zap.Logger
}

func NewFilmHandler(service usecase.FilmService, log *zap.Logger) *FilmHandler {
	return &FilmHandler{
		service: service,
		log:     log.With(zap.String("handler", "film")),
	}
}

// CreateFilm handles POST /films
func (h *FilmHandler) CreateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	film, err := h.service.CreateFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create film")
		return
	}

	utils.ResponseCreated(w, "Film created", film)
}

// UpdateFilm handles PUT /films
func (h *FilmHandler) UpdateFilm(w http.ResponseWriter, r *http.Request) {
	var req request.FilmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	film, err := h.service.UpdateFilm(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update film")
		return
	}

	utils.ResponseSuccess(w, "Film updated", film)
}

// GetFilms handles GET /films
func (h *FilmHandler) GetFilms(w http.ResponseWriter, r *http.Request) {
	films, err := h.service.GetFilms(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get films")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved", films)
}

// GetFilmByID handles GET /films/{id}
func (h *FilmHandler) GetFilmByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	film, err := h.service.GetFilmByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get film")
		return
	}

	utils.ResponseSuccess(w, "Film retrieved", film)
}

// DeleteFilm handles DELETE /films/{id}
func (h *FilmHandler) DeleteFilm(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteFilm(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete film")
		return
	}

	utils.ResponseSuccess(w, "Film deleted", nil)
}

// AddLike handles PUT /films/{id}/like/{userId}
func (h *FilmHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	filmID, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}
	userID, ok := parseURLInt(w, r, "userId")
	if !ok {
		return
	}

	if err := h.service.AddLike(r.Context(), filmID, userID); err != nil {
		handleServiceError(w, h.log, err, "add like")
		return
	}

	utils.ResponseSuccess(w, "Like added", nil)
}

// RemoveLike handles DELETE /films/{id}/like/{userId}
func (h *FilmHandler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	filmID, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}
	userID, ok := parseURLInt(w, r, "userId")
	if !ok {
		return
	}

	if err := h.service.RemoveLike(r.Context(), filmID, userID); err != nil {
		handleServiceError(w, h.log, err, "remove like")
		return
	}

	utils.ResponseSuccess(w, "Like removed", nil)
}

// GetPopular handles GET /films/popular?count=&genreId=&year=
func (h *FilmHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	count := utils.ParseInt(query.Get("count"), defaultPopularCount)
	genreID := utils.ParseOptionalInt(query.Get("genreId"))
	year := utils.ParseOptionalInt(query.Get("year"))

	films, err := h.service.GetPopular(r.Context(), count, genreID, year)
	if err != nil {
		handleServiceError(w, h.log, err, "get popular films")
		return
	}

	utils.ResponseSuccess(w, "Popular films retrieved", films)
}

// GetCommonFilms handles GET /films/common?userId=&friendId=
func (h *FilmHandler) GetCommonFilms(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	userID := utils.ParseOptionalInt(query.Get("userId"))
	friendID := utils.ParseOptionalInt(query.Get("friendId"))
	if userID == nil || friendID == nil {
		utils.ResponseBadRequest(w, "userId and friendId are required", nil)
		return
	}

	films, err := h.service.GetCommonFilms(r.Context(), *userID, *friendID)
	if err != nil {
		handleServiceError(w, h.log, err, "get common films")
		return
	}

	utils.ResponseSuccess(w, "Common films retrieved", films)
}

// GetFilmsByDirector handles GET /films/director/{directorId}?sortBy=year|likes
func (h *FilmHandler) GetFilmsByDirector(w http.ResponseWriter, r *http.Request) {
	directorID, ok := parseURLInt(w, r, "directorId")
	if !ok {
		return
	}

	sortBy := r.URL.Query().Get("sortBy")
	if sortBy == "" {
		sortBy = "likes"
	}

	films, err := h.service.GetFilmsByDirector(r.Context(), directorID, sortBy)
	if err != nil {
		handleServiceError(w, h.log, err, "get films by director")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved", films)
}

// SearchFilms handles GET /films/search?query=&by=
func (h *FilmHandler) SearchFilms(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("query"))
	if q == "" {
		utils.ResponseBadRequest(w, "query is required", nil)
		return
	}

	films, err := h.service.SearchFilms(r.Context(), q, r.URL.Query().Get("by"))
	if err != nil {
		handleServiceError(w, h.log, err, "search films")
		return
	}

	utils.ResponseSuccess(w, "Films retrieved", films)
}
