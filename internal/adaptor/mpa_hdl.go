package adaptor

import (
	"net/http"

	"film-social/internal/usecase"
	"film-social/pkg/utils"

	"go.uber.org/zap"
)

// MpaHandler serves the MPA rating reference catalog.
type MpaHandler struct {
	service usecase.FilmService
	log     *zap.Logger
}

func NewMpaHandler(service usecase.FilmService, log *zap.Logger) *MpaHandler {
	return &MpaHandler{
		service: service,
		log:     log.With(zap.String("handler", "mpa")),
	}
}

// GetMpaAll handles GET /mpa
func (h *MpaHandler) GetMpaAll(w http.ResponseWriter, r *http.Request) {
	ratings, err := h.service.GetMpaAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get mpa ratings")
		return
	}

	utils.ResponseSuccess(w, "MPA ratings retrieved", ratings)
}

// GetMpaByID handles GET /mpa/{id}
func (h *MpaHandler) GetMpaByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	mpa, err := h.service.GetMpaByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get mpa rating")
		return
	}

	utils.ResponseSuccess(w, "MPA rating retrieved", mpa)
}
