package adaptor

import (
	"encoding/json"
	"net/http"

	"film-social/internal/dto/request"
	"film-social/internal/usecase"
	"film-social/pkg/utils"

	"go.uber.org/zap"
)

type DirectorHandler struct {
	service usecase.DirectorService
	log     *zap.Logger
}

func NewDirectorHandler(service usecase.DirectorService, log *zap.Logger) *DirectorHandler {
	return &DirectorHandler{
		service: service,
		log:     log.With(zap.String("handler", "director")),
	}
}

// CreateDirector handles POST /directors
func (h *DirectorHandler) CreateDirector(w http.ResponseWriter, r *http.Request) {
	var req request.DirectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	director, err := h.service.CreateDirector(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create director")
		return
	}

	utils.ResponseCreated(w, "Director created", director)
}

// UpdateDirector handles PUT /directors
func (h *DirectorHandler) UpdateDirector(w http.ResponseWriter, r *http.Request) {
	var req request.DirectorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	director, err := h.service.UpdateDirector(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update director")
		return
	}

	utils.ResponseSuccess(w, "Director updated", director)
}

// GetDirectors handles GET /directors
func (h *DirectorHandler) GetDirectors(w http.ResponseWriter, r *http.Request) {
	directors, err := h.service.GetDirectors(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get directors")
		return
	}

	utils.ResponseSuccess(w, "Directors retrieved", directors)
}

// GetDirectorByID handles GET /directors/{id}
func (h *DirectorHandler) GetDirectorByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	director, err := h.service.GetDirectorByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get director")
		return
	}

	utils.ResponseSuccess(w, "Director retrieved", director)
}

// DeleteDirector handles DELETE /directors/{id}
func (h *DirectorHandler) DeleteDirector(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteDirector(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete director")
		return
	}

	utils.ResponseSuccess(w, "Director deleted", nil)
}
