package adaptor

import (
	"context"
	"encoding/json"
	"net/http"

	"film-social/internal/dto/request"
	"film-social/internal/dto/response"
	"film-social/internal/usecase"
	"film-social/pkg/utils"

	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create review")
		return
	}

	utils.ResponseCreated(w, "Review created", review)
}

// UpdateReview handles PUT /reviews
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	var req request.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	review, err := h.service.UpdateReview(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "Review updated", review)
}

// DeleteReview handles DELETE /reviews/{id}
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteReview(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "Review deleted", nil)
}

// GetReviewByID handles GET /reviews/{id}
func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	review, err := h.service.GetReviewByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "Review retrieved", review)
}

// GetReviews handles GET /reviews?filmId=&count=
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filmID := utils.ParseOptionalInt(query.Get("filmId"))
	count := utils.ParseInt(query.Get("count"), usecase.DefaultReviewCount)

	reviews, err := h.service.GetReviews(r.Context(), filmID, count)
	if err != nil {
		handleServiceError(w, h.log, err, "get reviews")
		return
	}

	utils.ResponseSuccess(w, "Reviews retrieved", reviews)
}

// AddLike handles PUT /reviews/{id}/like/{userId}
func (h *ReviewHandler) AddLike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, "add review like", h.service.AddLike)
}

// AddDislike handles PUT /reviews/{id}/dislike/{userId}
func (h *ReviewHandler) AddDislike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, "add review dislike", h.service.AddDislike)
}

// RemoveLike handles DELETE /reviews/{id}/like/{userId}
func (h *ReviewHandler) RemoveLike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, "remove review like", h.service.RemoveLike)
}

// RemoveDislike handles DELETE /reviews/{id}/dislike/{userId}
func (h *ReviewHandler) RemoveDislike(w http.ResponseWriter, r *http.Request) {
	h.react(w, r, "remove review dislike", h.service.RemoveDislike)
}

func (h *ReviewHandler) react(
	w http.ResponseWriter,
	r *http.Request,
	action string,
	fn func(ctx context.Context, reviewID, userID int) (*response.ReviewResponse, error),
) {
	reviewID, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}
	userID, ok := parseURLInt(w, r, "userId")
	if !ok {
		return
	}

	review, err := fn(r.Context(), reviewID, userID)
	if err != nil {
		handleServiceError(w, h.log, err, action)
		return
	}

	utils.ResponseSuccess(w, "Review reaction applied", review)
}
