package wire

import (
	"film-social/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireReview(r chi.Router, h *adaptor.ReviewHandler) {
	r.Route("/reviews", func(r chi.Router) {
		r.Post("/", h.CreateReview)
		r.Put("/", h.UpdateReview)
		r.Get("/", h.GetReviews)

		r.Get("/{id}", h.GetReviewByID)
		r.Delete("/{id}", h.DeleteReview)

		r.Put("/{id}/like/{userId}", h.AddLike)
		r.Delete("/{id}/like/{userId}", h.RemoveLike)
		r.Put("/{id}/dislike/{userId}", h.AddDislike)
		r.Delete("/{id}/dislike/{userId}", h.RemoveDislike)
	})
}
