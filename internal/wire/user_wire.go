package wire

import (
	"film-social/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireUser(r chi.Router, h *adaptor.UserHandler) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/", h.CreateUser)
		r.Put("/", h.UpdateUser)
		r.Get("/", h.GetUsers)

		r.Get("/{id}", h.GetUserByID)
		r.Delete("/{id}", h.DeleteUser)

		r.Put("/{id}/friends/{friendId}", h.AddFriend)
		r.Delete("/{id}/friends/{friendId}", h.RemoveFriend)
		r.Get("/{id}/friends", h.GetFriends)
		r.Get("/{id}/friends/common/{otherId}", h.GetCommonFriends)

		r.Get("/{id}/recommendations", h.GetRecommendations)
		r.Get("/{id}/feed", h.GetFeed)
	})
}
