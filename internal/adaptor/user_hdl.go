package adaptor

import (
	"encoding/json"
	"net/http"

	"film-social/internal/dto/request"
	"film-social/internal/usecase"
	"film-social/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	feed    usecase.FeedService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, feed usecase.FeedService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		feed:    feed,
		log:     log.With(zap.String("handler", "user")),
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created", user)
}

// UpdateUser handles PUT /users
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "User updated", user)
}

// GetUsers handles GET /users
func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved", users)
}

// GetUserByID handles GET /users/{id}
func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	user, err := h.service.GetUserByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, "User retrieved", user)
}

// DeleteUser handles DELETE /users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "User deleted", nil)
}

// AddFriend handles PUT /users/{id}/friends/{friendId}
func (h *UserHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}
	friendID, ok := parseURLInt(w, r, "friendId")
	if !ok {
		return
	}

	if err := h.service.AddFriend(r.Context(), id, friendID); err != nil {
		handleServiceError(w, h.log, err, "add friend")
		return
	}

	utils.ResponseSuccess(w, "Friend added", nil)
}

// RemoveFriend handles DELETE /users/{id}/friends/{friendId}
func (h *UserHandler) RemoveFriend(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}
	friendID, ok := parseURLInt(w, r, "friendId")
	if !ok {
		return
	}

	if err := h.service.RemoveFriend(r.Context(), id, friendID); err != nil {
		handleServiceError(w, h.log, err, "remove friend")
		return
	}

	utils.ResponseSuccess(w, "Friend removed", nil)
}

// GetFriends handles GET /users/{id}/friends
func (h *UserHandler) GetFriends(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	friends, err := h.service.GetFriends(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get friends")
		return
	}

	utils.ResponseSuccess(w, "Friends retrieved", friends)
}

// GetCommonFriends handles GET /users/{id}/friends/common/{otherId}
func (h *UserHandler) GetCommonFriends(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}
	otherID, ok := parseURLInt(w, r, "otherId")
	if !ok {
		return
	}

	common, err := h.service.GetCommonFriends(r.Context(), id, otherID)
	if err != nil {
		handleServiceError(w, h.log, err, "get common friends")
		return
	}

	utils.ResponseSuccess(w, "Common friends retrieved", common)
}

// GetRecommendations handles GET /users/{id}/recommendations
func (h *UserHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	films, err := h.service.GetRecommendations(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get recommendations")
		return
	}

	utils.ResponseSuccess(w, "Recommendations retrieved", films)
}

// GetFeed handles GET /users/{id}/feed
func (h *UserHandler) GetFeed(w http.ResponseWriter, r *http.Request) {
	id, ok := parseURLInt(w, r, "id")
	if !ok {
		return
	}

	feed, err := h.feed.GetUserFeed(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get feed")
		return
	}

	utils.ResponseSuccess(w, "Feed retrieved", feed)
}
