package usecase_test

import (
	"fmt"
	"testing"

	"film-social/internal/data/cache"
	"film-social/internal/data/memory"
	"film-social/internal/dto/request"
	"film-social/internal/dto/response"
	"film-social/internal/usecase"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newService(t *testing.T) *usecase.Service {
	t.Helper()
	repo := memory.NewRepository()
	filmCache := cache.NewFilmCache(nil, 0, zap.NewNop())
	return usecase.NewService(repo, filmCache, zap.NewNop())
}

func seedUser(t *testing.T, svc *usecase.Service, login string) response.UserResponse {
	t.Helper()
	user, err := svc.User.CreateUser(t.Context(), &request.UserRequest{
		Email:    fmt.Sprintf("%s@example.com", login),
		Login:    login,
		Name:     login,
		Birthday: "1990-01-01",
	})
	require.NoError(t, err)
	return *user
}

func seedFilm(t *testing.T, svc *usecase.Service, name string) response.FilmResponse {
	t.Helper()
	film, err := svc.Film.CreateFilm(t.Context(), &request.FilmRequest{
		Name:        name,
		Description: "some film",
		ReleaseDate: "2000-01-01",
		Duration:    120,
		Mpa:         request.RefID{ID: 1},
		Genres:      []request.RefID{{ID: 1}},
	})
	require.NoError(t, err)
	return *film
}

func seedReview(t *testing.T, svc *usecase.Service, userID, filmID int, positive bool) response.ReviewResponse {
	t.Helper()
	review, err := svc.Review.CreateReview(t.Context(), &request.ReviewRequest{
		Content:    "worth watching",
		IsPositive: &positive,
		UserID:     &userID,
		FilmID:     &filmID,
	})
	require.NoError(t, err)
	return *review
}
