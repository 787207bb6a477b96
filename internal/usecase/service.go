package usecase

import (
	"film-social/internal/data/cache"
	"film-social/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	User     UserService
	Film     FilmService
	Director DirectorService
	Review   ReviewService
	Feed     FeedService
}

func NewService(repo *repository.Repository, filmCache *cache.FilmCache, log *zap.Logger) *Service {
	feed := NewFeedService(repo, log)

	return &Service{
		User:     NewUserService(repo, feed, filmCache, log),
		Film:     NewFilmService(repo, feed, filmCache, log),
		Director: NewDirectorService(repo, log),
		Review:   NewReviewService(repo, feed, log),
		Feed:     feed,
	}
}
