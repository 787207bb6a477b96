// Package memory provides in-memory implementations of the repository
// contracts so the services can be exercised without a database.
package memory

import (
	"film-social/internal/data/repository"
)

// NewRepository assembles an in-memory repository set sharing one like index,
// matching the wiring shape of repository.NewRepository.
func NewRepository() *repository.Repository {
	likes := NewLikeStore()
	users := NewUserStore()

	return &repository.Repository{
		User:     users,
		Friend:   NewFriendStore(users),
		Film:     NewFilmStore(likes),
		Genre:    NewGenreStore(),
		Mpa:      NewMpaStore(),
		Director: NewDirectorStore(),
		Like:     likes,
		Review:   NewReviewStore(),
		Feed:     NewFeedStore(),
	}
}
