package repository

import (
	"film-social/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Friend   FriendRepository
	Film     FilmRepository
	Genre    GenreRepository
	Mpa      MpaRepository
	Director DirectorRepository
	Like     LikeRepository
	Review   ReviewRepository
	Feed     FeedRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Friend:   NewFriendRepository(db, log),
		Film:     NewFilmRepository(db, log),
		Genre:    NewGenreRepository(db, log),
		Mpa:      NewMpaRepository(db, log),
		Director: NewDirectorRepository(db, log),
		Like:     NewLikeRepository(db, log),
		Review:   NewReviewRepository(db, log),
		Feed:     NewFeedRepository(db, log),
	}
}
