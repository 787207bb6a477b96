package repository

import (
	"context"
	"fmt"

	"film-social/pkg/database"

	"go.uber.org/zap"
)

// LikeRepository maintains the user -> liked-films index with set semantics:
// a user likes a film at most once, Add and Remove are idempotent.
type LikeRepository interface {
	Add(ctx context.Context, filmID, userID int) error
	Remove(ctx context.Context, filmID, userID int) error
	FindFilmIDsByUser(ctx context.Context, userID int) ([]int, error)
	// FindLikesOfRelatedUsers returns, keyed by user id, the liked-film sets of
	// every user sharing at least one liked film with the given user, the given
	// user included. Film ids per user are ordered ascending.
	FindLikesOfRelatedUsers(ctx context.Context, userID int) (map[int][]int, error)
}

type likeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLikeRepository(db database.PgxIface, log *zap.Logger) LikeRepository {
	return &likeRepository{
		db:  db,
		log: log.With(zap.String("repository", "like")),
	}
}

func (r *likeRepository) Add(ctx context.Context, filmID, userID int) error {
	query := `
		INSERT INTO likes (film_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (film_id, user_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, filmID, userID); err != nil {
		r.log.Error("Failed to add like",
			zap.Error(err),
			zap.Int("film_id", filmID),
			zap.Int("user_id", userID),
		)
		return fmt.Errorf("add like: %w", err)
	}

	return nil
}

func (r *likeRepository) Remove(ctx context.Context, filmID, userID int) error {
	query := `DELETE FROM likes WHERE film_id = $1 AND user_id = $2`

	if _, err := r.db.Exec(ctx, query, filmID, userID); err != nil {
		r.log.Error("Failed to remove like",
			zap.Error(err),
			zap.Int("film_id", filmID),
			zap.Int("user_id", userID),
		)
		return fmt.Errorf("remove like: %w", err)
	}

	return nil
}

func (r *likeRepository) FindFilmIDsByUser(ctx context.Context, userID int) ([]int, error) {
	query := `SELECT film_id FROM likes WHERE user_id = $1 ORDER BY film_id`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find likes by user",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find likes by user: %w", err)
	}
	defer rows.Close()

	var filmIDs []int
	for rows.Next() {
		var filmID int
		if err := rows.Scan(&filmID); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		filmIDs = append(filmIDs, filmID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes: %w", err)
	}

	return filmIDs, nil
}

func (r *likeRepository) FindLikesOfRelatedUsers(ctx context.Context, userID int) (map[int][]int, error) {
	query := `
		SELECT user_id, film_id
		FROM likes
		WHERE user_id IN (
			SELECT user_id
			FROM likes
			WHERE film_id IN (
				SELECT film_id
				FROM likes
				WHERE user_id = $1
			)
		)
		ORDER BY user_id, film_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find likes of related users",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find likes of related users: %w", err)
	}
	defer rows.Close()

	likesByUser := make(map[int][]int)
	for rows.Next() {
		var uid, filmID int
		if err := rows.Scan(&uid, &filmID); err != nil {
			return nil, fmt.Errorf("scan like: %w", err)
		}
		likesByUser[uid] = append(likesByUser[uid], filmID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate likes: %w", err)
	}

	return likesByUser, nil
}
