package repository

import (
	"context"
	"fmt"

	"film-social/internal/data/entity"
	"film-social/pkg/database"

	"go.uber.org/zap"
)

// FriendRepository maintains the directed friendship graph. Adding A->B does
// not add B->A. Add and Remove are idempotent.
type FriendRepository interface {
	Add(ctx context.Context, userID, friendID int) error
	Remove(ctx context.Context, userID, friendID int) error
	FindFriends(ctx context.Context, userID int) ([]*entity.User, error)
	FindCommonFriends(ctx context.Context, userID, otherID int) ([]*entity.User, error)
}

type friendRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFriendRepository(db database.PgxIface, log *zap.Logger) FriendRepository {
	return &friendRepository{
		db:  db,
		log: log.With(zap.String("repository", "friend")),
	}
}

func (r *friendRepository) Add(ctx context.Context, userID, friendID int) error {
	query := `
		INSERT INTO friends (user_id, friend_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, friend_id) DO NOTHING
	`

	if _, err := r.db.Exec(ctx, query, userID, friendID); err != nil {
		r.log.Error("Failed to add friend",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("friend_id", friendID),
		)
		return fmt.Errorf("add friend: %w", err)
	}

	return nil
}

func (r *friendRepository) Remove(ctx context.Context, userID, friendID int) error {
	query := `DELETE FROM friends WHERE user_id = $1 AND friend_id = $2`

	// Removing an absent edge is a no-op, not an error.
	if _, err := r.db.Exec(ctx, query, userID, friendID); err != nil {
		r.log.Error("Failed to remove friend",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("friend_id", friendID),
		)
		return fmt.Errorf("remove friend: %w", err)
	}

	return nil
}

func (r *friendRepository) FindFriends(ctx context.Context, userID int) ([]*entity.User, error) {
	query := `
		SELECT u.user_id, u.email, u.login, u.name, u.birthday
		FROM users u
		INNER JOIN friends f ON f.friend_id = u.user_id
		WHERE f.user_id = $1
		ORDER BY u.user_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find friends",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find friends: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}

func (r *friendRepository) FindCommonFriends(ctx context.Context, userID, otherID int) ([]*entity.User, error) {
	query := `
		SELECT u.user_id, u.email, u.login, u.name, u.birthday
		FROM users u
		INNER JOIN friends f1 ON f1.friend_id = u.user_id AND f1.user_id = $1
		INNER JOIN friends f2 ON f2.friend_id = u.user_id AND f2.user_id = $2
		ORDER BY u.user_id
	`

	rows, err := r.db.Query(ctx, query, userID, otherID)
	if err != nil {
		r.log.Error("Failed to find common friends",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("other_id", otherID),
		)
		return nil, fmt.Errorf("find common friends: %w", err)
	}
	defer rows.Close()

	return scanUsers(rows)
}
