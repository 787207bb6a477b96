package repository

import (
	"context"
	"fmt"

	"film-social/internal/data/entity"
	"film-social/pkg/database"

	"go.uber.org/zap"
)

// FeedRepository is an append-only event log. Entries are never updated or
// deleted; per-user ordering is the insertion order (event id ascending).
type FeedRepository interface {
	Append(ctx context.Context, entry *entity.FeedEntry) error
	FindByUserID(ctx context.Context, userID int) ([]*entity.FeedEntry, error)
}

type feedRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFeedRepository(db database.PgxIface, log *zap.Logger) FeedRepository {
	return &feedRepository{
		db:  db,
		log: log.With(zap.String("repository", "feed")),
	}
}

func (r *feedRepository) Append(ctx context.Context, entry *entity.FeedEntry) error {
	query := `
		INSERT INTO feed (event_timestamp, user_id, event_type, operation, entity_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING event_id
	`

	err := r.db.QueryRow(ctx, query,
		entry.Timestamp,
		entry.UserID,
		string(entry.EventType),
		string(entry.Operation),
		entry.EntityID,
	).Scan(&entry.EventID)

	if err != nil {
		r.log.Error("Failed to append feed entry",
			zap.Error(err),
			zap.Int("user_id", entry.UserID),
			zap.String("event_type", string(entry.EventType)),
			zap.String("operation", string(entry.Operation)),
		)
		return fmt.Errorf("append feed entry: %w", err)
	}

	return nil
}

func (r *feedRepository) FindByUserID(ctx context.Context, userID int) ([]*entity.FeedEntry, error) {
	query := `
		SELECT event_id, event_timestamp, user_id, event_type, operation, entity_id
		FROM feed
		WHERE user_id = $1
		ORDER BY event_id
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find feed by user",
			zap.Error(err),
			zap.Int("user_id", userID),
		)
		return nil, fmt.Errorf("find feed: %w", err)
	}
	defer rows.Close()

	var entries []*entity.FeedEntry
	for rows.Next() {
		var entry entity.FeedEntry
		var eventType, operation string
		err := rows.Scan(
			&entry.EventID,
			&entry.Timestamp,
			&entry.UserID,
			&eventType,
			&operation,
			&entry.EntityID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan feed entry: %w", err)
		}
		entry.EventType = entity.FeedEventType(eventType)
		entry.Operation = entity.FeedOperation(operation)
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feed: %w", err)
	}

	return entries, nil
}
