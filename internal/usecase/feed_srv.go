package usecase

import (
	"context"
	"fmt"
	"time"

	"film-social/internal/data/entity"
	"film-social/internal/data/repository"
	"film-social/internal/dto/response"

	"go.uber.org/zap"
)

// FeedService records social actions into the append-only activity log.
// Record is called only after the underlying index mutation has succeeded,
// so failed actions never leave feed entries behind.
type FeedService interface {
	Record(ctx context.Context, userID int, eventType entity.FeedEventType, operation entity.FeedOperation, entityID int) error
	GetUserFeed(ctx context.Context, userID int) ([]response.FeedEntryResponse, error)
}

type feedService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewFeedService(repo *repository.Repository, log *zap.Logger) FeedService {
	return &feedService{
		repo: repo,
		log:  log.With(zap.String("service", "feed")),
	}
}

func (s *feedService) Record(ctx context.Context, userID int, eventType entity.FeedEventType, operation entity.FeedOperation, entityID int) error {
	entry := &entity.FeedEntry{
		Timestamp: time.Now().UnixMilli(),
		UserID:    userID,
		EventType: eventType,
		Operation: operation,
		EntityID:  entityID,
	}

	if err := s.repo.Feed.Append(ctx, entry); err != nil {
		s.log.Error("Failed to record feed entry",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.String("event_type", string(eventType)),
			zap.String("operation", string(operation)),
			zap.Int("entity_id", entityID),
		)
		return fmt.Errorf("record feed entry: %w", err)
	}

	s.log.Debug("Feed entry recorded",
		zap.Int("event_id", entry.EventID),
		zap.Int("user_id", userID),
		zap.String("event_type", string(eventType)),
		zap.String("operation", string(operation)),
	)

	return nil
}

func (s *feedService) GetUserFeed(ctx context.Context, userID int) ([]response.FeedEntryResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	entries, err := s.repo.Feed.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user feed: %w", err)
	}

	return response.FeedToResponse(entries), nil
}
