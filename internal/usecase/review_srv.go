package usecase

import (
	"context"
	"fmt"

	"film-social/internal/data/entity"
	"film-social/internal/data/repository"
	"film-social/internal/dto/request"
	"film-social/internal/dto/response"
	"film-social/pkg/utils"

	"go.uber.org/zap"
)

// DefaultReviewCount caps review listings when the caller gives no count.
const DefaultReviewCount = 10

type ReviewService interface {
	CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error)
	UpdateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, id int) error
	GetReviewByID(ctx context.Context, id int) (*response.ReviewResponse, error)
	// GetReviews lists reviews ordered most useful first. A nil filmID means
	// all films.
	GetReviews(ctx context.Context, filmID *int, count int) ([]response.ReviewResponse, error)

	AddLike(ctx context.Context, reviewID, userID int) (*response.ReviewResponse, error)
	AddDislike(ctx context.Context, reviewID, userID int) (*response.ReviewResponse, error)
	RemoveLike(ctx context.Context, reviewID, userID int) (*response.ReviewResponse, error)
	RemoveDislike(ctx context.Context, reviewID, userID int) (*response.ReviewResponse, error)
}

type reviewService struct {
	repo *repository.Repository
	feed FeedService
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, feed FeedService, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		feed: feed,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userID, filmID := *req.UserID, *req.FilmID

	if err := s.checkUserExists(ctx, userID); err != nil {
		return nil, err
	}
	if err := s.checkFilmExists(ctx, filmID); err != nil {
		return nil, err
	}

	exists, err := s.repo.Review.ExistsByUserAndFilm(ctx, userID, filmID)
	if err != nil {
		return nil, fmt.Errorf("check review exists: %w", err)
	}
	if exists {
		return nil, ErrReviewExists
	}

	review := &entity.Review{
		Content:    req.Content,
		IsPositive: *req.IsPositive,
		UserID:     userID,
		FilmID:     filmID,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.Int("review_id", review.ID),
		zap.Int("user_id", userID),
		zap.Int("film_id", filmID),
	)

	if err := s.feed.Record(ctx, userID, entity.FeedEventReview, entity.FeedOpAdd, review.ID); err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) UpdateReview(ctx context.Context, req *request.ReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	stored, err := s.repo.Review.FindByID(ctx, req.ReviewID)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if stored == nil {
		return nil, ErrReviewNotFound
	}

	// Only content and verdict are updatable. Author, film and useful keep
	// their stored values whatever the request carries.
	stored.Content = req.Content
	stored.IsPositive = *req.IsPositive

	if err := s.repo.Review.Update(ctx, stored); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated", zap.Int("review_id", stored.ID))

	// The feed entry is attributed to the stored author, not the caller.
	if err := s.feed.Record(ctx, stored.UserID, entity.FeedEventReview, entity.FeedOpUpdate, stored.ID); err != nil {
		return nil, err
	}

	resp := response.ReviewToResponse(stored)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, id int) error {
	stored, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if stored == nil {
		return ErrReviewNotFound
	}

	if err := s.repo.Review.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.Info("Review deleted", zap.Int("review_id", id))

	return s.feed.Record(ctx, stored.UserID, entity.FeedEventReview, entity.FeedOpRemove, stored.ID)
}

func (s *reviewService) GetReviewByID(ctx context.Context, id int) (*response.ReviewResponse, error) {
	review, err := s.repo.Review.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetReviews(ctx context.Context, filmID *int, count int) ([]response.ReviewResponse, error) {
	if count <= 0 {
		count = DefaultReviewCount
	}

	var (
		reviews []*entity.Review
		err     error
	)
	if filmID == nil {
		reviews, err = s.repo.Review.FindAll(ctx, count)
	} else {
		if err := s.checkFilmExists(ctx, *filmID); err != nil {
			return nil, err
		}
		reviews, err = s.repo.Review.FindByFilmID(ctx, *filmID, count)
	}
	if err != nil {
		return nil, fmt.Errorf("get reviews: %w", err)
	}

	return response.ReviewsToResponse(reviews), nil
}

func (s *reviewService) AddLike(ctx context.Context, reviewID, userID int) (*response.ReviewResponse, error) {
	return s.setReaction(ctx, reviewID, userID, entity.ReactionLike)
}

func (s *reviewService) AddDislike(ctx context.Context, reviewID, userID int) (*response.ReviewResponse, error) {
	return s.setReaction(ctx, reviewID, userID, entity.ReactionDislike)
}

func (s *reviewService) RemoveLike(ctx context.Context, reviewID, userID int) (*response.ReviewResponse, error) {
	return s.clearReaction(ctx, reviewID, userID, entity.ReactionLike)
}

func (s *reviewService) RemoveDislike(ctx context.Context, reviewID, userID int) (*response.ReviewResponse, error) {
	return s.clearReaction(ctx, reviewID, userID, entity.ReactionDislike)
}

func (s *reviewService) setReaction(ctx context.Context, reviewID, userID int, reaction entity.Reaction) (*response.ReviewResponse, error) {
	if err := s.checkReviewAndUser(ctx, reviewID, userID); err != nil {
		return nil, err
	}

	if err := s.repo.Review.SetReaction(ctx, reviewID, userID, reaction); err != nil {
		return nil, fmt.Errorf("set reaction: %w", err)
	}

	s.log.Info("Reaction set",
		zap.Int("review_id", reviewID),
		zap.Int("user_id", userID),
		zap.String("reaction", string(reaction)),
	)

	// Review reactions never reach the feed.
	return s.GetReviewByID(ctx, reviewID)
}

func (s *reviewService) clearReaction(ctx context.Context, reviewID, userID int, reaction entity.Reaction) (*response.ReviewResponse, error) {
	if err := s.checkReviewAndUser(ctx, reviewID, userID); err != nil {
		return nil, err
	}

	if err := s.repo.Review.ClearReaction(ctx, reviewID, userID, reaction); err != nil {
		return nil, fmt.Errorf("clear reaction: %w", err)
	}

	s.log.Info("Reaction cleared",
		zap.Int("review_id", reviewID),
		zap.Int("user_id", userID),
		zap.String("reaction", string(reaction)),
	)

	return s.GetReviewByID(ctx, reviewID)
}

func (s *reviewService) checkReviewAndUser(ctx context.Context, reviewID, userID int) error {
	review, err := s.repo.Review.FindByID(ctx, reviewID)
	if err != nil {
		return fmt.Errorf("find review: %w", err)
	}
	if review == nil {
		return ErrReviewNotFound
	}

	return s.checkUserExists(ctx, userID)
}

func (s *reviewService) checkUserExists(ctx context.Context, id int) error {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	return nil
}

func (s *reviewService) checkFilmExists(ctx context.Context, id int) error {
	film, err := s.repo.Film.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find film: %w", err)
	}
	if film == nil {
		return ErrFilmNotFound
	}
	return nil
}
