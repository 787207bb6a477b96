package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"film-social/internal/data/cache"
	"film-social/internal/data/entity"
	"film-social/internal/data/repository"
	"film-social/internal/dto/request"
	"film-social/internal/dto/response"
	"film-social/pkg/utils"

	"go.uber.org/zap"
)

const dateLayout = "2006-01-02"

type UserService interface {
	CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error)
	GetUsers(ctx context.Context) ([]response.UserResponse, error)
	GetUserByID(ctx context.Context, id int) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, id int) error

	// Social graph
	AddFriend(ctx context.Context, id, friendID int) error
	RemoveFriend(ctx context.Context, id, friendID int) error
	GetFriends(ctx context.Context, id int) ([]response.UserResponse, error)
	GetCommonFriends(ctx context.Context, id, otherID int) ([]response.UserResponse, error)

	// GetRecommendations suggests films liked by the user's taste neighbors.
	GetRecommendations(ctx context.Context, id int) ([]response.FilmResponse, error)
}

type userService struct {
	repo  *repository.Repository
	feed  FeedService
	cache *cache.FilmCache
	log   *zap.Logger
}

func NewUserService(repo *repository.Repository, feed FeedService, filmCache *cache.FilmCache, log *zap.Logger) UserService {
	return &userService{
		repo:  repo,
		feed:  feed,
		cache: filmCache,
		log:   log.With(zap.String("service", "user")),
	}
}

func (s *userService) CreateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error) {
	user, err := s.buildUser(req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.Info("User created",
		zap.Int("user_id", user.ID),
		zap.String("login", user.Login),
	)

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, req *request.UserRequest) (*response.UserResponse, error) {
	existing, err := s.repo.User.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if existing == nil {
		return nil, ErrUserNotFound
	}

	user, err := s.buildUser(req)
	if err != nil {
		return nil, err
	}
	user.ID = req.ID

	if err := s.repo.User.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	s.log.Info("User updated", zap.Int("user_id", user.ID))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]response.UserResponse, error) {
	users, err := s.repo.User.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}

	return response.UsersToResponse(users), nil
}

func (s *userService) GetUserByID(ctx context.Context, id int) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) DeleteUser(ctx context.Context, id int) error {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.Info("User deleted", zap.Int("user_id", id))
	return nil
}

func (s *userService) AddFriend(ctx context.Context, id, friendID int) error {
	if err := s.checkUsersExist(ctx, id, friendID); err != nil {
		return err
	}

	if err := s.repo.Friend.Add(ctx, id, friendID); err != nil {
		return fmt.Errorf("add friend: %w", err)
	}

	s.log.Info("Friend added",
		zap.Int("user_id", id),
		zap.Int("friend_id", friendID),
	)

	return s.feed.Record(ctx, id, entity.FeedEventFriend, entity.FeedOpAdd, friendID)
}

func (s *userService) RemoveFriend(ctx context.Context, id, friendID int) error {
	if err := s.checkUsersExist(ctx, id, friendID); err != nil {
		return err
	}

	if err := s.repo.Friend.Remove(ctx, id, friendID); err != nil {
		return fmt.Errorf("remove friend: %w", err)
	}

	s.log.Info("Friend removed",
		zap.Int("user_id", id),
		zap.Int("friend_id", friendID),
	)

	return s.feed.Record(ctx, id, entity.FeedEventFriend, entity.FeedOpRemove, friendID)
}

func (s *userService) GetFriends(ctx context.Context, id int) ([]response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	friends, err := s.repo.Friend.FindFriends(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get friends: %w", err)
	}

	return response.UsersToResponse(friends), nil
}

func (s *userService) GetCommonFriends(ctx context.Context, id, otherID int) ([]response.UserResponse, error) {
	common, err := s.repo.Friend.FindCommonFriends(ctx, id, otherID)
	if err != nil {
		return nil, fmt.Errorf("get common friends: %w", err)
	}

	return response.UsersToResponse(common), nil
}

// GetRecommendations implements the most-similar-taste heuristic: find the
// users whose liked-film sets overlap the target's the most, and suggest
// everything they liked that the target has not. Only the top overlap tier
// contributes; candidates come back in ascending film id, a deliberately
// deterministic order.
func (s *userService) GetRecommendations(ctx context.Context, id int) ([]response.FilmResponse, error) {
	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	key := cache.RecommendationsKey(id)
	if films, ok := s.cache.GetFilms(ctx, key); ok {
		return response.FilmsToResponse(films), nil
	}

	likesByUser, err := s.repo.Like.FindLikesOfRelatedUsers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get like index: %w", err)
	}

	own := likesByUser[id]
	if len(own) == 0 {
		return []response.FilmResponse{}, nil
	}
	delete(likesByUser, id)

	ownSet := make(map[int]struct{}, len(own))
	for _, filmID := range own {
		ownSet[filmID] = struct{}{}
	}

	maxOverlap := 0
	overlaps := make(map[int]int, len(likesByUser))
	for uid, films := range likesByUser {
		overlap := 0
		for _, filmID := range films {
			if _, ok := ownSet[filmID]; ok {
				overlap++
			}
		}
		overlaps[uid] = overlap
		if overlap > maxOverlap {
			maxOverlap = overlap
		}
	}

	if maxOverlap == 0 {
		// no taste neighbors; never fall back to globally popular films
		return []response.FilmResponse{}, nil
	}

	candidates := make(map[int]struct{})
	for uid, films := range likesByUser {
		if overlaps[uid] != maxOverlap {
			continue
		}
		for _, filmID := range films {
			if _, liked := ownSet[filmID]; !liked {
				candidates[filmID] = struct{}{}
			}
		}
	}

	filmIDs := make([]int, 0, len(candidates))
	for filmID := range candidates {
		filmIDs = append(filmIDs, filmID)
	}
	sort.Ints(filmIDs)

	films, err := s.repo.Film.FindByIDs(ctx, filmIDs)
	if err != nil {
		return nil, fmt.Errorf("get recommended films: %w", err)
	}

	s.cache.SetFilms(ctx, key, films)

	s.log.Debug("Recommendations computed",
		zap.Int("user_id", id),
		zap.Int("max_overlap", maxOverlap),
		zap.Int("count", len(films)),
	)

	return response.FilmsToResponse(films), nil
}

func (s *userService) checkUsersExist(ctx context.Context, ids ...int) error {
	for _, id := range ids {
		user, err := s.repo.User.FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("find user: %w", err)
		}
		if user == nil {
			return ErrUserNotFound
		}
	}
	return nil
}

// buildUser validates the request and converts it into an entity. A blank
// display name falls back to the login.
func (s *userService) buildUser(req *request.UserRequest) (*entity.User, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("User validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	birthday, err := time.Parse(dateLayout, req.Birthday)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid birthday", ErrValidation)
	}

	name := req.Name
	if name == "" {
		name = req.Login
	}

	return &entity.User{
		Email:    req.Email,
		Login:    req.Login,
		Name:     name,
		Birthday: birthday,
	}, nil
}
