package usecase

import (
	"context"
	"fmt"
	"time"

	"film-social/internal/data/cache"
	"film-social/internal/data/entity"
	"film-social/internal/data/repository"
	"film-social/internal/dto/request"
	"film-social/internal/dto/response"
	"film-social/pkg/utils"

	"go.uber.org/zap"
)

type FilmService interface {
	CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error)
	UpdateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error)
	GetFilms(ctx context.Context) ([]response.FilmResponse, error)
	GetFilmByID(ctx context.Context, id int) (*response.FilmResponse, error)
	DeleteFilm(ctx context.Context, id int) error

	AddLike(ctx context.Context, filmID, userID int) error
	RemoveLike(ctx context.Context, filmID, userID int) error

	GetPopular(ctx context.Context, count int, genreID, year *int) ([]response.FilmResponse, error)
	GetCommonFilms(ctx context.Context, userID, friendID int) ([]response.FilmResponse, error)
	GetFilmsByDirector(ctx context.Context, directorID int, sortBy string) ([]response.FilmResponse, error)
	SearchFilms(ctx context.Context, query, by string) ([]response.FilmResponse, error)

	GetGenres(ctx context.Context) ([]response.GenreResponse, error)
	GetGenreByID(ctx context.Context, id int) (*response.GenreResponse, error)
	GetMpaAll(ctx context.Context) ([]response.MpaResponse, error)
	GetMpaByID(ctx context.Context, id int) (*response.MpaResponse, error)
}

type filmService struct {
	repo  *repository.Repository
	feed  FeedService
	cache *cache.FilmCache
	log   *zap.Logger
}

func NewFilmService(repo *repository.Repository, feed FeedService, filmCache *cache.FilmCache, log *zap.Logger) FilmService {
	return &filmService{
		repo:  repo,
		feed:  feed,
		cache: filmCache,
		log:   log.With(zap.String("service", "film")),
	}
}

func (s *filmService) CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error) {
	film, err := s.buildFilm(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Film.Create(ctx, film); err != nil {
		return nil, fmt.Errorf("create film: %w", err)
	}

	s.log.Info("Film created",
		zap.Int("film_id", film.ID),
		zap.String("name", film.Name),
	)

	return s.loadFilm(ctx, film.ID)
}

func (s *filmService) UpdateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error) {
	existing, err := s.repo.Film.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("find film: %w", err)
	}
	if existing == nil {
		return nil, ErrFilmNotFound
	}

	film, err := s.buildFilm(ctx, req)
	if err != nil {
		return nil, err
	}
	film.ID = req.ID

	if err := s.repo.Film.Update(ctx, film); err != nil {
		return nil, fmt.Errorf("update film: %w", err)
	}

	s.log.Info("Film updated", zap.Int("film_id", film.ID))

	return s.loadFilm(ctx, film.ID)
}

func (s *filmService) GetFilms(ctx context.Context) ([]response.FilmResponse, error) {
	films, err := s.repo.Film.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get films: %w", err)
	}

	return response.FilmsToResponse(films), nil
}

func (s *filmService) GetFilmByID(ctx context.Context, id int) (*response.FilmResponse, error) {
	return s.loadFilm(ctx, id)
}

func (s *filmService) DeleteFilm(ctx context.Context, id int) error {
	film, err := s.repo.Film.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find film: %w", err)
	}
	if film == nil {
		return ErrFilmNotFound
	}

	if err := s.repo.Film.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete film: %w", err)
	}

	s.log.Info("Film deleted", zap.Int("film_id", id))
	return nil
}

func (s *filmService) AddLike(ctx context.Context, filmID, userID int) error {
	if err := s.checkFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}

	if err := s.repo.Like.Add(ctx, filmID, userID); err != nil {
		return fmt.Errorf("add like: %w", err)
	}

	s.cache.Invalidate(ctx, cache.RecommendationsKey(userID))

	s.log.Info("Like added",
		zap.Int("film_id", filmID),
		zap.Int("user_id", userID),
	)

	return s.feed.Record(ctx, userID, entity.FeedEventLike, entity.FeedOpAdd, filmID)
}

func (s *filmService) RemoveLike(ctx context.Context, filmID, userID int) error {
	if err := s.checkFilmAndUser(ctx, filmID, userID); err != nil {
		return err
	}

	if err := s.repo.Like.Remove(ctx, filmID, userID); err != nil {
		return fmt.Errorf("remove like: %w", err)
	}

	s.cache.Invalidate(ctx, cache.RecommendationsKey(userID))

	s.log.Info("Like removed",
		zap.Int("film_id", filmID),
		zap.Int("user_id", userID),
	)

	return s.feed.Record(ctx, userID, entity.FeedEventLike, entity.FeedOpRemove, filmID)
}

func (s *filmService) GetPopular(ctx context.Context, count int, genreID, year *int) ([]response.FilmResponse, error) {
	key := cache.PopularKey(count, genreID, year)
	if films, ok := s.cache.GetFilms(ctx, key); ok {
		return response.FilmsToResponse(films), nil
	}

	films, err := s.repo.Film.FindPopular(ctx, count, genreID, year)
	if err != nil {
		return nil, fmt.Errorf("get popular films: %w", err)
	}

	s.cache.SetFilms(ctx, key, films)

	return response.FilmsToResponse(films), nil
}

func (s *filmService) GetCommonFilms(ctx context.Context, userID, friendID int) ([]response.FilmResponse, error) {
	if err := s.checkUsersExist(ctx, userID, friendID); err != nil {
		return nil, err
	}

	films, err := s.repo.Film.FindCommon(ctx, userID, friendID)
	if err != nil {
		return nil, fmt.Errorf("get common films: %w", err)
	}

	return response.FilmsToResponse(films), nil
}

func (s *filmService) GetFilmsByDirector(ctx context.Context, directorID int, sortBy string) ([]response.FilmResponse, error) {
	director, err := s.repo.Director.FindByID(ctx, directorID)
	if err != nil {
		return nil, fmt.Errorf("find director: %w", err)
	}
	if director == nil {
		return nil, ErrDirectorNotFound
	}

	if sortBy != "year" && sortBy != "likes" {
		return nil, fmt.Errorf("%w: sortBy must be year or likes", ErrValidation)
	}

	films, err := s.repo.Film.FindByDirector(ctx, directorID, sortBy)
	if err != nil {
		return nil, fmt.Errorf("get films by director: %w", err)
	}

	return response.FilmsToResponse(films), nil
}

func (s *filmService) SearchFilms(ctx context.Context, query, by string) ([]response.FilmResponse, error) {
	byTitle, byDirector, err := parseSearchBy(by)
	if err != nil {
		return nil, err
	}

	films, err := s.repo.Film.Search(ctx, query, byTitle, byDirector)
	if err != nil {
		return nil, fmt.Errorf("search films: %w", err)
	}

	return response.FilmsToResponse(films), nil
}

func (s *filmService) GetGenres(ctx context.Context) ([]response.GenreResponse, error) {
	genres, err := s.repo.Genre.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get genres: %w", err)
	}

	return response.GenresToResponse(genres), nil
}

func (s *filmService) GetGenreByID(ctx context.Context, id int) (*response.GenreResponse, error) {
	genre, err := s.repo.Genre.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find genre: %w", err)
	}
	if genre == nil {
		return nil, ErrGenreNotFound
	}

	resp := response.GenreToResponse(genre)
	return &resp, nil
}

func (s *filmService) GetMpaAll(ctx context.Context) ([]response.MpaResponse, error) {
	ratings, err := s.repo.Mpa.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get mpa ratings: %w", err)
	}

	return response.MpaAllToResponse(ratings), nil
}

func (s *filmService) GetMpaByID(ctx context.Context, id int) (*response.MpaResponse, error) {
	mpa, err := s.repo.Mpa.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find mpa: %w", err)
	}
	if mpa == nil {
		return nil, ErrMpaNotFound
	}

	resp := response.MpaToResponse(mpa)
	return &resp, nil
}

func (s *filmService) loadFilm(ctx context.Context, id int) (*response.FilmResponse, error) {
	film, err := s.repo.Film.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find film: %w", err)
	}
	if film == nil {
		return nil, ErrFilmNotFound
	}

	resp := response.FilmToResponse(film)
	return &resp, nil
}

func (s *filmService) checkFilmAndUser(ctx context.Context, filmID, userID int) error {
	film, err := s.repo.Film.FindByID(ctx, filmID)
	if err != nil {
		return fmt.Errorf("find film: %w", err)
	}
	if film == nil {
		return ErrFilmNotFound
	}

	return s.checkUsersExist(ctx, userID)
}

func (s *filmService) checkUsersExist(ctx context.Context, ids ...int) error {
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

// buildFilm validates the request and resolves every genre, MPA and director
// reference. An unknown reference is rejected as a validation failure before
// anything is written.
func (s *filmService) buildFilm(ctx context.Context, req *request.FilmRequest) (*entity.Film, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Film validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	releaseDate, err := time.Parse(dateLayout, req.ReleaseDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid releaseDate", ErrValidation)
	}

	mpa, err := s.repo.Mpa.FindByID(ctx, req.Mpa.ID)
	if err != nil {
		return nil, fmt.Errorf("find mpa: %w", err)
	}
	if mpa == nil {
		return nil, fmt.Errorf("%w: unknown mpa id %d", ErrValidation, req.Mpa.ID)
	}

	genres := make([]entity.Genre, 0, len(req.Genres))
	for _, ref := range req.Genres {
		genre, err := s.repo.Genre.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("find genre: %w", err)
		}
		if genre == nil {
			return nil, fmt.Errorf("%w: unknown genre id %d", ErrValidation, ref.ID)
		}
		genres = append(genres, *genre)
	}

	directors := make([]entity.Director, 0, len(req.Directors))
	for _, ref := range req.Directors {
		director, err := s.repo.Director.FindByID(ctx, ref.ID)
		if err != nil {
			return nil, fmt.Errorf("find director: %w", err)
		}
		if director == nil {
			return nil, fmt.Errorf("%w: unknown director id %d", ErrValidation, ref.ID)
		}
		directors = append(directors, *director)
	}

	return &entity.Film{
		Name:        req.Name,
		Description: req.Description,
		ReleaseDate: releaseDate,
		Duration:    req.Duration,
		Mpa:         *mpa,
		Genres:      genres,
		Directors:   directors,
	}, nil
}

func parseSearchBy(by string) (byTitle, byDirector bool, err error) {
	if by == "" {
		return true, false, nil
	}

	switch by {
	case "title":
		return true, false, nil
	case "director":
		return false, true, nil
	case "title,director", "director,title":
		return true, true, nil
	default:
		return false, false, fmt.Errorf("%w: by must be title, director or both", ErrValidation)
	}
}
