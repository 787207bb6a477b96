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

type DirectorService interface {
	CreateDirector(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error)
	UpdateDirector(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error)
	GetDirectors(ctx context.Context) ([]response.DirectorResponse, error)
	GetDirectorByID(ctx context.Context, id int) (*response.DirectorResponse, error)
	DeleteDirector(ctx context.Context, id int) error
}

type directorService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewDirectorService(repo *repository.Repository, log *zap.Logger) DirectorService {
	return &directorService{
		repo: repo,
		log:  log.With(zap.String("service", "director")),
	}
}

func (s *directorService) CreateDirector(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Director validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	director := &entity.Director{Name: req.Name}
	if err := s.repo.Director.Create(ctx, director); err != nil {
		return nil, fmt.Errorf("create director: %w", err)
	}

	s.log.Info("Director created",
		zap.Int("director_id", director.ID),
		zap.String("name", director.Name),
	)

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) UpdateDirector(ctx context.Context, req *request.DirectorRequest) (*response.DirectorResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Director validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Director.FindByID(ctx, req.ID)
	if err != nil {
		return nil, fmt.Errorf("find director: %w", err)
	}
	if existing == nil {
		return nil, ErrDirectorNotFound
	}

	director := &entity.Director{ID: req.ID, Name: req.Name}
	if err := s.repo.Director.Update(ctx, director); err != nil {
		return nil, fmt.Errorf("update director: %w", err)
	}

	s.log.Info("Director updated", zap.Int("director_id", director.ID))

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) GetDirectors(ctx context.Context) ([]response.DirectorResponse, error) {
	directors, err := s.repo.Director.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get directors: %w", err)
	}

	return response.DirectorsToResponse(directors), nil
}

func (s *directorService) GetDirectorByID(ctx context.Context, id int) (*response.DirectorResponse, error) {
	director, err := s.repo.Director.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find director: %w", err)
	}
	if director == nil {
		return nil, ErrDirectorNotFound
	}

	resp := response.DirectorToResponse(director)
	return &resp, nil
}

func (s *directorService) DeleteDirector(ctx context.Context, id int) error {
	director, err := s.repo.Director.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find director: %w", err)
	}
	if director == nil {
		return ErrDirectorNotFound
	}

	if err := s.repo.Director.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete director: %w", err)
	}

	s.log.Info("Director deleted", zap.Int("director_id", id))
	return nil
}
