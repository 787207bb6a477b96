package repository

import (
	"context"
	"fmt"

	"film-social/internal/data/entity"
	"film-social/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type DirectorRepository interface {
	Create(ctx context.Context, director *entity.Director) error
	Update(ctx context.Context, director *entity.Director) error
	FindAll(ctx context.Context) ([]*entity.Director, error)
	FindByID(ctx context.Context, id int) (*entity.Director, error)
	Delete(ctx context.Context, id int) error
}

type directorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewDirectorRepository(db database.PgxIface, log *zap.Logger) DirectorRepository {
	return &directorRepository{
		db:  db,
		log: log.With(zap.String("repository", "director")),
	}
}

func (r *directorRepository) Create(ctx context.Context, director *entity.Director) error {
	query := `INSERT INTO directors (name) VALUES ($1) RETURNING director_id`

	if err := r.db.QueryRow(ctx, query, director.Name).Scan(&director.ID); err != nil {
		r.log.Error("Failed to create director",
			zap.Error(err),
			zap.String("name", director.Name),
		)
		return fmt.Errorf("create director: %w", err)
	}

	return nil
}

func (r *directorRepository) Update(ctx context.Context, director *entity.Director) error {
	query := `UPDATE directors SET name = $2 WHERE director_id = $1`

	result, err := r.db.Exec(ctx, query, director.ID, director.Name)
	if err != nil {
		r.log.Error("Failed to update director",
			zap.Error(err),
			zap.Int("director_id", director.ID),
		)
		return fmt.Errorf("update director: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("director %d not found", director.ID)
	}

	return nil
}

func (r *directorRepository) FindAll(ctx context.Context) ([]*entity.Director, error) {
	query := `SELECT director_id, name FROM directors ORDER BY director_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all directors", zap.Error(err))
		return nil, fmt.Errorf("find directors: %w", err)
	}
	defer rows.Close()

	var directors []*entity.Director
	for rows.Next() {
		var director entity.Director
		if err := rows.Scan(&director.ID, &director.Name); err != nil {
			return nil, fmt.Errorf("scan director: %w", err)
		}
		directors = append(directors, &director)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate directors: %w", err)
	}

	return directors, nil
}

func (r *directorRepository) FindByID(ctx context.Context, id int) (*entity.Director, error) {
	query := `SELECT director_id, name FROM directors WHERE director_id = $1`

	var director entity.Director
	err := r.db.QueryRow(ctx, query, id).Scan(&director.ID, &director.Name)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find director by ID",
			zap.Error(err),
			zap.Int("director_id", id),
		)
		return nil, fmt.Errorf("find director: %w", err)
	}

	return &director, nil
}

func (r *directorRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM directors WHERE director_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete director",
			zap.Error(err),
			zap.Int("director_id", id),
		)
		return fmt.Errorf("delete director: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("director %d not found", id)
	}

	r.log.Info("Director deleted", zap.Int("director_id", id))
	return nil
}
