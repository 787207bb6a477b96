package repository

import (
	"context"
	"fmt"

	"film-social/internal/data/entity"
	"film-social/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type MpaRepository interface {
	FindAll(ctx context.Context) ([]*entity.Mpa, error)
	FindByID(ctx context.Context, id int) (*entity.Mpa, error)
}

type mpaRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMpaRepository(db database.PgxIface, log *zap.Logger) MpaRepository {
	return &mpaRepository{
		db:  db,
		log: log.With(zap.String("repository", "mpa")),
	}
}

func (r *mpaRepository) FindAll(ctx context.Context) ([]*entity.Mpa, error) {
	query := `SELECT mpa_id, name FROM mpa ORDER BY mpa_id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all MPA ratings", zap.Error(err))
		return nil, fmt.Errorf("find mpa ratings: %w", err)
	}
	defer rows.Close()

	var ratings []*entity.Mpa
	for rows.Next() {
		var mpa entity.Mpa
		if err := rows.Scan(&mpa.ID, &mpa.Name); err != nil {
			return nil, fmt.Errorf("scan mpa: %w", err)
		}
		ratings = append(ratings, &mpa)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mpa ratings: %w", err)
	}

	return ratings, nil
}

func (r *mpaRepository) FindByID(ctx context.Context, id int) (*entity.Mpa, error) {
	query := `SELECT mpa_id, name FROM mpa WHERE mpa_id = $1`

	var mpa entity.Mpa
	err := r.db.QueryRow(ctx, query, id).Scan(&mpa.ID, &mpa.Name)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find MPA rating by ID",
			zap.Error(err),
			zap.Int("mpa_id", id),
		)
		return nil, fmt.Errorf("find mpa: %w", err)
	}

	return &mpa, nil
}
