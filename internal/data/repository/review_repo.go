package repository

import (
	"context"
	"fmt"

	"film-social/internal/data/entity"
	"film-social/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	Update(ctx context.Context, review *entity.Review) error
	Delete(ctx context.Context, id int) error
	FindByID(ctx context.Context, id int) (*entity.Review, error)
	FindAll(ctx context.Context, limit int) ([]*entity.Review, error)
	FindByFilmID(ctx context.Context, filmID, limit int) ([]*entity.Review, error)
	ExistsByUserAndFilm(ctx context.Context, userID, filmID int) (bool, error)

	// SetReaction records the user's reaction on a review as a single atomic
	// transition. Re-applying the current reaction is a no-op; switching from
	// the opposite reaction moves useful by two in one step.
	SetReaction(ctx context.Context, reviewID, userID int, reaction entity.Reaction) error
	// ClearReaction removes the user's reaction only when it matches the one
	// being cleared; otherwise it is a no-op.
	ClearReaction(ctx context.Context, reviewID, userID int, reaction entity.Reaction) error
}

const selectReviews = `
	SELECT review_id, content, is_positive, user_id, film_id, useful
	FROM reviews
`

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (content, is_positive, user_id, film_id, useful)
		VALUES ($1, $2, $3, $4, 0)
		RETURNING review_id
	`

	err := r.db.QueryRow(ctx, query,
		review.Content,
		review.IsPositive,
		review.UserID,
		review.FilmID,
	).Scan(&review.ID)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.Int("user_id", review.UserID),
			zap.Int("film_id", review.FilmID),
		)
		return fmt.Errorf("create review: %w", err)
	}

	review.Useful = 0
	return nil
}

func (r *reviewRepository) Update(ctx context.Context, review *entity.Review) error {
	// Only content and positivity are mutable; author, film and useful are not.
	query := `
		UPDATE reviews
		SET content = $2, is_positive = $3
		WHERE review_id = $1
	`

	result, err := r.db.Exec(ctx, query, review.ID, review.Content, review.IsPositive)
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.Int("review_id", review.ID),
		)
		return fmt.Errorf("update review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d not found", review.ID)
	}

	return nil
}

func (r *reviewRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM reviews WHERE review_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.Int("review_id", id),
		)
		return fmt.Errorf("delete review: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("review %d not found", id)
	}

	r.log.Info("Review deleted", zap.Int("review_id", id))
	return nil
}

func (r *reviewRepository) FindByID(ctx context.Context, id int) (*entity.Review, error) {
	query := selectReviews + ` WHERE review_id = $1`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.Content,
		&review.IsPositive,
		&review.UserID,
		&review.FilmID,
		&review.Useful,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.Int("review_id", id),
		)
		return nil, fmt.Errorf("find review: %w", err)
	}

	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context, limit int) ([]*entity.Review, error) {
	query := selectReviews + ` ORDER BY useful DESC, review_id ASC LIMIT $1`
	return r.queryReviews(ctx, query, limit)
}

func (r *reviewRepository) FindByFilmID(ctx context.Context, filmID, limit int) ([]*entity.Review, error) {
	query := selectReviews + ` WHERE film_id = $1 ORDER BY useful DESC, review_id ASC LIMIT $2`
	return r.queryReviews(ctx, query, filmID, limit)
}

func (r *reviewRepository) ExistsByUserAndFilm(ctx context.Context, userID, filmID int) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM reviews WHERE user_id = $1 AND film_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, filmID).Scan(&exists); err != nil {
		r.log.Error("Failed to check review existence",
			zap.Error(err),
			zap.Int("user_id", userID),
			zap.Int("film_id", filmID),
		)
		return false, fmt.Errorf("check review existence: %w", err)
	}

	return exists, nil
}

func (r *reviewRepository) SetReaction(ctx context.Context, reviewID, userID int, reaction entity.Reaction) error {
	return r.withReviewLock(ctx, reviewID, userID, func(tx pgx.Tx, current *entity.Reaction) error {
		delta := reactionWeight(reaction)

		switch {
		case current != nil && *current == reaction:
			// already in the target state
			return nil
		case current == nil:
			_, err := tx.Exec(ctx,
				`INSERT INTO review_reactions (review_id, user_id, reaction) VALUES ($1, $2, $3)`,
				reviewID, userID, string(reaction),
			)
			if err != nil {
				return fmt.Errorf("insert reaction: %w", err)
			}
		default:
			// switching sides: one step undoes the old vote, one applies the new
			_, err := tx.Exec(ctx,
				`UPDATE review_reactions SET reaction = $3 WHERE review_id = $1 AND user_id = $2`,
				reviewID, userID, string(reaction),
			)
			if err != nil {
				return fmt.Errorf("switch reaction: %w", err)
			}
			delta *= 2
		}

		return moveUseful(ctx, tx, reviewID, delta)
	})
}

func (r *reviewRepository) ClearReaction(ctx context.Context, reviewID, userID int, reaction entity.Reaction) error {
	return r.withReviewLock(ctx, reviewID, userID, func(tx pgx.Tx, current *entity.Reaction) error {
		if current == nil || *current != reaction {
			// clearing a reaction that is not set is a no-op
			return nil
		}

		_, err := tx.Exec(ctx,
			`DELETE FROM review_reactions WHERE review_id = $1 AND user_id = $2`,
			reviewID, userID,
		)
		if err != nil {
			return fmt.Errorf("delete reaction: %w", err)
		}

		return moveUseful(ctx, tx, reviewID, -reactionWeight(reaction))
	})
}

// withReviewLock runs fn inside a transaction holding the review's row lock,
// so concurrent reaction transitions on the same review are serialized. It
// passes fn the user's current reaction, nil when none is recorded.
func (r *reviewRepository) withReviewLock(ctx context.Context, reviewID, userID int, fn func(tx pgx.Tx, current *entity.Reaction) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	var useful int
	err = tx.QueryRow(ctx,
		`SELECT useful FROM reviews WHERE review_id = $1 FOR UPDATE`, reviewID,
	).Scan(&useful)
	if err == pgx.ErrNoRows {
		return fmt.Errorf("review %d not found", reviewID)
	}
	if err != nil {
		return fmt.Errorf("lock review: %w", err)
	}

	var current *entity.Reaction
	var recorded string
	err = tx.QueryRow(ctx,
		`SELECT reaction FROM review_reactions WHERE review_id = $1 AND user_id = $2`,
		reviewID, userID,
	).Scan(&recorded)
	if err != nil && err != pgx.ErrNoRows {
		return fmt.Errorf("read current reaction: %w", err)
	}
	if err == nil {
		reaction := entity.Reaction(recorded)
		current = &reaction
	}

	if err := fn(tx, current); err != nil {
		r.log.Error("Reaction transition failed",
			zap.Error(err),
			zap.Int("review_id", reviewID),
			zap.Int("user_id", userID),
		)
		return err
	}

	return tx.Commit(ctx)
}

func reactionWeight(reaction entity.Reaction) int {
	if reaction == entity.ReactionLike {
		return 1
	}
	return -1
}

func moveUseful(ctx context.Context, tx pgx.Tx, reviewID, delta int) error {
	if delta == 0 {
		return nil
	}

	_, err := tx.Exec(ctx,
		`UPDATE reviews SET useful = useful + $2 WHERE review_id = $1`,
		reviewID, delta,
	)
	if err != nil {
		return fmt.Errorf("move useful: %w", err)
	}

	return nil
}

func (r *reviewRepository) queryReviews(ctx context.Context, query string, args ...interface{}) ([]*entity.Review, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query reviews", zap.Error(err))
		return nil, fmt.Errorf("query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.Review
	for rows.Next() {
		var review entity.Review
		err := rows.Scan(
			&review.ID,
			&review.Content,
			&review.IsPositive,
			&review.UserID,
			&review.FilmID,
			&review.Useful,
		)
		if err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, &review)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	return reviews, nil
}
