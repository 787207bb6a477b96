package repository

import (
	"context"
	"fmt"
	"strings"

	"film-social/internal/data/entity"
	"film-social/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type FilmRepository interface {
	// CRUD Film
	Create(ctx context.Context, film *entity.Film) error
	Update(ctx context.Context, film *entity.Film) error
	FindByID(ctx context.Context, id int) (*entity.Film, error)
	FindAll(ctx context.Context) ([]*entity.Film, error)
	Delete(ctx context.Context, id int) error

	// FindByIDs returns films in the order the ids are given.
	FindByIDs(ctx context.Context, ids []int) ([]*entity.Film, error)

	// Read models over the like index
	FindPopular(ctx context.Context, count int, genreID, year *int) ([]*entity.Film, error)
	FindCommon(ctx context.Context, userID, friendID int) ([]*entity.Film, error)
	FindByDirector(ctx context.Context, directorID int, sortBy string) ([]*entity.Film, error)
	Search(ctx context.Context, query string, byTitle, byDirector bool) ([]*entity.Film, error)
}

const selectFilms = `
	SELECT f.film_id, f.name, f.description, f.release_date, f.duration,
	       m.mpa_id, m.name
	FROM films f
	INNER JOIN mpa m ON m.mpa_id = f.mpa_id
`

type filmRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmRepository(db database.PgxIface, log *zap.Logger) FilmRepository {
	return &filmRepository{
		db:  db,
		log: log.With(zap.String("repository", "film")),
	}
}

func (r *filmRepository) Create(ctx context.Context, film *entity.Film) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO films (name, description, release_date, duration, mpa_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING film_id
	`

	err = tx.QueryRow(ctx, query,
		film.Name,
		film.Description,
		film.ReleaseDate,
		film.Duration,
		film.Mpa.ID,
	).Scan(&film.ID)

	if err != nil {
		r.log.Error("Failed to create film",
			zap.Error(err),
			zap.String("name", film.Name),
		)
		return fmt.Errorf("create film: %w", err)
	}

	if err := insertFilmRelations(ctx, tx, film); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *filmRepository) Update(ctx context.Context, film *entity.Film) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE films
		SET name = $2, description = $3, release_date = $4, duration = $5, mpa_id = $6
		WHERE film_id = $1
	`

	result, err := tx.Exec(ctx, query,
		film.ID,
		film.Name,
		film.Description,
		film.ReleaseDate,
		film.Duration,
		film.Mpa.ID,
	)

	if err != nil {
		r.log.Error("Failed to update film",
			zap.Error(err),
			zap.Int("film_id", film.ID),
		)
		return fmt.Errorf("update film: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("film %d not found", film.ID)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM film_genres WHERE film_id = $1`, film.ID); err != nil {
		return fmt.Errorf("clear film genres: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM film_directors WHERE film_id = $1`, film.ID); err != nil {
		return fmt.Errorf("clear film directors: %w", err)
	}

	if err := insertFilmRelations(ctx, tx, film); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// insertFilmRelations writes genre links (insertion order preserved via the
// position column, duplicates by genre id dropped) and director links.
func insertFilmRelations(ctx context.Context, tx pgx.Tx, film *entity.Film) error {
	seenGenres := make(map[int]bool, len(film.Genres))
	position := 0
	for _, genre := range film.Genres {
		if seenGenres[genre.ID] {
			continue
		}
		seenGenres[genre.ID] = true

		_, err := tx.Exec(ctx,
			`INSERT INTO film_genres (film_id, genre_id, position) VALUES ($1, $2, $3)`,
			film.ID, genre.ID, position,
		)
		if err != nil {
			return fmt.Errorf("insert film genre: %w", err)
		}
		position++
	}

	seenDirectors := make(map[int]bool, len(film.Directors))
	for _, director := range film.Directors {
		if seenDirectors[director.ID] {
			continue
		}
		seenDirectors[director.ID] = true

		_, err := tx.Exec(ctx,
			`INSERT INTO film_directors (film_id, director_id) VALUES ($1, $2)`,
			film.ID, director.ID,
		)
		if err != nil {
			return fmt.Errorf("insert film director: %w", err)
		}
	}

	return nil
}

func (r *filmRepository) FindByID(ctx context.Context, id int) (*entity.Film, error) {
	query := selectFilms + ` WHERE f.film_id = $1`

	var film entity.Film
	err := r.db.QueryRow(ctx, query, id).Scan(
		&film.ID,
		&film.Name,
		&film.Description,
		&film.ReleaseDate,
		&film.Duration,
		&film.Mpa.ID,
		&film.Mpa.Name,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find film by ID",
			zap.Error(err),
			zap.Int("film_id", id),
		)
		return nil, fmt.Errorf("find film: %w", err)
	}

	if err := r.loadRelations(ctx, []*entity.Film{&film}); err != nil {
		return nil, err
	}

	return &film, nil
}

func (r *filmRepository) FindAll(ctx context.Context) ([]*entity.Film, error) {
	return r.queryFilms(ctx, selectFilms+` ORDER BY f.film_id`)
}

func (r *filmRepository) FindByIDs(ctx context.Context, ids []int) ([]*entity.Film, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	films, err := r.queryFilms(ctx, selectFilms+` WHERE f.film_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]*entity.Film, len(films))
	for _, film := range films {
		byID[film.ID] = film
	}

	ordered := make([]*entity.Film, 0, len(films))
	for _, id := range ids {
		if film, ok := byID[id]; ok {
			ordered = append(ordered, film)
		}
	}

	return ordered, nil
}

func (r *filmRepository) Delete(ctx context.Context, id int) error {
	query := `DELETE FROM films WHERE film_id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete film",
			zap.Error(err),
			zap.Int("film_id", id),
		)
		return fmt.Errorf("delete film: %w", err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("film %d not found", id)
	}

	r.log.Info("Film deleted", zap.Int("film_id", id))
	return nil
}

func (r *filmRepository) FindPopular(ctx context.Context, count int, genreID, year *int) ([]*entity.Film, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectFilms)
	queryBuilder.WriteString(` LEFT JOIN likes l ON l.film_id = f.film_id`)

	args := []interface{}{}
	conditions := []string{}

	if genreID != nil {
		queryBuilder.WriteString(` INNER JOIN film_genres fg ON fg.film_id = f.film_id`)
		args = append(args, *genreID)
		conditions = append(conditions, fmt.Sprintf("fg.genre_id = $%d", len(args)))
	}

	if year != nil {
		args = append(args, *year)
		conditions = append(conditions, fmt.Sprintf("EXTRACT(YEAR FROM f.release_date) = $%d", len(args)))
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}

	args = append(args, count)
	queryBuilder.WriteString(fmt.Sprintf(`
		GROUP BY f.film_id, f.name, f.description, f.release_date, f.duration, m.mpa_id, m.name
		ORDER BY COUNT(l.user_id) DESC, f.film_id ASC
		LIMIT $%d`, len(args)))

	return r.queryFilms(ctx, queryBuilder.String(), args...)
}

func (r *filmRepository) FindCommon(ctx context.Context, userID, friendID int) ([]*entity.Film, error) {
	query := selectFilms + `
		INNER JOIN likes l1 ON l1.film_id = f.film_id AND l1.user_id = $1
		INNER JOIN likes l2 ON l2.film_id = f.film_id AND l2.user_id = $2
		LEFT JOIN likes l ON l.film_id = f.film_id
		GROUP BY f.film_id, f.name, f.description, f.release_date, f.duration, m.mpa_id, m.name
		ORDER BY COUNT(l.user_id) DESC, f.film_id ASC
	`

	return r.queryFilms(ctx, query, userID, friendID)
}

func (r *filmRepository) FindByDirector(ctx context.Context, directorID int, sortBy string) ([]*entity.Film, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectFilms)
	queryBuilder.WriteString(` INNER JOIN film_directors fd ON fd.film_id = f.film_id`)

	switch sortBy {
	case "likes":
		queryBuilder.WriteString(` LEFT JOIN likes l ON l.film_id = f.film_id`)
		queryBuilder.WriteString(` WHERE fd.director_id = $1`)
		queryBuilder.WriteString(`
			GROUP BY f.film_id, f.name, f.description, f.release_date, f.duration, m.mpa_id, m.name
			ORDER BY COUNT(l.user_id) DESC, f.film_id ASC`)
	case "year":
		queryBuilder.WriteString(` WHERE fd.director_id = $1`)
		queryBuilder.WriteString(` ORDER BY f.release_date ASC, f.film_id ASC`)
	default:
		queryBuilder.WriteString(` WHERE fd.director_id = $1`)
		queryBuilder.WriteString(` ORDER BY f.film_id ASC`)
	}

	return r.queryFilms(ctx, queryBuilder.String(), directorID)
}

func (r *filmRepository) Search(ctx context.Context, query string, byTitle, byDirector bool) ([]*entity.Film, error) {
	pattern := "%" + strings.ToLower(query) + "%"

	var queryBuilder strings.Builder
	queryBuilder.WriteString(selectFilms)
	queryBuilder.WriteString(`
		LEFT JOIN film_directors fd ON fd.film_id = f.film_id
		LEFT JOIN directors d ON d.director_id = fd.director_id
		LEFT JOIN likes l ON l.film_id = f.film_id
	`)

	switch {
	case byTitle && byDirector:
		queryBuilder.WriteString(` WHERE LOWER(f.name) LIKE $1 OR LOWER(d.name) LIKE $1`)
	case byDirector:
		queryBuilder.WriteString(` WHERE LOWER(d.name) LIKE $1`)
	default:
		queryBuilder.WriteString(` WHERE LOWER(f.name) LIKE $1`)
	}

	queryBuilder.WriteString(`
		GROUP BY f.film_id, f.name, f.description, f.release_date, f.duration, m.mpa_id, m.name
		ORDER BY COUNT(l.user_id) DESC, f.film_id ASC`)

	return r.queryFilms(ctx, queryBuilder.String(), pattern)
}

func (r *filmRepository) queryFilms(ctx context.Context, query string, args ...interface{}) ([]*entity.Film, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to query films", zap.Error(err))
		return nil, fmt.Errorf("query films: %w", err)
	}
	defer rows.Close()

	var films []*entity.Film
	for rows.Next() {
		var film entity.Film
		err := rows.Scan(
			&film.ID,
			&film.Name,
			&film.Description,
			&film.ReleaseDate,
			&film.Duration,
			&film.Mpa.ID,
			&film.Mpa.Name,
		)
		if err != nil {
			return nil, fmt.Errorf("scan film: %w", err)
		}
		films = append(films, &film)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate films: %w", err)
	}

	if err := r.loadRelations(ctx, films); err != nil {
		return nil, err
	}

	return films, nil
}

// loadRelations batch-loads genres (in stored insertion order) and directors
// for the given films.
func (r *filmRepository) loadRelations(ctx context.Context, films []*entity.Film) error {
	if len(films) == 0 {
		return nil
	}

	byID := make(map[int]*entity.Film, len(films))
	ids := make([]int, 0, len(films))
	for _, film := range films {
		byID[film.ID] = film
		ids = append(ids, film.ID)
	}

	genreQuery := `
		SELECT fg.film_id, g.genre_id, g.name
		FROM film_genres fg
		INNER JOIN genres g ON g.genre_id = fg.genre_id
		WHERE fg.film_id = ANY($1)
		ORDER BY fg.film_id, fg.position
	`

	rows, err := r.db.Query(ctx, genreQuery, ids)
	if err != nil {
		return fmt.Errorf("load film genres: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var filmID int
		var genre entity.Genre
		if err := rows.Scan(&filmID, &genre.ID, &genre.Name); err != nil {
			return fmt.Errorf("scan film genre: %w", err)
		}
		if film, ok := byID[filmID]; ok {
			film.Genres = append(film.Genres, genre)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate film genres: %w", err)
	}

	directorQuery := `
		SELECT fd.film_id, d.director_id, d.name
		FROM film_directors fd
		INNER JOIN directors d ON d.director_id = fd.director_id
		WHERE fd.film_id = ANY($1)
		ORDER BY fd.film_id, d.director_id
	`

	dRows, err := r.db.Query(ctx, directorQuery, ids)
	if err != nil {
		return fmt.Errorf("load film directors: %w", err)
	}
	defer dRows.Close()

	for dRows.Next() {
		var filmID int
		var director entity.Director
		if err := dRows.Scan(&filmID, &director.ID, &director.Name); err != nil {
			return fmt.Errorf("scan film director: %w", err)
		}
		if film, ok := byID[filmID]; ok {
			film.Directors = append(film.Directors, director)
		}
	}
	if err := dRows.Err(); err != nil {
		return fmt.Errorf("iterate film directors: %w", err)
	}

	return nil
}
