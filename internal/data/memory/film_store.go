package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"film-social/internal/data/entity"
)

type FilmStore struct {
	mu    sync.RWMutex
	seq   int
	films map[int]*entity.Film
	likes *LikeStore
}

func NewFilmStore(likes *LikeStore) *FilmStore {
	return &FilmStore{
		films: make(map[int]*entity.Film),
		likes: likes,
	}
}

func (s *FilmStore) Create(ctx context.Context, film *entity.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	film.ID = s.seq
	film.Genres = dedupGenres(film.Genres)
	film.Directors = dedupDirectors(film.Directors)

	s.films[film.ID] = copyFilm(film)
	return nil
}

func (s *FilmStore) Update(ctx context.Context, film *entity.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[film.ID]; !ok {
		return fmt.Errorf("film %d not found", film.ID)
	}

	film.Genres = dedupGenres(film.Genres)
	film.Directors = dedupDirectors(film.Directors)

	s.films[film.ID] = copyFilm(film)
	return nil
}

func (s *FilmStore) FindByID(ctx context.Context, id int) (*entity.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	film, ok := s.films[id]
	if !ok {
		return nil, nil
	}

	return copyFilm(film), nil
}

func (s *FilmStore) FindAll(ctx context.Context) ([]*entity.Film, error) {
	films := s.snapshot()
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })
	return films, nil
}

func (s *FilmStore) FindByIDs(ctx context.Context, ids []int) ([]*entity.Film, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	films := make([]*entity.Film, 0, len(ids))
	for _, id := range ids {
		if film, ok := s.films[id]; ok {
			films = append(films, copyFilm(film))
		}
	}

	return films, nil
}

func (s *FilmStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.films[id]; !ok {
		return fmt.Errorf("film %d not found", id)
	}

	delete(s.films, id)
	return nil
}

func (s *FilmStore) FindPopular(ctx context.Context, count int, genreID, year *int) ([]*entity.Film, error) {
	films := s.snapshot()

	filtered := films[:0]
	for _, film := range films {
		if genreID != nil && !hasGenre(film, *genreID) {
			continue
		}
		if year != nil && film.ReleaseDate.Year() != *year {
			continue
		}
		filtered = append(filtered, film)
	}

	s.sortByLikes(filtered)

	if count < len(filtered) {
		filtered = filtered[:count]
	}
	return filtered, nil
}

func (s *FilmStore) FindCommon(ctx context.Context, userID, friendID int) ([]*entity.Film, error) {
	films := s.snapshot()

	common := films[:0]
	for _, film := range films {
		if s.likes.likedBy(film.ID, userID) && s.likes.likedBy(film.ID, friendID) {
			common = append(common, film)
		}
	}

	s.sortByLikes(common)
	return common, nil
}

func (s *FilmStore) FindByDirector(ctx context.Context, directorID int, sortBy string) ([]*entity.Film, error) {
	films := s.snapshot()

	matched := films[:0]
	for _, film := range films {
		for _, director := range film.Directors {
			if director.ID == directorID {
				matched = append(matched, film)
				break
			}
		}
	}

	switch sortBy {
	case "year":
		sort.Slice(matched, func(i, j int) bool {
			if !matched[i].ReleaseDate.Equal(matched[j].ReleaseDate) {
				return matched[i].ReleaseDate.Before(matched[j].ReleaseDate)
			}
			return matched[i].ID < matched[j].ID
		})
	case "likes":
		s.sortByLikes(matched)
	default:
		sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	}

	return matched, nil
}

func (s *FilmStore) Search(ctx context.Context, query string, byTitle, byDirector bool) ([]*entity.Film, error) {
	needle := strings.ToLower(query)
	films := s.snapshot()

	matched := films[:0]
	for _, film := range films {
		hit := byTitle && strings.Contains(strings.ToLower(film.Name), needle)
		if !hit && byDirector {
			for _, director := range film.Directors {
				if strings.Contains(strings.ToLower(director.Name), needle) {
					hit = true
					break
				}
			}
		}
		if hit {
			matched = append(matched, film)
		}
	}

	s.sortByLikes(matched)
	return matched, nil
}

func (s *FilmStore) snapshot() []*entity.Film {
	s.mu.RLock()
	defer s.mu.RUnlock()

	films := make([]*entity.Film, 0, len(s.films))
	for _, film := range s.films {
		films = append(films, copyFilm(film))
	}
	return films
}

func (s *FilmStore) sortByLikes(films []*entity.Film) {
	sort.Slice(films, func(i, j int) bool {
		li, lj := s.likes.count(films[i].ID), s.likes.count(films[j].ID)
		if li != lj {
			return li > lj
		}
		return films[i].ID < films[j].ID
	})
}

func hasGenre(film *entity.Film, genreID int) bool {
	for _, genre := range film.Genres {
		if genre.ID == genreID {
			return true
		}
	}
	return false
}

func copyFilm(film *entity.Film) *entity.Film {
	copied := *film
	copied.Genres = append([]entity.Genre(nil), film.Genres...)
	copied.Directors = append([]entity.Director(nil), film.Directors...)
	return &copied
}

// dedupGenres drops duplicate genre ids, keeping first occurrence order.
func dedupGenres(genres []entity.Genre) []entity.Genre {
	seen := make(map[int]bool, len(genres))
	out := genres[:0]
	for _, genre := range genres {
		if seen[genre.ID] {
			continue
		}
		seen[genre.ID] = true
		out = append(out, genre)
	}
	return out
}

func dedupDirectors(directors []entity.Director) []entity.Director {
	seen := make(map[int]bool, len(directors))
	out := directors[:0]
	for _, director := range directors {
		if seen[director.ID] {
			continue
		}
		seen[director.ID] = true
		out = append(out, director)
	}
	return out
}
