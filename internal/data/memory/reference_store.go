package memory

import (
	"context"

	"film-social/internal/data/entity"
)

// GenreStore and MpaStore serve the fixed reference data the database would
// normally be seeded with.

type GenreStore struct {
	genres []*entity.Genre
}

func NewGenreStore() *GenreStore {
	return &GenreStore{
		genres: []*entity.Genre{
			{ID: 1, Name: "Comedy"},
			{ID: 2, Name: "Drama"},
			{ID: 3, Name: "Animation"},
			{ID: 4, Name: "Thriller"},
			{ID: 5, Name: "Documentary"},
			{ID: 6, Name: "Action"},
		},
	}
}

func (s *GenreStore) FindAll(ctx context.Context) ([]*entity.Genre, error) {
	genres := make([]*entity.Genre, len(s.genres))
	for i, genre := range s.genres {
		found := *genre
		genres[i] = &found
	}
	return genres, nil
}

func (s *GenreStore) FindByID(ctx context.Context, id int) (*entity.Genre, error) {
	for _, genre := range s.genres {
		if genre.ID == id {
			found := *genre
			return &found, nil
		}
	}
	return nil, nil
}

type MpaStore struct {
	ratings []*entity.Mpa
}

func NewMpaStore() *MpaStore {
	return &MpaStore{
		ratings: []*entity.Mpa{
			{ID: 1, Name: "G"},
			{ID: 2, Name: "PG"},
			{ID: 3, Name: "PG-13"},
			{ID: 4, Name: "R"},
			{ID: 5, Name: "NC-17"},
		},
	}
}

func (s *MpaStore) FindAll(ctx context.Context) ([]*entity.Mpa, error) {
	ratings := make([]*entity.Mpa, len(s.ratings))
	for i, mpa := range s.ratings {
		found := *mpa
		ratings[i] = &found
	}
	return ratings, nil
}

func (s *MpaStore) FindByID(ctx context.Context, id int) (*entity.Mpa, error) {
	for _, mpa := range s.ratings {
		if mpa.ID == id {
			found := *mpa
			return &found, nil
		}
	}
	return nil, nil
}
