package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"film-social/internal/data/entity"
)

type DirectorStore struct {
	mu        sync.RWMutex
	seq       int
	directors map[int]*entity.Director
}

func NewDirectorStore() *DirectorStore {
	return &DirectorStore{directors: make(map[int]*entity.Director)}
}

func (s *DirectorStore) Create(ctx context.Context, director *entity.Director) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	director.ID = s.seq

	stored := *director
	s.directors[director.ID] = &stored
	return nil
}

func (s *DirectorStore) Update(ctx context.Context, director *entity.Director) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directors[director.ID]; !ok {
		return fmt.Errorf("director %d not found", director.ID)
	}

	stored := *director
	s.directors[director.ID] = &stored
	return nil
}

func (s *DirectorStore) FindAll(ctx context.Context) ([]*entity.Director, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	directors := make([]*entity.Director, 0, len(s.directors))
	for _, director := range s.directors {
		found := *director
		directors = append(directors, &found)
	}

	sort.Slice(directors, func(i, j int) bool { return directors[i].ID < directors[j].ID })
	return directors, nil
}

func (s *DirectorStore) FindByID(ctx context.Context, id int) (*entity.Director, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	director, ok := s.directors[id]
	if !ok {
		return nil, nil
	}

	found := *director
	return &found, nil
}

func (s *DirectorStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.directors[id]; !ok {
		return fmt.Errorf("director %d not found", id)
	}

	delete(s.directors, id)
	return nil
}
