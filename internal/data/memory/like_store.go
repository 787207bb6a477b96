package memory

import (
	"context"
	"sort"
	"sync"
)

// LikeStore is the user -> liked-films index with set semantics.
type LikeStore struct {
	mu     sync.RWMutex
	byUser map[int]map[int]struct{}
	byFilm map[int]map[int]struct{}
}

func NewLikeStore() *LikeStore {
	return &LikeStore{
		byUser: make(map[int]map[int]struct{}),
		byFilm: make(map[int]map[int]struct{}),
	}
}

func (s *LikeStore) Add(ctx context.Context, filmID, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byUser[userID] == nil {
		s.byUser[userID] = make(map[int]struct{})
	}
	s.byUser[userID][filmID] = struct{}{}

	if s.byFilm[filmID] == nil {
		s.byFilm[filmID] = make(map[int]struct{})
	}
	s.byFilm[filmID][userID] = struct{}{}
	return nil
}

func (s *LikeStore) Remove(ctx context.Context, filmID, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.byUser[userID], filmID)
	delete(s.byFilm[filmID], userID)
	return nil
}

func (s *LikeStore) FindFilmIDsByUser(ctx context.Context, userID int) ([]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var filmIDs []int
	for filmID := range s.byUser[userID] {
		filmIDs = append(filmIDs, filmID)
	}

	sort.Ints(filmIDs)
	return filmIDs, nil
}

func (s *LikeStore) FindLikesOfRelatedUsers(ctx context.Context, userID int) (map[int][]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	target := s.byUser[userID]
	likesByUser := make(map[int][]int)

	for uid, films := range s.byUser {
		if len(films) == 0 {
			continue
		}

		related := uid == userID
		if !related {
			for filmID := range films {
				if _, ok := target[filmID]; ok {
					related = true
					break
				}
			}
		}
		if !related {
			continue
		}

		filmIDs := make([]int, 0, len(films))
		for filmID := range films {
			filmIDs = append(filmIDs, filmID)
		}
		sort.Ints(filmIDs)
		likesByUser[uid] = filmIDs
	}

	return likesByUser, nil
}

// count returns the number of likes a film has.
func (s *LikeStore) count(filmID int) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byFilm[filmID])
}

// likedBy reports whether the user has liked the film.
func (s *LikeStore) likedBy(filmID, userID int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byFilm[filmID][userID]
	return ok
}
