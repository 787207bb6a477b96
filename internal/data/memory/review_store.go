package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"film-social/internal/data/entity"
)

// ReviewStore holds reviews, their reactions and the derived useful score.
// Reaction transitions take a per-review mutex so transitions on the same
// review are serialized while different reviews proceed in parallel.
type ReviewStore struct {
	mu        sync.RWMutex
	seq       int
	reviews   map[int]*entity.Review
	reactions map[int]map[int]entity.Reaction
	locks     map[int]*sync.Mutex
}

func NewReviewStore() *ReviewStore {
	return &ReviewStore{
		reviews:   make(map[int]*entity.Review),
		reactions: make(map[int]map[int]entity.Reaction),
		locks:     make(map[int]*sync.Mutex),
	}
}

func (s *ReviewStore) Create(ctx context.Context, review *entity.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	review.ID = s.seq
	review.Useful = 0

	stored := *review
	s.reviews[review.ID] = &stored
	s.reactions[review.ID] = make(map[int]entity.Reaction)
	s.locks[review.ID] = &sync.Mutex{}
	return nil
}

func (s *ReviewStore) Update(ctx context.Context, review *entity.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.reviews[review.ID]
	if !ok {
		return fmt.Errorf("review %d not found", review.ID)
	}

	stored.Content = review.Content
	stored.IsPositive = review.IsPositive
	return nil
}

func (s *ReviewStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return fmt.Errorf("review %d not found", id)
	}

	delete(s.reviews, id)
	delete(s.reactions, id)
	delete(s.locks, id)
	return nil
}

func (s *ReviewStore) FindByID(ctx context.Context, id int) (*entity.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok {
		return nil, nil
	}

	found := *review
	return &found, nil
}

func (s *ReviewStore) FindAll(ctx context.Context, limit int) ([]*entity.Review, error) {
	return s.collect(limit, func(*entity.Review) bool { return true }), nil
}

func (s *ReviewStore) FindByFilmID(ctx context.Context, filmID, limit int) ([]*entity.Review, error) {
	return s.collect(limit, func(review *entity.Review) bool { return review.FilmID == filmID }), nil
}

func (s *ReviewStore) ExistsByUserAndFilm(ctx context.Context, userID, filmID int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, review := range s.reviews {
		if review.UserID == userID && review.FilmID == filmID {
			return true, nil
		}
	}
	return false, nil
}

func (s *ReviewStore) SetReaction(ctx context.Context, reviewID, userID int, reaction entity.Reaction) error {
	lock, err := s.reviewLock(reviewID)
	if err != nil {
		return err
	}
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	review, ok := s.reviews[reviewID]
	if !ok {
		return fmt.Errorf("review %d not found", reviewID)
	}

	current, has := s.reactions[reviewID][userID]
	delta := reactionWeight(reaction)

	switch {
	case has && current == reaction:
		return nil
	case !has:
		// NONE -> LIKED / DISLIKED
	default:
		// opposite reaction: single transition worth two units
		delta *= 2
	}

	s.reactions[reviewID][userID] = reaction
	review.Useful += delta
	return nil
}

func (s *ReviewStore) ClearReaction(ctx context.Context, reviewID, userID int, reaction entity.Reaction) error {
	lock, err := s.reviewLock(reviewID)
	if err != nil {
		return err
	}
	lock.Lock()
	defer lock.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	review, ok := s.reviews[reviewID]
	if !ok {
		return fmt.Errorf("review %d not found", reviewID)
	}

	current, has := s.reactions[reviewID][userID]
	if !has || current != reaction {
		return nil
	}

	delete(s.reactions[reviewID], userID)
	review.Useful -= reactionWeight(reaction)
	return nil
}

func (s *ReviewStore) reviewLock(reviewID int) (*sync.Mutex, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lock, ok := s.locks[reviewID]
	if !ok {
		return nil, fmt.Errorf("review %d not found", reviewID)
	}
	return lock, nil
}

func (s *ReviewStore) collect(limit int, match func(*entity.Review) bool) []*entity.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reviews []*entity.Review
	for _, review := range s.reviews {
		if match(review) {
			found := *review
			reviews = append(reviews, &found)
		}
	}

	sort.Slice(reviews, func(i, j int) bool {
		if reviews[i].Useful != reviews[j].Useful {
			return reviews[i].Useful > reviews[j].Useful
		}
		return reviews[i].ID < reviews[j].ID
	})

	if limit > 0 && limit < len(reviews) {
		reviews = reviews[:limit]
	}
	return reviews
}

func reactionWeight(reaction entity.Reaction) int {
	if reaction == entity.ReactionLike {
		return 1
	}
	return -1
}
