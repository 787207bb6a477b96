package memory

import (
	"context"
	"sync"

	"film-social/internal/data/entity"
)

// FriendStore keeps the directed friendship edges. Mutations and reads on the
// edge sets are serialized through the store mutex.
type FriendStore struct {
	mu    sync.RWMutex
	edges map[int]map[int]struct{}
	users *UserStore
}

func NewFriendStore(users *UserStore) *FriendStore {
	return &FriendStore{
		edges: make(map[int]map[int]struct{}),
		users: users,
	}
}

func (s *FriendStore) Add(ctx context.Context, userID, friendID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.edges[userID] == nil {
		s.edges[userID] = make(map[int]struct{})
	}
	s.edges[userID][friendID] = struct{}{}
	return nil
}

func (s *FriendStore) Remove(ctx context.Context, userID, friendID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.edges[userID], friendID)
	return nil
}

func (s *FriendStore) FindFriends(ctx context.Context, userID int) ([]*entity.User, error) {
	s.mu.RLock()
	ids := make(map[int]struct{}, len(s.edges[userID]))
	for id := range s.edges[userID] {
		ids[id] = struct{}{}
	}
	s.mu.RUnlock()

	return s.users.findMany(ids), nil
}

func (s *FriendStore) FindCommonFriends(ctx context.Context, userID, otherID int) ([]*entity.User, error) {
	s.mu.RLock()
	common := make(map[int]struct{})
	for id := range s.edges[userID] {
		if _, ok := s.edges[otherID][id]; ok {
			common[id] = struct{}{}
		}
	}
	s.mu.RUnlock()

	return s.users.findMany(common), nil
}
