package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"film-social/internal/data/entity"
)

type UserStore struct {
	mu    sync.RWMutex
	seq   int
	users map[int]*entity.User
}

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int]*entity.User)}
}

func (s *UserStore) Create(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	user.ID = s.seq

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *UserStore) Update(ctx context.Context, user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return fmt.Errorf("user %d not found", user.ID)
	}

	stored := *user
	s.users[user.ID] = &stored
	return nil
}

func (s *UserStore) FindByID(ctx context.Context, id int) (*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}

	found := *user
	return &found, nil
}

func (s *UserStore) FindAll(ctx context.Context) ([]*entity.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entity.User, 0, len(s.users))
	for _, user := range s.users {
		found := *user
		users = append(users, &found)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *UserStore) Delete(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return fmt.Errorf("user %d not found", id)
	}

	delete(s.users, id)
	return nil
}

// findMany resolves ids to users, skipping unknown ids, in ascending id order.
func (s *UserStore) findMany(ids map[int]struct{}) []*entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]*entity.User, 0, len(ids))
	for id := range ids {
		if user, ok := s.users[id]; ok {
			found := *user
			users = append(users, &found)
		}
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}
