package memory

import (
	"context"
	"sync"

	"film-social/internal/data/entity"
)

// FeedStore is an append-only log; entries are never touched after Append.
type FeedStore struct {
	mu      sync.RWMutex
	seq     int
	entries []*entity.FeedEntry
}

func NewFeedStore() *FeedStore {
	return &FeedStore{}
}

func (s *FeedStore) Append(ctx context.Context, entry *entity.FeedEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	entry.EventID = s.seq

	stored := *entry
	s.entries = append(s.entries, &stored)
	return nil
}

func (s *FeedStore) FindByUserID(ctx context.Context, userID int) ([]*entity.FeedEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entries []*entity.FeedEntry
	for _, entry := range s.entries {
		if entry.UserID == userID {
			found := *entry
			entries = append(entries, &found)
		}
	}
	return entries, nil
}
