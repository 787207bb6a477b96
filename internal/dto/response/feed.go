package response

import (
	"film-social/internal/data/entity"
)

type FeedEntryResponse struct {
	EventID   int    `json:"eventId"`
	Timestamp int64  `json:"timestamp"`
	UserID    int    `json:"userId"`
	EventType string `json:"eventType"`
	Operation string `json:"operation"`
	EntityID  int    `json:"entityId"`
}

func FeedEntryToResponse(entry *entity.FeedEntry) FeedEntryResponse {
	return FeedEntryResponse{
		EventID:   entry.EventID,
		Timestamp: entry.Timestamp,
		UserID:    entry.UserID,
		EventType: string(entry.EventType),
		Operation: string(entry.Operation),
		EntityID:  entry.EntityID,
	}
}

func FeedToResponse(entries []*entity.FeedEntry) []FeedEntryResponse {
	responses := make([]FeedEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = FeedEntryToResponse(entry)
	}
	return responses
}
