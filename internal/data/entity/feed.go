package entity

type FeedEventType string

const (
	FeedEventLike   FeedEventType = "LIKE"
	FeedEventReview FeedEventType = "REVIEW"
	FeedEventFriend FeedEventType = "FRIEND"
)

type FeedOperation string

const (
	FeedOpAdd    FeedOperation = "ADD"
	FeedOpRemove FeedOperation = "REMOVE"
	FeedOpUpdate FeedOperation = "UPDATE"
)

// FeedEntry is one record in a user's activity feed. Entries are append-only:
// once written they are never mutated or deleted, even when the action they
// describe is later undone.
type FeedEntry struct {
	EventID   int           `db:"event_id"`
	Timestamp int64         `db:"event_timestamp"` // epoch millis, set on append
	UserID    int           `db:"user_id"`
	EventType FeedEventType `db:"event_type"`
	Operation FeedOperation `db:"operation"`
	EntityID  int           `db:"entity_id"`
}
