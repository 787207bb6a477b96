package entity

// Reaction is a single user's vote on a review. A user holds at most one
// reaction per review at any time.
type Reaction string

const (
	ReactionLike    Reaction = "LIKE"
	ReactionDislike Reaction = "DISLIKE"
)

// Review is a user's verdict on a film, at most one per (user, film) pair.
// Useful is derived state: likes minus dislikes over all reactions. It is
// never written directly, only moved by reaction transitions.
type Review struct {
	ID         int    `db:"review_id"`
	Content    string `db:"content"`
	IsPositive bool   `db:"is_positive"`
	UserID     int    `db:"user_id"`
	FilmID     int    `db:"film_id"`
	Useful     int    `db:"useful"`
}
