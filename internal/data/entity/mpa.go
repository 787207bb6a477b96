package entity

// Mpa is the fixed content-rating classification attached to a film.
type Mpa struct {
	ID   int    `db:"mpa_id"`
	Name string `db:"name"`
}
