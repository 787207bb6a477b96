package entity

import (
	"time"
)

// EarliestReleaseDate is the date of the first public film screening.
// No film can be released before it.
var EarliestReleaseDate = time.Date(1895, time.December, 28, 0, 0, 0, 0, time.UTC)

type Film struct {
	ID          int       `db:"film_id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	ReleaseDate time.Time `db:"release_date"`
	Duration    int       `db:"duration"`
	Mpa         Mpa
	// Genres keeps insertion order; duplicates by genre id are dropped on write.
	Genres    []Genre
	Directors []Director
}
