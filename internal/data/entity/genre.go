package entity

type Genre struct {
	ID   int    `db:"genre_id"`
	Name string `db:"name"`
}
