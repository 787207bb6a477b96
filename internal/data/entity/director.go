package entity

type Director struct {
	ID   int    `db:"director_id"`
	Name string `db:"name"`
}
