package entity

import (
	"time"
)

type User struct {
	ID       int       `db:"user_id"`
	Email    string    `db:"email"`
	Login    string    `db:"login"`
	Name     string    `db:"name"`
	Birthday time.Time `db:"birthday"`
}
