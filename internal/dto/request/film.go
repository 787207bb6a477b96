package request

// RefID references a genre, MPA rating or director by id.
type RefID struct {
	ID int `json:"id" validate:"required"`
}

type FilmRequest struct {
	ID          int     `json:"id"`
	Name        string  `json:"name" validate:"required,notblank"`
	Description string  `json:"description" validate:"max=200"`
	ReleaseDate string  `json:"releaseDate" validate:"required,datetime=2006-01-02,releasedate"`
	Duration    int     `json:"duration" validate:"required,gt=0"`
	Mpa         RefID   `json:"mpa" validate:"required"`
	Genres      []RefID `json:"genres" validate:"omitempty,dive"`
	Directors   []RefID `json:"directors" validate:"omitempty,dive"`
}
