package response

import (
	"film-social/internal/data/entity"
)

const dateLayout = "2006-01-02"

type FilmResponse struct {
	ID          int                `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	ReleaseDate string             `json:"releaseDate"`
	Duration    int                `json:"duration"`
	Mpa         MpaResponse        `json:"mpa"`
	Genres      []GenreResponse    `json:"genres"`
	Directors   []DirectorResponse `json:"directors"`
}

type GenreResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MpaResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type DirectorResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func FilmToResponse(film *entity.Film) FilmResponse {
	genres := make([]GenreResponse, len(film.Genres))
	for i, genre := range film.Genres {
		genres[i] = GenreResponse{ID: genre.ID, Name: genre.Name}
	}

	directors := make([]DirectorResponse, len(film.Directors))
	for i, director := range film.Directors {
		directors[i] = DirectorResponse{ID: director.ID, Name: director.Name}
	}

	return FilmResponse{
		ID:          film.ID,
		Name:        film.Name,
		Description: film.Description,
		ReleaseDate: film.ReleaseDate.Format(dateLayout),
		Duration:    film.Duration,
		Mpa:         MpaResponse{ID: film.Mpa.ID, Name: film.Mpa.Name},
		Genres:      genres,
		Directors:   directors,
	}
}

func FilmsToResponse(films []*entity.Film) []FilmResponse {
	responses := make([]FilmResponse, len(films))
	for i, film := range films {
		responses[i] = FilmToResponse(film)
	}
	return responses
}

func GenreToResponse(genre *entity.Genre) GenreResponse {
	return GenreResponse{ID: genre.ID, Name: genre.Name}
}

func GenresToResponse(genres []*entity.Genre) []GenreResponse {
	responses := make([]GenreResponse, len(genres))
	for i, genre := range genres {
		responses[i] = GenreToResponse(genre)
	}
	return responses
}

func MpaToResponse(mpa *entity.Mpa) MpaResponse {
	return MpaResponse{ID: mpa.ID, Name: mpa.Name}
}

func MpaAllToResponse(ratings []*entity.Mpa) []MpaResponse {
	responses := make([]MpaResponse, len(ratings))
	for i, mpa := range ratings {
		responses[i] = MpaToResponse(mpa)
	}
	return responses
}

func DirectorToResponse(director *entity.Director) DirectorResponse {
	return DirectorResponse{ID: director.ID, Name: director.Name}
}

func DirectorsToResponse(directors []*entity.Director) []DirectorResponse {
	responses := make([]DirectorResponse, len(directors))
	for i, director := range directors {
		responses[i] = DirectorToResponse(director)
	}
	return responses
}
