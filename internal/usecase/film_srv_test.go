package usecase_test

import (
	"testing"

	"film-social/internal/dto/request"
	"film-social/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFilmValidation(t *testing.T) {
	svc := newService(t)

	valid := request.FilmRequest{
		Name:        "Heat",
		Description: "crime drama",
		ReleaseDate: "1995-12-15",
		Duration:    170,
		Mpa:         request.RefID{ID: 1},
	}

	cases := []struct {
		name   string
		mutate func(*request.FilmRequest)
	}{
		{"blank name", func(r *request.FilmRequest) { r.Name = "   " }},
		{"release before first screening", func(r *request.FilmRequest) { r.ReleaseDate = "1890-01-01" }},
		{"non-positive duration", func(r *request.FilmRequest) { r.Duration = 0 }},
		{"unknown mpa", func(r *request.FilmRequest) { r.Mpa = request.RefID{ID: 99} }},
		{"unknown genre", func(r *request.FilmRequest) { r.Genres = []request.RefID{{ID: 99}} }},
		{"unknown director", func(r *request.FilmRequest) { r.Directors = []request.RefID{{ID: 99}} }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			_, err := svc.Film.CreateFilm(t.Context(), &req)
			assert.ErrorIs(t, err, usecase.ErrValidation)
		})
	}
}

func TestCreateFilmEarliestReleaseDateAllowed(t *testing.T) {
	svc := newService(t)

	film, err := svc.Film.CreateFilm(t.Context(), &request.FilmRequest{
		Name:        "Workers Leaving the Factory",
		ReleaseDate: "1895-12-28",
		Duration:    1,
		Mpa:         request.RefID{ID: 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "1895-12-28", film.ReleaseDate)
}

func TestCreateFilmDedupsGenres(t *testing.T) {
	svc := newService(t)

	film, err := svc.Film.CreateFilm(t.Context(), &request.FilmRequest{
		Name:        "Heat",
		ReleaseDate: "1995-12-15",
		Duration:    170,
		Mpa:         request.RefID{ID: 1},
		Genres:      []request.RefID{{ID: 2}, {ID: 1}, {ID: 2}},
	})
	require.NoError(t, err)

	// first occurrence wins, insertion order kept
	require.Len(t, film.Genres, 2)
	assert.Equal(t, 2, film.Genres[0].ID)
	assert.Equal(t, 1, film.Genres[1].ID)
}

func TestUpdateFilmUnknown(t *testing.T) {
	svc := newService(t)

	_, err := svc.Film.UpdateFilm(t.Context(), &request.FilmRequest{
		ID:          42,
		Name:        "Ghost",
		ReleaseDate: "1990-07-13",
		Duration:    127,
		Mpa:         request.RefID{ID: 1},
	})
	assert.ErrorIs(t, err, usecase.ErrFilmNotFound)
}

func TestFilmLikesFeedAndIdempotence(t *testing.T) {
	svc := newService(t)
	user := seedUser(t, svc, "viewer")
	film := seedFilm(t, svc, "Heat")

	require.NoError(t, svc.Film.AddLike(t.Context(), film.ID, user.ID))
	// second like from the same user changes nothing
	require.NoError(t, svc.Film.AddLike(t.Context(), film.ID, user.ID))
	require.NoError(t, svc.Film.RemoveLike(t.Context(), film.ID, user.ID))

	feed, err := svc.Feed.GetUserFeed(t.Context(), user.ID)
	require.NoError(t, err)
	require.Len(t, feed, 3)
	assert.Equal(t, "LIKE", feed[0].EventType)
	assert.Equal(t, "ADD", feed[0].Operation)
	assert.Equal(t, film.ID, feed[0].EntityID)
	assert.Equal(t, "REMOVE", feed[2].Operation)
}

func TestAddLikeUnknownReferences(t *testing.T) {
	svc := newService(t)
	user := seedUser(t, svc, "viewer")
	film := seedFilm(t, svc, "Heat")

	assert.ErrorIs(t, svc.Film.AddLike(t.Context(), 42, user.ID), usecase.ErrFilmNotFound)
	assert.ErrorIs(t, svc.Film.AddLike(t.Context(), film.ID, 42), usecase.ErrUserNotFound)
}

func TestGetPopular(t *testing.T) {
	svc := newService(t)
	films := make([]int, 0, 3)
	for _, name := range []string{"f1", "f2", "f3"} {
		film := seedFilm(t, svc, name)
		films = append(films, film.ID)
	}

	for i, login := range []string{"a", "b", "c"} {
		user := seedUser(t, svc, login)
		// f2 gets three likes, f3 two, f1 none
		require.NoError(t, svc.Film.AddLike(t.Context(), films[1], user.ID))
		if i < 2 {
			require.NoError(t, svc.Film.AddLike(t.Context(), films[2], user.ID))
		}
	}

	popular, err := svc.Film.GetPopular(t.Context(), 2, nil, nil)
	require.NoError(t, err)
	require.Len(t, popular, 2)
	assert.Equal(t, films[1], popular[0].ID)
	assert.Equal(t, films[2], popular[1].ID)
}

func TestGetCommonFilms(t *testing.T) {
	svc := newService(t)
	alice := seedUser(t, svc, "alice")
	bob := seedUser(t, svc, "bob")
	shared := seedFilm(t, svc, "shared")
	solo := seedFilm(t, svc, "solo")

	require.NoError(t, svc.Film.AddLike(t.Context(), shared.ID, alice.ID))
	require.NoError(t, svc.Film.AddLike(t.Context(), shared.ID, bob.ID))
	require.NoError(t, svc.Film.AddLike(t.Context(), solo.ID, alice.ID))

	common, err := svc.Film.GetCommonFilms(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, common, 1)
	assert.Equal(t, shared.ID, common[0].ID)
}

func TestGetFilmsByDirector(t *testing.T) {
	svc := newService(t)

	director, err := svc.Director.CreateDirector(t.Context(), &request.DirectorRequest{Name: "Michael Mann"})
	require.NoError(t, err)

	older, err := svc.Film.CreateFilm(t.Context(), &request.FilmRequest{
		Name:        "Thief",
		ReleaseDate: "1981-03-27",
		Duration:    123,
		Mpa:         request.RefID{ID: 1},
		Directors:   []request.RefID{{ID: director.ID}},
	})
	require.NoError(t, err)

	newer, err := svc.Film.CreateFilm(t.Context(), &request.FilmRequest{
		Name:        "Heat",
		ReleaseDate: "1995-12-15",
		Duration:    170,
		Mpa:         request.RefID{ID: 1},
		Directors:   []request.RefID{{ID: director.ID}},
	})
	require.NoError(t, err)

	user := seedUser(t, svc, "viewer")
	require.NoError(t, svc.Film.AddLike(t.Context(), newer.ID, user.ID))

	byYear, err := svc.Film.GetFilmsByDirector(t.Context(), director.ID, "year")
	require.NoError(t, err)
	require.Len(t, byYear, 2)
	assert.Equal(t, older.ID, byYear[0].ID)

	byLikes, err := svc.Film.GetFilmsByDirector(t.Context(), director.ID, "likes")
	require.NoError(t, err)
	assert.Equal(t, newer.ID, byLikes[0].ID)

	_, err = svc.Film.GetFilmsByDirector(t.Context(), director.ID, "rating")
	assert.ErrorIs(t, err, usecase.ErrValidation)

	_, err = svc.Film.GetFilmsByDirector(t.Context(), 42, "year")
	assert.ErrorIs(t, err, usecase.ErrDirectorNotFound)
}

func TestSearchFilms(t *testing.T) {
	svc := newService(t)

	director, err := svc.Director.CreateDirector(t.Context(), &request.DirectorRequest{Name: "Wes Craven"})
	require.NoError(t, err)

	_, err = svc.Film.CreateFilm(t.Context(), &request.FilmRequest{
		Name:        "Scream",
		ReleaseDate: "1996-12-20",
		Duration:    111,
		Mpa:         request.RefID{ID: 1},
		Directors:   []request.RefID{{ID: director.ID}},
	})
	require.NoError(t, err)
	seedFilm(t, svc, "Cream of the Crop")

	byTitle, err := svc.Film.SearchFilms(t.Context(), "crE", "title")
	require.NoError(t, err)
	assert.Len(t, byTitle, 2)

	byDirector, err := svc.Film.SearchFilms(t.Context(), "craven", "director")
	require.NoError(t, err)
	require.Len(t, byDirector, 1)
	assert.Equal(t, "Scream", byDirector[0].Name)

	both, err := svc.Film.SearchFilms(t.Context(), "craven", "title,director")
	require.NoError(t, err)
	assert.Len(t, both, 1)

	_, err = svc.Film.SearchFilms(t.Context(), "x", "genre")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestGenreAndMpaCatalogs(t *testing.T) {
	svc := newService(t)

	genres, err := svc.Film.GetGenres(t.Context())
	require.NoError(t, err)
	assert.NotEmpty(t, genres)

	genre, err := svc.Film.GetGenreByID(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, genre.ID)

	_, err = svc.Film.GetGenreByID(t.Context(), 99)
	assert.ErrorIs(t, err, usecase.ErrGenreNotFound)

	ratings, err := svc.Film.GetMpaAll(t.Context())
	require.NoError(t, err)
	assert.Len(t, ratings, 5)

	_, err = svc.Film.GetMpaByID(t.Context(), 99)
	assert.ErrorIs(t, err, usecase.ErrMpaNotFound)
}
