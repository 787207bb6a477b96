package usecase

import (
	"errors"
)

// Sentinel errors the transport layer translates into HTTP statuses.
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrFilmNotFound     = errors.New("film not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrDirectorNotFound = errors.New("director not found")
	ErrGenreNotFound    = errors.New("genre not found")
	ErrMpaNotFound      = errors.New("mpa rating not found")

	// ErrReviewExists marks a duplicate review for the same (user, film) pair.
	ErrReviewExists = errors.New("review already exists for this film")

	// ErrValidation marks malformed domain data rejected before any mutation.
	ErrValidation = errors.New("validation failed")
)
