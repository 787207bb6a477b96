package usecase_test

import (
	"testing"

	"film-social/internal/dto/request"
	"film-social/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReview(t *testing.T) {
	svc := newService(t)
	user := seedUser(t, svc, "critic")
	film := seedFilm(t, svc, "Heat")

	review := seedReview(t, svc, user.ID, film.ID, true)

	assert.NotZero(t, review.ReviewID)
	assert.Equal(t, user.ID, review.UserID)
	assert.Equal(t, film.ID, review.FilmID)
	assert.Equal(t, 0, review.Useful)

	feed, err := svc.Feed.GetUserFeed(t.Context(), user.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "REVIEW", feed[0].EventType)
	assert.Equal(t, "ADD", feed[0].Operation)
	assert.Equal(t, review.ReviewID, feed[0].EntityID)
}

func TestCreateReviewDuplicate(t *testing.T) {
	svc := newService(t)
	user := seedUser(t, svc, "critic")
	film := seedFilm(t, svc, "Heat")
	seedReview(t, svc, user.ID, film.ID, true)

	positive := false
	_, err := svc.Review.CreateReview(t.Context(), &request.ReviewRequest{
		Content:    "changed my mind",
		IsPositive: &positive,
		UserID:     &user.ID,
		FilmID:     &film.ID,
	})
	assert.ErrorIs(t, err, usecase.ErrReviewExists)
}

func TestCreateReviewUnknownReferences(t *testing.T) {
	svc := newService(t)
	user := seedUser(t, svc, "critic")
	film := seedFilm(t, svc, "Heat")

	positive := true
	missing := 999

	_, err := svc.Review.CreateReview(t.Context(), &request.ReviewRequest{
		Content:    "x",
		IsPositive: &positive,
		UserID:     &missing,
		FilmID:     &film.ID,
	})
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)

	_, err = svc.Review.CreateReview(t.Context(), &request.ReviewRequest{
		Content:    "x",
		IsPositive: &positive,
		UserID:     &user.ID,
		FilmID:     &missing,
	})
	assert.ErrorIs(t, err, usecase.ErrFilmNotFound)
}

func TestReviewReactionTransitions(t *testing.T) {
	svc := newService(t)
	author := seedUser(t, svc, "author")
	voter := seedUser(t, svc, "voter")
	film := seedFilm(t, svc, "Heat")
	review := seedReview(t, svc, author.ID, film.ID, true)

	// NONE -> LIKED
	updated, err := svc.Review.AddLike(t.Context(), review.ReviewID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Useful)

	// LIKED -> LIKED is a no-op
	updated, err = svc.Review.AddLike(t.Context(), review.ReviewID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, updated.Useful)

	// LIKED -> DISLIKED moves useful by two
	updated, err = svc.Review.AddDislike(t.Context(), review.ReviewID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, updated.Useful)

	// removing a like while disliked is a no-op
	updated, err = svc.Review.RemoveLike(t.Context(), review.ReviewID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, -1, updated.Useful)

	// DISLIKED -> NONE
	updated, err = svc.Review.RemoveDislike(t.Context(), review.ReviewID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Useful)

	// NONE -> NONE is a no-op
	updated, err = svc.Review.RemoveDislike(t.Context(), review.ReviewID, voter.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Useful)
}

func TestReviewReactionsIndependentPerUser(t *testing.T) {
	svc := newService(t)
	author := seedUser(t, svc, "author")
	a := seedUser(t, svc, "alice")
	b := seedUser(t, svc, "bob")
	film := seedFilm(t, svc, "Heat")
	review := seedReview(t, svc, author.ID, film.ID, true)

	_, err := svc.Review.AddLike(t.Context(), review.ReviewID, a.ID)
	require.NoError(t, err)
	updated, err := svc.Review.AddLike(t.Context(), review.ReviewID, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Useful)

	updated, err = svc.Review.AddDislike(t.Context(), review.ReviewID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Useful)
}

func TestReviewReactionsLeaveNoFeedEntries(t *testing.T) {
	svc := newService(t)
	author := seedUser(t, svc, "author")
	voter := seedUser(t, svc, "voter")
	film := seedFilm(t, svc, "Heat")
	review := seedReview(t, svc, author.ID, film.ID, true)

	_, err := svc.Review.AddLike(t.Context(), review.ReviewID, voter.ID)
	require.NoError(t, err)
	_, err = svc.Review.RemoveLike(t.Context(), review.ReviewID, voter.ID)
	require.NoError(t, err)

	feed, err := svc.Feed.GetUserFeed(t.Context(), voter.ID)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestUpdateReviewKeepsAuthorAndUseful(t *testing.T) {
	svc := newService(t)
	author := seedUser(t, svc, "author")
	voter := seedUser(t, svc, "voter")
	film := seedFilm(t, svc, "Heat")
	review := seedReview(t, svc, author.ID, film.ID, true)

	_, err := svc.Review.AddLike(t.Context(), review.ReviewID, voter.ID)
	require.NoError(t, err)

	negative := false
	otherUser := voter.ID
	updated, err := svc.Review.UpdateReview(t.Context(), &request.ReviewRequest{
		ReviewID:   review.ReviewID,
		Content:    "on rewatch, not great",
		IsPositive: &negative,
		UserID:     &otherUser,
		FilmID:     &film.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, "on rewatch, not great", updated.Content)
	assert.False(t, updated.IsPositive)
	assert.Equal(t, author.ID, updated.UserID)
	assert.Equal(t, 1, updated.Useful)

	// feed entry for the update belongs to the stored author
	feed, err := svc.Feed.GetUserFeed(t.Context(), author.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "UPDATE", feed[1].Operation)
	assert.Equal(t, review.ReviewID, feed[1].EntityID)
}

func TestDeleteReviewRecordsStoredAuthor(t *testing.T) {
	svc := newService(t)
	author := seedUser(t, svc, "author")
	film := seedFilm(t, svc, "Heat")
	review := seedReview(t, svc, author.ID, film.ID, true)

	require.NoError(t, svc.Review.DeleteReview(t.Context(), review.ReviewID))

	_, err := svc.Review.GetReviewByID(t.Context(), review.ReviewID)
	assert.ErrorIs(t, err, usecase.ErrReviewNotFound)

	feed, err := svc.Feed.GetUserFeed(t.Context(), author.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, "REVIEW", feed[1].EventType)
	assert.Equal(t, "REMOVE", feed[1].Operation)
}

func TestGetReviewsOrderedByUseful(t *testing.T) {
	svc := newService(t)
	film := seedFilm(t, svc, "Heat")
	voter := seedUser(t, svc, "voter")

	var reviewIDs []int
	for _, login := range []string{"a", "b", "c"} {
		user := seedUser(t, svc, login)
		review := seedReview(t, svc, user.ID, film.ID, true)
		reviewIDs = append(reviewIDs, review.ReviewID)
	}

	_, err := svc.Review.AddLike(t.Context(), reviewIDs[1], voter.ID)
	require.NoError(t, err)
	_, err = svc.Review.AddDislike(t.Context(), reviewIDs[0], voter.ID)
	require.NoError(t, err)

	reviews, err := svc.Review.GetReviews(t.Context(), &film.ID, 10)
	require.NoError(t, err)
	require.Len(t, reviews, 3)

	// most useful first, ties broken by ascending id
	assert.Equal(t, reviewIDs[1], reviews[0].ReviewID)
	assert.Equal(t, reviewIDs[2], reviews[1].ReviewID)
	assert.Equal(t, reviewIDs[0], reviews[2].ReviewID)
}

func TestGetReviewsCountLimit(t *testing.T) {
	svc := newService(t)
	film := seedFilm(t, svc, "Heat")

	for _, login := range []string{"a", "b", "c"} {
		user := seedUser(t, svc, login)
		seedReview(t, svc, user.ID, film.ID, true)
	}

	reviews, err := svc.Review.GetReviews(t.Context(), nil, 2)
	require.NoError(t, err)
	assert.Len(t, reviews, 2)
}
