package usecase_test

import (
	"testing"

	"film-social/internal/dto/request"
	"film-social/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserNameFallsBackToLogin(t *testing.T) {
	svc := newService(t)

	user, err := svc.User.CreateUser(t.Context(), &request.UserRequest{
		Email:    "dolly@example.com",
		Login:    "dolLY",
		Birthday: "1985-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "dolLY", user.Name)
}

func TestCreateUserLoginAllowsDigitsAndLetters(t *testing.T) {
	svc := newService(t)

	user, err := svc.User.CreateUser(t.Context(), &request.UserRequest{
		Email:    "max@example.com",
		Login:    "max2024",
		Birthday: "1990-01-01",
	})
	require.NoError(t, err)
	assert.Equal(t, "max2024", user.Login)
}

func TestCreateUserValidation(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name string
		req  request.UserRequest
	}{
		{"bad email", request.UserRequest{Email: "not-an-email", Login: "x", Birthday: "1990-01-01"}},
		{"login with space", request.UserRequest{Email: "a@b.com", Login: "two words", Birthday: "1990-01-01"}},
		{"future birthday", request.UserRequest{Email: "a@b.com", Login: "x", Birthday: "2990-01-01"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.User.CreateUser(t.Context(), &tc.req)
			assert.ErrorIs(t, err, usecase.ErrValidation)
		})
	}
}

func TestUpdateUserUnknown(t *testing.T) {
	svc := newService(t)

	_, err := svc.User.UpdateUser(t.Context(), &request.UserRequest{
		ID:       42,
		Email:    "a@b.com",
		Login:    "ghost",
		Birthday: "1990-01-01",
	})
	assert.ErrorIs(t, err, usecase.ErrUserNotFound)
}

func TestFriendshipIsOneSided(t *testing.T) {
	svc := newService(t)
	alice := seedUser(t, svc, "alice")
	bob := seedUser(t, svc, "bob")

	require.NoError(t, svc.User.AddFriend(t.Context(), alice.ID, bob.ID))

	friends, err := svc.User.GetFriends(t.Context(), alice.ID)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, bob.ID, friends[0].ID)

	// the inverse direction is not implied
	friends, err = svc.User.GetFriends(t.Context(), bob.ID)
	require.NoError(t, err)
	assert.Empty(t, friends)
}

func TestFriendshipFeedEntries(t *testing.T) {
	svc := newService(t)
	alice := seedUser(t, svc, "alice")
	bob := seedUser(t, svc, "bob")

	require.NoError(t, svc.User.AddFriend(t.Context(), alice.ID, bob.ID))
	require.NoError(t, svc.User.RemoveFriend(t.Context(), alice.ID, bob.ID))

	feed, err := svc.Feed.GetUserFeed(t.Context(), alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 2)

	assert.Equal(t, "FRIEND", feed[0].EventType)
	assert.Equal(t, "ADD", feed[0].Operation)
	assert.Equal(t, bob.ID, feed[0].EntityID)
	assert.Equal(t, "REMOVE", feed[1].Operation)
	assert.Less(t, feed[0].EventID, feed[1].EventID)
}

func TestRemoveAbsentFriendStillRecorded(t *testing.T) {
	svc := newService(t)
	alice := seedUser(t, svc, "alice")
	bob := seedUser(t, svc, "bob")

	// removing a friendship that never existed is not an error
	require.NoError(t, svc.User.RemoveFriend(t.Context(), alice.ID, bob.ID))

	feed, err := svc.Feed.GetUserFeed(t.Context(), alice.ID)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, "REMOVE", feed[0].Operation)
}

func TestAddFriendUnknownUser(t *testing.T) {
	svc := newService(t)
	alice := seedUser(t, svc, "alice")

	assert.ErrorIs(t, svc.User.AddFriend(t.Context(), alice.ID, 42), usecase.ErrUserNotFound)
	assert.ErrorIs(t, svc.User.AddFriend(t.Context(), 42, alice.ID), usecase.ErrUserNotFound)
}

func TestGetCommonFriends(t *testing.T) {
	svc := newService(t)
	alice := seedUser(t, svc, "alice")
	bob := seedUser(t, svc, "bob")
	carol := seedUser(t, svc, "carol")

	require.NoError(t, svc.User.AddFriend(t.Context(), alice.ID, carol.ID))
	require.NoError(t, svc.User.AddFriend(t.Context(), bob.ID, carol.ID))

	common, err := svc.User.GetCommonFriends(t.Context(), alice.ID, bob.ID)
	require.NoError(t, err)
	require.Len(t, common, 1)
	assert.Equal(t, carol.ID, common[0].ID)
}

func TestGetRecommendations(t *testing.T) {
	svc := newService(t)
	a := seedUser(t, svc, "a")
	b := seedUser(t, svc, "b")
	c := seedUser(t, svc, "c")

	films := make([]int, 0, 4)
	for _, name := range []string{"f1", "f2", "f3", "f4"} {
		film := seedFilm(t, svc, name)
		films = append(films, film.ID)
	}

	// a likes {1,2,3}, b likes {2,3,4}, c likes {3}
	for _, id := range films[:3] {
		require.NoError(t, svc.Film.AddLike(t.Context(), id, a.ID))
	}
	for _, id := range films[1:] {
		require.NoError(t, svc.Film.AddLike(t.Context(), id, b.ID))
	}
	require.NoError(t, svc.Film.AddLike(t.Context(), films[2], c.ID))

	// b is the closest neighbor, so only b's unseen likes come back
	recs, err := svc.User.GetRecommendations(t.Context(), a.ID)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, films[3], recs[0].ID)
}

func TestGetRecommendationsWithoutLikes(t *testing.T) {
	svc := newService(t)
	a := seedUser(t, svc, "a")
	b := seedUser(t, svc, "b")
	film := seedFilm(t, svc, "f1")

	require.NoError(t, svc.Film.AddLike(t.Context(), film.ID, b.ID))

	recs, err := svc.User.GetRecommendations(t.Context(), a.ID)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestGetRecommendationsNoNewFilms(t *testing.T) {
	svc := newService(t)
	a := seedUser(t, svc, "a")
	b := seedUser(t, svc, "b")
	film := seedFilm(t, svc, "f1")

	// identical taste leaves nothing to suggest
	require.NoError(t, svc.Film.AddLike(t.Context(), film.ID, a.ID))
	require.NoError(t, svc.Film.AddLike(t.Context(), film.ID, b.ID))

	recs, err := svc.User.GetRecommendations(t.Context(), a.ID)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestGetRecommendationsTiedNeighbors(t *testing.T) {
	svc := newService(t)
	a := seedUser(t, svc, "a")
	b := seedUser(t, svc, "b")
	c := seedUser(t, svc, "c")

	films := make([]int, 0, 4)
	for _, name := range []string{"f1", "f2", "f3", "f4"} {
		film := seedFilm(t, svc, name)
		films = append(films, film.ID)
	}

	// b and c each share exactly one like with a; both tiers contribute
	require.NoError(t, svc.Film.AddLike(t.Context(), films[0], a.ID))
	require.NoError(t, svc.Film.AddLike(t.Context(), films[0], b.ID))
	require.NoError(t, svc.Film.AddLike(t.Context(), films[2], b.ID))
	require.NoError(t, svc.Film.AddLike(t.Context(), films[0], c.ID))
	require.NoError(t, svc.Film.AddLike(t.Context(), films[3], c.ID))

	recs, err := svc.User.GetRecommendations(t.Context(), a.ID)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	// ascending film id
	assert.Equal(t, films[2], recs[0].ID)
	assert.Equal(t, films[3], recs[1].ID)
}
