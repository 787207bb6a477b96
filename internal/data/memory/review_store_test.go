package memory

import (
	"sync"
	"testing"

	"film-social/internal/data/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewStoreConcurrentReactions(t *testing.T) {
	store := NewReviewStore()
	review := &entity.Review{Content: "x", IsPositive: true, UserID: 1, FilmID: 1}
	require.NoError(t, store.Create(t.Context(), review))

	const voters = 50

	var wg sync.WaitGroup
	for userID := 1; userID <= voters; userID++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			_ = store.SetReaction(t.Context(), review.ID, userID, entity.ReactionLike)
		}(userID)
	}
	wg.Wait()

	stored, err := store.FindByID(t.Context(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, voters, stored.Useful)

	// everyone switches sides, each switch worth two units
	for userID := 1; userID <= voters; userID++ {
		wg.Add(1)
		go func(userID int) {
			defer wg.Done()
			_ = store.SetReaction(t.Context(), review.ID, userID, entity.ReactionDislike)
		}(userID)
	}
	wg.Wait()

	stored, err = store.FindByID(t.Context(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, -voters, stored.Useful)
}

func TestReviewStoreRepeatedTransitionsStayConsistent(t *testing.T) {
	store := NewReviewStore()
	review := &entity.Review{Content: "x", IsPositive: true, UserID: 1, FilmID: 1}
	require.NoError(t, store.Create(t.Context(), review))

	const userID = 2

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_ = store.SetReaction(t.Context(), review.ID, userID, entity.ReactionLike)
			} else {
				_ = store.SetReaction(t.Context(), review.ID, userID, entity.ReactionDislike)
			}
		}(i)
	}
	wg.Wait()

	// whatever the interleaving, the user holds exactly one reaction
	stored, err := store.FindByID(t.Context(), review.ID)
	require.NoError(t, err)
	assert.Contains(t, []int{-1, 1}, stored.Useful)

	require.NoError(t, store.ClearReaction(t.Context(), review.ID, userID, entity.ReactionLike))
	require.NoError(t, store.ClearReaction(t.Context(), review.ID, userID, entity.ReactionDislike))

	stored, err = store.FindByID(t.Context(), review.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Useful)
}
