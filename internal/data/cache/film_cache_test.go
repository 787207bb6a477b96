package cache_test

import (
	"testing"
	"time"

	"film-social/internal/data/cache"
	"film-social/internal/data/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*cache.FilmCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	return cache.NewFilmCache(rdb, time.Minute, zap.NewNop()), mr
}

func sampleFilms() []*entity.Film {
	return []*entity.Film{
		{
			ID:          1,
			Name:        "Heat",
			ReleaseDate: time.Date(1995, time.December, 15, 0, 0, 0, 0, time.UTC),
			Duration:    170,
			Mpa:         entity.Mpa{ID: 4, Name: "R"},
			Genres:      []entity.Genre{{ID: 2, Name: "Drama"}},
		},
	}
}

func TestFilmCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	key := cache.RecommendationsKey(7)

	_, ok := c.GetFilms(t.Context(), key)
	assert.False(t, ok)

	c.SetFilms(t.Context(), key, sampleFilms())

	films, ok := c.GetFilms(t.Context(), key)
	require.True(t, ok)
	require.Len(t, films, 1)
	assert.Equal(t, "Heat", films[0].Name)
	assert.Equal(t, "R", films[0].Mpa.Name)
}

func TestFilmCacheInvalidate(t *testing.T) {
	c, _ := newTestCache(t)
	key := cache.RecommendationsKey(7)

	c.SetFilms(t.Context(), key, sampleFilms())
	c.Invalidate(t.Context(), key)

	_, ok := c.GetFilms(t.Context(), key)
	assert.False(t, ok)
}

func TestFilmCacheExpiry(t *testing.T) {
	c, mr := newTestCache(t)
	key := cache.PopularKey(10, nil, nil)

	c.SetFilms(t.Context(), key, sampleFilms())
	mr.FastForward(2 * time.Minute)

	_, ok := c.GetFilms(t.Context(), key)
	assert.False(t, ok)
}

func TestFilmCacheDropsCorruptEntry(t *testing.T) {
	c, mr := newTestCache(t)
	key := cache.PopularKey(10, nil, nil)

	require.NoError(t, mr.Set(key, "not json"))

	_, ok := c.GetFilms(t.Context(), key)
	assert.False(t, ok)
	assert.False(t, mr.Exists(key))
}

func TestFilmCacheDisabled(t *testing.T) {
	c := cache.NewFilmCache(nil, time.Minute, zap.NewNop())

	assert.False(t, c.Enabled())

	// all operations are no-ops without a client
	c.SetFilms(t.Context(), "k", sampleFilms())
	_, ok := c.GetFilms(t.Context(), "k")
	assert.False(t, ok)
	c.Invalidate(t.Context(), "k")
}

func TestCacheKeys(t *testing.T) {
	genre, year := 3, 1999
	assert.Equal(t, "films:popular:10:0:0", cache.PopularKey(10, nil, nil))
	assert.Equal(t, "films:popular:5:3:1999", cache.PopularKey(5, &genre, &year))
	assert.Equal(t, "films:recommendations:7", cache.RecommendationsKey(7))
}
