// Package cache keeps redis-backed read models for the film lists that are
// expensive to recompute per request: popularity rankings and per-user
// recommendations. The cache is best-effort; every miss or redis failure
// falls through to the primary store.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"film-social/internal/data/entity"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type FilmCache struct {
	rdb *redis.Client
	ttl time.Duration
	log *zap.Logger
}

// NewFilmCache wraps the redis client; a nil client disables the cache.
func NewFilmCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) *FilmCache {
	return &FilmCache{
		rdb: rdb,
		ttl: ttl,
		log: log.With(zap.String("cache", "film")),
	}
}

func (c *FilmCache) Enabled() bool {
	return c != nil && c.rdb != nil
}

func PopularKey(count int, genreID, year *int) string {
	g, y := 0, 0
	if genreID != nil {
		g = *genreID
	}
	if year != nil {
		y = *year
	}
	return fmt.Sprintf("films:popular:%d:%d:%d", count, g, y)
}

func RecommendationsKey(userID int) string {
	return fmt.Sprintf("films:recommendations:%d", userID)
}

func (c *FilmCache) GetFilms(ctx context.Context, key string) ([]*entity.Film, bool) {
	if !c.Enabled() {
		return nil, false
	}

	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}

	var films []*entity.Film
	if err := json.Unmarshal(data, &films); err != nil {
		c.log.Debug("Dropping undecodable cache entry",
			zap.Error(err),
			zap.String("key", key),
		)
		_ = c.rdb.Del(ctx, key).Err()
		return nil, false
	}

	return films, true
}

func (c *FilmCache) SetFilms(ctx context.Context, key string, films []*entity.Film) {
	if !c.Enabled() {
		return
	}

	payload, err := json.Marshal(films)
	if err != nil {
		c.log.Debug("Failed to encode cache entry",
			zap.Error(err),
			zap.String("key", key),
		)
		return
	}

	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Debug("Failed to write cache entry",
			zap.Error(err),
			zap.String("key", key),
		)
	}
}

func (c *FilmCache) Invalidate(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}

	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		c.log.Debug("Failed to invalidate cache entries",
			zap.Error(err),
			zap.Strings("keys", keys),
		)
	}
}
