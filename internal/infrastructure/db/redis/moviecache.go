package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rankio/rankio-api/internal/core/domain"
)

const movieTTL = 24 * time.Hour

// MovieCache caches immutable movie snapshots from the metadata provider.
// Key format: movie:<id>
type MovieCache struct {
	client *redis.Client
}

// NewMovieCache creates a MovieCache wrapping the given Redis client.
func NewMovieCache(client *redis.Client) *MovieCache {
	return &MovieCache{client: client}
}

// Get returns the cached snapshot for id, or (nil, nil) on a miss.
func (c *MovieCache) Get(ctx context.Context, id string) (*domain.Movie, error) {
	raw, err := c.client.Get(ctx, c.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("movie cache get: %w", err)
	}

	var movie domain.Movie
	if err := json.Unmarshal(raw, &movie); err != nil {
		return nil, fmt.Errorf("movie cache decode: %w", err)
	}
	return &movie, nil
}

// Set stores a snapshot (expires after movieTTL).
func (c *MovieCache) Set(ctx context.Context, movie *domain.Movie) error {
	raw, err := json.Marshal(movie)
	if err != nil {
		return fmt.Errorf("movie cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(movie.ID), raw, movieTTL).Err()
}

func (c *MovieCache) key(id string) string {
	return "movie:" + id
}
