package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/maelc/cinebooking/config"
	"github.com/maelc/cinebooking/internal/domain"
)

// RedisCache holds transient copies of catalog movies so repeated
// lookups inside one booking burst skip the collaborator round trip.
// Nothing here is ever written back to the movie service.
type RedisCache struct {
	client   *redis.Client
	movieTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, movieTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:   redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		movieTTL: movieTTL,
	}
}

func (c *RedisCache) GetMovie(ctx context.Context, id string) (*domain.Movie, error) {
	data, err := c.client.Get(ctx, movieKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var m domain.Movie
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *RedisCache) SetMovie(ctx context.Context, movie *domain.Movie) error {
	payload, err := json.Marshal(movie)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, movieKey(movie.ID), payload, c.movieTTL).Err()
}

func movieKey(id string) string {
	return fmt.Sprintf("cache:movie:%s", id)
}
