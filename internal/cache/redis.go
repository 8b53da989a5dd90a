package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Domenick1991/flightbooking/config"
	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache fronts the flight search with a short-lived cache keyed by the
// search parameters. Stale entries only ever overstate availability; the
// booking transaction re-checks the locked row, so the invariant is safe.
type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
	}
}

func (c *RedisCache) GetSearch(ctx context.Context, params domain.SearchParams) ([]domain.FlightSummary, error) {
	data, err := c.client.Get(ctx, searchKey(params)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.FlightSummary
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetSearch(ctx context.Context, params domain.SearchParams, flights []domain.FlightSummary) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(params), payload, c.searchTTL).Err()
}

func searchKey(params domain.SearchParams) string {
	return fmt.Sprintf("cache:search:%s:%s:%s", params.Departure, params.Arrival, params.Date)
}
