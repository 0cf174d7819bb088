package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/kvartirnik/house-booking/internal/config"
	"github.com/kvartirnik/house-booking/internal/models"
)

const housesKey = "cache:houses:available"

// HouseCache keeps the available-houses listing out of postgres.
// Every successful booking invalidates it, so a cached entry never
// shows a house that was booked before the entry was written.
type HouseCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewHouseCache(cfg *config.Config, ttl time.Duration) *HouseCache {
	return &HouseCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}),
		ttl: ttl,
	}
}

func (c *HouseCache) GetAvailableHouses(ctx context.Context) ([]models.House, error) {
	data, err := c.client.Get(ctx, housesKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var houses []models.House
	if err := json.Unmarshal(data, &houses); err != nil {
		return nil, err
	}
	return houses, nil
}

func (c *HouseCache) SetAvailableHouses(ctx context.Context, houses []models.House) error {
	payload, err := json.Marshal(houses)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, housesKey, payload, c.ttl).Err()
}

func (c *HouseCache) InvalidateHouses(ctx context.Context) error {
	return c.client.Del(ctx, housesKey).Err()
}
