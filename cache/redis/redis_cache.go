package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/amberloft/venue-booking/scheduling"
)

type RedisCacheRepository struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCacheRepository(redisURL, password string, db int) (*RedisCacheRepository, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: password,
		DB:       db,
	})

	ctx := context.Background()

	// Test connection
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisCacheRepository{
		client: client,
		ctx:    ctx,
	}, nil
}

// Cache key generator
func (r *RedisCacheRepository) daySlotsKey(date string) string {
	return fmt.Sprintf("availability:%s", date)
}

// GetDaySlots retrieves the cached slot snapshot for a date. A cache miss
// returns (nil, nil); the caller falls through to the database.
func (r *RedisCacheRepository) GetDaySlots(date string) ([]scheduling.Slot, error) {
	key := r.daySlotsKey(date)
	data, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // Cache miss
		}
		return nil, err
	}

	var slots []scheduling.Slot
	if err := json.Unmarshal([]byte(data), &slots); err != nil {
		return nil, err
	}

	return slots, nil
}

// SetDaySlots stores the slot snapshot for a date
func (r *RedisCacheRepository) SetDaySlots(date string, slots []scheduling.Slot, ttl time.Duration) error {
	key := r.daySlotsKey(date)
	data, err := json.Marshal(slots)
	if err != nil {
		return err
	}

	return r.client.Set(r.ctx, key, data, ttl).Err()
}

// InvalidateDay removes the cached snapshot for a date
func (r *RedisCacheRepository) InvalidateDay(date string) error {
	key := r.daySlotsKey(date)
	return r.client.Del(r.ctx, key).Err()
}

// Ping checks if Redis is healthy
func (r *RedisCacheRepository) Ping() error {
	return r.client.Ping(r.ctx).Err()
}
