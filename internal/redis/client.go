package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"yoldas/internal/cart"
	"yoldas/internal/models"
)

// ErrCacheMiss is returned when a key is absent; callers fall back to the
// database and re-populate.
var ErrCacheMiss = fmt.Errorf("cache miss")

type Client struct {
	rdb *redis.Client
}

func Initialize(redisURL string) (*Client, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)

	// Test connection
	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{rdb: rdb}, nil
}

// Session carts. Each session id owns exactly one cart; all mutation goes
// through the cart service, so there is no concurrent writer to guard.

func (c *Client) SetCart(sessionID string, crt *cart.Cart, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(crt)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}

	return c.rdb.Set(ctx, "cart:"+sessionID, jsonData, ttl).Err()
}

func (c *Client) GetCart(sessionID string) (*cart.Cart, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, "cart:"+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	var crt cart.Cart
	if err := json.Unmarshal([]byte(val), &crt); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart: %w", err)
	}

	return &crt, nil
}

func (c *Client) DeleteCart(sessionID string) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, "cart:"+sessionID).Err()
}

// Modifier catalog cache, keyed per meal.

func catalogKey(mealID uint) string {
	return fmt.Sprintf("catalog:meal:%d", mealID)
}

func (c *Client) SetCatalog(mealID uint, groups []models.ModifierGroup, ttl time.Duration) error {
	ctx := context.Background()
	jsonData, err := json.Marshal(groups)
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	return c.rdb.Set(ctx, catalogKey(mealID), jsonData, ttl).Err()
}

func (c *Client) GetCatalog(mealID uint) ([]models.ModifierGroup, error) {
	ctx := context.Background()
	val, err := c.rdb.Get(ctx, catalogKey(mealID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	var groups []models.ModifierGroup
	if err := json.Unmarshal([]byte(val), &groups); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	return groups, nil
}

func (c *Client) DeleteCatalog(mealID uint) error {
	ctx := context.Background()
	return c.rdb.Del(ctx, catalogKey(mealID)).Err()
}
