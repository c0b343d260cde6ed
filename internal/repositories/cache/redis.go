// Package cache holds the redis-backed cache for the transaction history
// view. Only the read-only history listing is cached, on a short TTL and
// invalidated after every submission. Verification state is never cached
// anywhere: authorization is re-fetched from the backend on every decision.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"paygate/internal/backend"
)

const (
	historyKeyPrefix = "txhistory:"
	historyTTL       = 30 * time.Second
)

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func NewRedisClient(cfg *RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// HistoryCache caches transaction-history pages per user.
type HistoryCache struct {
	client *redis.Client
}

func NewHistoryCache(client *redis.Client) *HistoryCache {
	return &HistoryCache{client: client}
}

func historyKey(userID uint, limit, offset int) string {
	return fmt.Sprintf("%s%d:%d:%d", historyKeyPrefix, userID, limit, offset)
}

// Get returns a cached history page, or false on miss or any redis error —
// a cache problem degrades to a backend read, never to a request failure.
func (c *HistoryCache) Get(ctx context.Context, userID uint, limit, offset int) ([]backend.TransactionRecord, bool) {
	raw, err := c.client.Get(ctx, historyKey(userID, limit, offset)).Bytes()
	if err != nil {
		return nil, false
	}
	var records []backend.TransactionRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, false
	}
	return records, true
}

func (c *HistoryCache) Set(ctx context.Context, userID uint, limit, offset int, records []backend.TransactionRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode history page: %w", err)
	}
	return c.client.Set(ctx, historyKey(userID, limit, offset), raw, historyTTL).Err()
}

// Invalidate drops every cached history page for the user. Called after each
// payment or payout submission so the status view reflects the new attempt.
func (c *HistoryCache) Invalidate(ctx context.Context, userID uint) error {
	pattern := fmt.Sprintf("%s%d:*", historyKeyPrefix, userID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
