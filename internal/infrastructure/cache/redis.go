// Package cache keeps the SALDO snapshot in Redis between lookups.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"ocorrencias_logistica/internal/domain/entities"
	"ocorrencias_logistica/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const stockKey = "stock:snapshot"

// NewRedis creates and validates a go-redis client connection.
func NewRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}

type StockCache struct {
	rdb *redis.Client
	key string
}

var _ interfaces.IStockCache = (*StockCache)(nil)

// NewStockCache namespaces the snapshot key with prefix, which may be empty.
func NewStockCache(rdb *redis.Client, prefix string) *StockCache {
	return &StockCache{rdb: rdb, key: prefix + stockKey}
}

func (c *StockCache) Get(ctx context.Context) ([]entities.Stock, bool, error) {
	b, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var rows []entities.Stock
	if err := json.Unmarshal(b, &rows); err != nil {
		return nil, false, err
	}
	return rows, true, nil
}

func (c *StockCache) Set(ctx context.Context, rows []entities.Stock, ttl time.Duration) error {
	b, err := json.Marshal(rows)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, c.key, b, ttl).Err()
}
