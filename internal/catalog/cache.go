package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"trinh-cafe/internal/config"
	"trinh-cafe/internal/logger"
)

// InitRedis connects the price-cache client.
func InitRedis(cfg config.RedisConfig, log *logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Info("redis_connected", "Connected to Redis price cache", "startup", nil)
	return rdb, nil
}

// CachedGateway is a cache-aside decorator over another Gateway. Cache
// failures degrade to the underlying gateway; they are never surfaced to the
// order engine.
type CachedGateway struct {
	next   Gateway
	rdb    *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewCachedGateway wraps next with a Redis price cache.
func NewCachedGateway(next Gateway, rdb *redis.Client, ttl time.Duration, log *logger.Logger) *CachedGateway {
	return &CachedGateway{next: next, rdb: rdb, ttl: ttl, logger: log}
}

func priceKey(itemID int) string {
	return fmt.Sprintf("item_price:%d", itemID)
}

// GetPrice implements Gateway.
func (g *CachedGateway) GetPrice(ctx context.Context, itemID int) (int64, error) {
	cached, err := g.rdb.Get(ctx, priceKey(itemID)).Result()
	if err == nil {
		price, parseErr := strconv.ParseInt(cached, 10, 64)
		if parseErr == nil {
			return price, nil
		}
		// Unparseable entry, treat as a miss and overwrite below.
	} else if !errors.Is(err, redis.Nil) {
		g.logger.Error("price_cache_read_failed", "Falling back to store for price lookup", "", err,
			map[string]interface{}{"item_id": itemID})
	}

	price, err := g.next.GetPrice(ctx, itemID)
	if err != nil {
		return 0, err
	}

	if err := g.rdb.Set(ctx, priceKey(itemID), strconv.FormatInt(price, 10), g.ttl).Err(); err != nil {
		g.logger.Error("price_cache_write_failed", "Failed to cache item price", "", err,
			map[string]interface{}{"item_id": itemID})
	}
	return price, nil
}

// InvalidatePrice implements Gateway.
func (g *CachedGateway) InvalidatePrice(ctx context.Context, itemID int) error {
	if err := g.rdb.Del(ctx, priceKey(itemID)).Err(); err != nil {
		g.logger.Error("price_cache_invalidate_failed", "Failed to drop cached price", "", err,
			map[string]interface{}{"item_id": itemID})
	}
	return g.next.InvalidatePrice(ctx, itemID)
}
