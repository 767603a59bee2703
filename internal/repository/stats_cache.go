package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	ttlcache "github.com/jellydator/ttlcache/v3"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/shenikar/fire_dashboard/internal/service"
)

const statsCacheKey = "fire_dashboard:stats"

// RedisStatsCache хранит снимок статистики в Redis
type RedisStatsCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisStatsCache(redisClient *redis.Client, ttl time.Duration) service.StatsCache {
	return &RedisStatsCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// GetStats пытается получить снимок статистики из Redis
func (c *RedisStatsCache) GetStats(ctx context.Context) (*models.StatsSnapshot, error) {
	val, err := c.redisClient.Get(ctx, statsCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get stats from cache: %w", err)
	}

	stats := &models.StatsSnapshot{}
	if err := json.Unmarshal(val, stats); err != nil {
		return nil, fmt.Errorf("failed to unmarshal stats from cache: %w", err)
	}
	return stats, nil
}

// SetStats сохраняет снимок статистики в Redis
func (c *RedisStatsCache) SetStats(ctx context.Context, stats *models.StatsSnapshot) error {
	val, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to marshal stats for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, statsCacheKey, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set stats in cache: %w", err)
	}
	return nil
}

// InvalidateStats удаляет снимок статистики из Redis
func (c *RedisStatsCache) InvalidateStats(ctx context.Context) error {
	if err := c.redisClient.Del(ctx, statsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate stats cache: %w", err)
	}
	return nil
}

// MemoryStatsCache хранит снимок статистики в памяти процесса, когда Redis
// не настроен.
type MemoryStatsCache struct {
	cache *ttlcache.Cache[string, models.StatsSnapshot]
}

// NewMemoryStatsCache запускает цикл очистки, остановить его можно через Stop
func NewMemoryStatsCache(ttl time.Duration) *MemoryStatsCache {
	cache := ttlcache.New(
		ttlcache.WithTTL[string, models.StatsSnapshot](ttl),
		ttlcache.WithDisableTouchOnHit[string, models.StatsSnapshot](),
	)
	go cache.Start()
	return &MemoryStatsCache{cache: cache}
}

func (c *MemoryStatsCache) GetStats(_ context.Context) (*models.StatsSnapshot, error) {
	item := c.cache.Get(statsCacheKey)
	if item == nil {
		return nil, nil
	}
	stats := item.Value()
	return &stats, nil
}

func (c *MemoryStatsCache) SetStats(_ context.Context, stats *models.StatsSnapshot) error {
	c.cache.Set(statsCacheKey, *stats, ttlcache.DefaultTTL)
	return nil
}

func (c *MemoryStatsCache) InvalidateStats(_ context.Context) error {
	c.cache.Delete(statsCacheKey)
	return nil
}

func (c *MemoryStatsCache) Stop() {
	c.cache.Stop()
}
