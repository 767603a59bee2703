package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/fire_dashboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStatsCache_SetGetInvalidate(t *testing.T) {
	cache := NewMemoryStatsCache(time.Minute)
	defer cache.Stop()
	ctx := context.Background()

	got, err := cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	snapshot := &models.StatsSnapshot{CallsToday: 2, Stations: 3, LastUpdated: seedNow}
	require.NoError(t, cache.SetStats(ctx, snapshot))

	got, err = cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)

	require.NoError(t, cache.InvalidateStats(ctx))
	got, err = cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStatsCache_Expires(t *testing.T) {
	cache := NewMemoryStatsCache(20 * time.Millisecond)
	defer cache.Stop()
	ctx := context.Background()

	require.NoError(t, cache.SetStats(ctx, &models.StatsSnapshot{LastUpdated: seedNow}))

	assert.Eventually(t, func() bool {
		got, err := cache.GetStats(ctx)
		return err == nil && got == nil
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryStatsCache_ReturnsCopy(t *testing.T) {
	cache := NewMemoryStatsCache(time.Minute)
	defer cache.Stop()
	ctx := context.Background()

	require.NoError(t, cache.SetStats(ctx, &models.StatsSnapshot{CallsToday: 1, LastUpdated: seedNow}))
	got, err := cache.GetStats(ctx)
	require.NoError(t, err)
	got.CallsToday = 99

	again, err := cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, again.CallsToday)
}

// newTestRedisCache поднимает miniredis и кеш поверх него
func newTestRedisCache(t *testing.T, ttl time.Duration) (*miniredis.Miniredis, *RedisStatsCache) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisStatsCache(client, ttl).(*RedisStatsCache)
}

func TestRedisStatsCache_MissReturnsNil(t *testing.T) {
	_, cache := newTestRedisCache(t, time.Minute)

	got, err := cache.GetStats(context.Background())

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStatsCache_RoundTrip(t *testing.T) {
	// Подготовка
	mr, cache := newTestRedisCache(t, 30*time.Second)
	ctx := context.Background()
	snapshot := &models.StatsSnapshot{
		CallsToday:         3,
		CallsThisMonth:     4,
		AvgResponseTimeMin: 5.7,
		ActiveIncidents:    2,
		FirefightersOnDuty: 29,
		Stations:           3,
		LastUpdated:        seedNow,
	}

	// Действие
	require.NoError(t, cache.SetStats(ctx, snapshot))
	got, err := cache.GetStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, snapshot, got)
	assert.True(t, got.LastUpdated.Equal(seedNow))
	assert.Equal(t, 30*time.Second, mr.TTL(statsCacheKey))

	raw, err := mr.Get(statsCacheKey)
	require.NoError(t, err)
	assert.Contains(t, raw, `"last_updated":"2024-03-15T10:00:00Z"`)
}

func TestRedisStatsCache_InvalidateDeletesKey(t *testing.T) {
	mr, cache := newTestRedisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetStats(ctx, &models.StatsSnapshot{LastUpdated: seedNow}))
	require.True(t, mr.Exists(statsCacheKey))

	require.NoError(t, cache.InvalidateStats(ctx))

	assert.False(t, mr.Exists(statsCacheKey))
	got, err := cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	// повторный сброс пустого кеша не ошибка
	assert.NoError(t, cache.InvalidateStats(ctx))
}

func TestRedisStatsCache_Expires(t *testing.T) {
	mr, cache := newTestRedisCache(t, time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetStats(ctx, &models.StatsSnapshot{LastUpdated: seedNow}))
	mr.FastForward(time.Minute + time.Second)

	got, err := cache.GetStats(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStatsCache_CorruptValue(t *testing.T) {
	mr, cache := newTestRedisCache(t, time.Minute)
	require.NoError(t, mr.Set(statsCacheKey, "not json"))

	got, err := cache.GetStats(context.Background())

	assert.Nil(t, got)
	assert.ErrorContains(t, err, "failed to unmarshal stats from cache")
}

func TestRedisStatsCache_ServerDown(t *testing.T) {
	mr, cache := newTestRedisCache(t, time.Minute)
	ctx := context.Background()
	mr.Close()

	_, err := cache.GetStats(ctx)
	assert.ErrorContains(t, err, "failed to get stats from cache")

	err = cache.SetStats(ctx, &models.StatsSnapshot{LastUpdated: seedNow})
	assert.ErrorContains(t, err, "failed to set stats in cache")

	err = cache.InvalidateStats(ctx)
	assert.ErrorContains(t, err, "failed to invalidate stats cache")
}
