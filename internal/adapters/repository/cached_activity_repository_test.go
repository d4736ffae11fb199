package repository

import (
	"context"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/noor-sync-engine/internal/adapters/cache"
	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	rdb, err := cache.NewRedisClient(cache.Options{
		Host:     getEnv("REDIS_HOST", "localhost"),
		Port:     getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       2,
	})
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	require.NoError(t, rdb.FlushDB(context.Background()).Err())

	t.Cleanup(func() { rdb.Close() })
	return rdb
}

func TestCachedActivityRepository_Integration(t *testing.T) {
	rdb := setupTestRedis(t)
	ctx := context.Background()

	store := NewMemoryStore()
	repo := NewCachedActivityRepository(store.Activity(), rdb)

	require.NoError(t, repo.SaveDay(ctx, "u1", "2024-03-15", domain.DailyActivity{QuranPages: 3}))

	t.Run("First read fills the cache", func(t *testing.T) {
		log, err := repo.GetLog(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 3, log["2024-03-15"].QuranPages)

		exists, err := rdb.Exists(ctx, repo.cacheKey("u1")).Result()
		require.NoError(t, err)
		assert.Equal(t, int64(1), exists)
	})

	t.Run("Writes invalidate", func(t *testing.T) {
		require.NoError(t, repo.SaveDay(ctx, "u1", "2024-03-16", domain.DailyActivity{QuranPages: 1}))

		exists, _ := rdb.Exists(ctx, repo.cacheKey("u1")).Result()
		assert.Equal(t, int64(0), exists)

		log, err := repo.GetLog(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, log, 2)
	})

	t.Run("Reading updates invalidate", func(t *testing.T) {
		_, _ = repo.GetLog(ctx, "u1")
		require.NoError(t, repo.SaveReading(ctx, "u1", "2024-03-16", domain.DailyActivity{QuranPages: 4}, domain.QuranPosition{Chapter: 2, Verse: 1}))

		log, err := repo.GetLog(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, 4, log["2024-03-16"].QuranPages)
	})

	t.Run("Corrupted entries fall through to the store", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, repo.cacheKey("u1"), "{not json", 0).Err())

		log, err := repo.GetLog(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, log, 2)
	})

	t.Run("Reset invalidates", func(t *testing.T) {
		_, _ = repo.GetLog(ctx, "u1")
		require.NoError(t, repo.Reset(ctx, "u1"))

		log, err := repo.GetLog(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, log)
	})
}
