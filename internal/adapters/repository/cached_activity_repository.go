package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

var _ domain.ActivityRepository = (*CachedActivityRepository)(nil)

const activityLogTTL = 30 * time.Minute

// CachedActivityRepository keeps the full activity log of a user in Redis.
// Stats reads hit the cache; every write invalidates it.
type CachedActivityRepository struct {
	next  domain.ActivityRepository
	cache *redis.Client
}

func NewCachedActivityRepository(next domain.ActivityRepository, cache *redis.Client) *CachedActivityRepository {
	return &CachedActivityRepository{
		next:  next,
		cache: cache,
	}
}

func (r *CachedActivityRepository) cacheKey(userID string) string {
	return fmt.Sprintf("activity_log:%s", userID)
}

func (r *CachedActivityRepository) invalidate(ctx context.Context, userID string) {
	if err := r.cache.Del(ctx, r.cacheKey(userID)).Err(); err != nil {
		log.Warn("cache invalidation failed", "user", userID, "err", err)
	}
}

func (r *CachedActivityRepository) GetLog(ctx context.Context, userID string) (domain.ActivityLog, error) {
	key := r.cacheKey(userID)

	val, err := r.cache.Get(ctx, key).Bytes()
	if err == nil {
		var cached domain.ActivityLog
		if err := json.Unmarshal(val, &cached); err == nil {
			return cached, nil
		}

		log.Warn("corrupted cached activity log, cleaning up key", "user", userID)
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Warn("redis read error", "err", err)
	}

	activityLog, err := r.next.GetLog(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(activityLog); err == nil {
		if setErr := r.cache.Set(ctx, key, data, activityLogTTL).Err(); setErr != nil {
			log.Warn("redis set error", "err", setErr)
		}
	}

	return activityLog, nil
}

func (r *CachedActivityRepository) GetDay(ctx context.Context, userID, date string) (domain.DailyActivity, error) {
	return r.next.GetDay(ctx, userID, date)
}

func (r *CachedActivityRepository) SaveDay(ctx context.Context, userID, date string, activity domain.DailyActivity) error {
	if err := r.next.SaveDay(ctx, userID, date, activity); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *CachedActivityRepository) SaveReading(ctx context.Context, userID, date string, activity domain.DailyActivity, position domain.QuranPosition) error {
	if err := r.next.SaveReading(ctx, userID, date, activity, position); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}

func (r *CachedActivityRepository) Reset(ctx context.Context, userID string) error {
	if err := r.next.Reset(ctx, userID); err != nil {
		return err
	}
	r.invalidate(ctx, userID)
	return nil
}
