package aladhan

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/noor-sync-engine/internal/core/domain"
)

const cacheTTL = 36 * time.Hour

type Provider interface {
	HijriDate(ctx context.Context, day time.Time) (*domain.HijriDate, error)
}

// CachedProvider memoizes conversions per Gregorian date. A date converts the
// same way for every user, so one upstream call per day is enough.
type CachedProvider struct {
	next  Provider
	cache *redis.Client
}

func NewCachedProvider(next Provider, cache *redis.Client) *CachedProvider {
	return &CachedProvider{next: next, cache: cache}
}

func cacheKey(day time.Time) string {
	return "hijri:" + domain.DateKey(day)
}

func (p *CachedProvider) HijriDate(ctx context.Context, day time.Time) (*domain.HijriDate, error) {
	key := cacheKey(day)

	val, err := p.cache.Get(ctx, key).Bytes()
	if err == nil {
		var h domain.HijriDate
		if err := json.Unmarshal(val, &h); err == nil && h.Validate() == nil {
			return &h, nil
		}
		p.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Warn("redis read error", "key", key, "err", err)
	}

	h, err := p.next.HijriDate(ctx, day)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(h); err == nil {
		if err := p.cache.Set(ctx, key, data, cacheTTL).Err(); err != nil {
			log.Warn("redis set error", "key", key, "err", err)
		}
	}
	return h, nil
}
