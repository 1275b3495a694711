package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

var _ domain.DayRecordRepository = (*CachedDayRecordRepository)(nil)

const calendarCacheTTL = 30 * time.Minute

type CachedDayRecordRepository struct {
	next  domain.DayRecordRepository
	cache *redis.Client
	log   *zap.SugaredLogger
}

func NewCachedDayRecordRepository(next domain.DayRecordRepository, cache *redis.Client, log *zap.SugaredLogger) *CachedDayRecordRepository {
	return &CachedDayRecordRepository{
		next:  next,
		cache: cache,
		log:   log,
	}
}

func (r *CachedDayRecordRepository) cacheKey(year int, month time.Month) string {
	return fmt.Sprintf("calendar:%04d-%02d", year, int(month))
}

func (r *CachedDayRecordRepository) invalidate(ctx context.Context, year int, month time.Month) {
	if err := r.cache.Del(ctx, r.cacheKey(year, month)).Err(); err != nil {
		r.log.Warnf("[CACHE] Failed to invalidate %04d-%02d: %v", year, int(month), err)
	}
}

func (r *CachedDayRecordRepository) ListByMonth(ctx context.Context, year int, month time.Month) ([]domain.DayRecord, error) {
	key := r.cacheKey(year, month)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var days []domain.DayRecord
		if err := json.Unmarshal([]byte(val), &days); err == nil {
			return days, nil
		}
		r.log.Warnf("[CACHE] Corrupted data for %s, cleaning up key", key)
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warnf("[CACHE] Redis read error: %v", err)
	}

	days, err := r.next.ListByMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(days); err == nil {
		if setErr := r.cache.Set(ctx, key, data, calendarCacheTTL).Err(); setErr != nil {
			r.log.Warnf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return days, nil
}

func (r *CachedDayRecordRepository) Upsert(ctx context.Context, record domain.DayRecord) error {
	if err := r.next.Upsert(ctx, record); err != nil {
		return err
	}
	y, m, _ := record.Date.Date()
	r.invalidate(ctx, y, m)
	return nil
}
