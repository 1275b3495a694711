package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
)

var _ domain.SnapshotStore = (*RedisSnapshotStore)(nil)

const (
	snapshotKey = "streak:snapshot"
	snapshotTTL = 24 * time.Hour
)

type RedisSnapshotStore struct {
	rdb *redis.Client
}

func NewRedisSnapshotStore(rdb *redis.Client) *RedisSnapshotStore {
	return &RedisSnapshotStore{rdb: rdb}
}

func (s *RedisSnapshotStore) Save(ctx context.Context, snapshot domain.StreakSnapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("snapshot store: marshal: %w", err)
	}
	if err := s.rdb.Set(ctx, snapshotKey, data, snapshotTTL).Err(); err != nil {
		return fmt.Errorf("snapshot store: save: %w", err)
	}
	return nil
}

func (s *RedisSnapshotStore) Latest(ctx context.Context) (domain.StreakSnapshot, bool, error) {
	val, err := s.rdb.Get(ctx, snapshotKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.StreakSnapshot{}, false, nil
	}
	if err != nil {
		return domain.StreakSnapshot{}, false, fmt.Errorf("snapshot store: read: %w", err)
	}

	var snap domain.StreakSnapshot
	if err := json.Unmarshal(val, &snap); err != nil {
		return domain.StreakSnapshot{}, false, fmt.Errorf("snapshot store: decode: %w", err)
	}
	return snap, true, nil
}
