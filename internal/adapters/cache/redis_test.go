package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func testClientOptions() ClientOptions {
	return ClientOptions{
		Addr:     getEnv("REDIS_HOST", "localhost") + ":" + getEnv("REDIS_PORT", "6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       1,
	}
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	start := time.Now()
	rdb, err := NewRedisClient(context.Background(), ClientOptions{
		Addr:        "localhost:9999",
		DB:          3,
		PingTimeout: 200 * time.Millisecond,
	})

	assert.Nil(t, rdb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "localhost:9999")
	assert.Contains(t, err.Error(), "db 3")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestNewRedisClient_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rdb, err := NewRedisClient(ctx, ClientOptions{Addr: "localhost:9999"})

	assert.Nil(t, rdb)
	assert.Error(t, err)
}

func TestRedisClient_Integration(t *testing.T) {
	_ = godotenv.Load("../../../.env")

	rdb, err := NewRedisClient(context.Background(), testClientOptions())
	if err != nil {
		t.Skipf("Skipping Redis integration test: %v", err)
	}
	defer rdb.Close()

	ctx := context.Background()
	require.NoError(t, rdb.FlushDB(ctx).Err(), "Failed to flush test DB")

	t.Run("Connection Ping", func(t *testing.T) {
		pong, err := rdb.Ping(ctx).Result()
		assert.NoError(t, err)
		assert.Equal(t, "PONG", pong)
	})

	t.Run("Set and Get with TTL", func(t *testing.T) {
		require.NoError(t, rdb.Set(ctx, "calendar:test", "[]", time.Minute).Err())

		val, err := rdb.Get(ctx, "calendar:test").Result()
		assert.NoError(t, err)
		assert.Equal(t, "[]", val)

		ttl, err := rdb.TTL(ctx, "calendar:test").Result()
		assert.NoError(t, err)
		assert.LessOrEqual(t, ttl, time.Minute)

		rdb.Del(ctx, "calendar:test")
	})
}
