package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// ClientOptions holds what the service needs to reach Redis. Zero
// PingTimeout means defaultPingTimeout.
type ClientOptions struct {
	Addr        string
	Password    string
	DB          int
	PingTimeout time.Duration
}

// NewRedisClient connects and pings once. On a failed ping the client is
// closed and only the error is returned.
func NewRedisClient(ctx context.Context, opts ClientOptions) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	timeout := opts.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping %s (db %d): %w", opts.Addr, opts.DB, err)
	}

	return rdb, nil
}
