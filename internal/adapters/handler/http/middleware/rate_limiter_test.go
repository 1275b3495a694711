package middleware

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func setupTestRedis(t *testing.T) *redis.Client {
	_ = godotenv.Load("../../../../../.env")

	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}
	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       1,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		t.Skipf("Skipping integration test (Redis down): %v", err)
	}

	rdb.FlushDB(ctx)
	return rdb
}

func limitedRouter(rdb *redis.Client, limit int) *gin.Engine {
	router := gin.New()
	router.Use(RateLimiterMiddleware(rdb, limit, 1*time.Minute, zap.NewNop().Sugar()))
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "passed")
	})
	return router
}

func TestRateLimiterMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := setupTestRedis(t)
	defer rdb.Close()

	ctx := context.Background()

	t.Run("Allow Requests under limit", func(t *testing.T) {
		rdb.FlushDB(ctx)

		limit := 5
		router := limitedRouter(rdb, limit)

		for i := 1; i <= limit; i++ {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			req.Header.Set("X-Forwarded-For", "192.168.1.100")

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, fmt.Sprintf("%d", limit), w.Header().Get("X-RateLimit-Limit"))
			assert.Equal(t, fmt.Sprintf("%d", limit-i), w.Header().Get("X-RateLimit-Remaining"))
		}
	})

	t.Run("Block Requests over limit", func(t *testing.T) {
		rdb.FlushDB(ctx)

		router := limitedRouter(rdb, 2)

		var last *httptest.ResponseRecorder
		for i := 0; i < 3; i++ {
			last = httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			req.Header.Set("X-Forwarded-For", "192.168.1.101")
			router.ServeHTTP(last, req)
		}

		assert.Equal(t, http.StatusTooManyRequests, last.Code, "third request should be blocked")
		assert.Contains(t, last.Body.String(), `"error":"too many requests, slow down"`)
	})

	t.Run("Limits are per client", func(t *testing.T) {
		rdb.FlushDB(ctx)

		router := limitedRouter(rdb, 1)

		for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/test", nil)
			req.Header.Set("X-Forwarded-For", ip)
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, ip)
		}
	})
}

func TestRateLimiterMiddleware_FailOpen(t *testing.T) {
	gin.SetMode(gin.TestMode)

	badRdb := redis.NewClient(&redis.Options{
		Addr: "localhost:9999",
	})
	defer badRdb.Close()

	router := limitedRouter(badRdb, 5)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/test", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "passed", w.Body.String())
}
