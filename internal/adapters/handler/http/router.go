package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/healthadvisor/dashboard-engine/docs"
	"github.com/healthadvisor/dashboard-engine/internal/adapters/handler/http/middleware"
	"github.com/healthadvisor/dashboard-engine/internal/telemetry"
)

type RouterDependencies struct {
	CalendarHandler  *CalendarHandler
	GoalHandler      *GoalHandler
	NutritionHandler *NutritionHandler
	DietPlanHandler  *DietPlanHandler
	ArticleHandler   *ArticleHandler
	DashboardHandler *DashboardHandler

	// DB and Redis are optional. Health reports them as disabled when nil.
	DB              *sqlx.DB
	Redis           *redis.Client
	RateLimit       int
	RateLimitWindow time.Duration

	Logger    *zap.Logger
	StartTime time.Time
}

const (
	statusConnected   = "connected"
	statusUnreachable = "unreachable"
	statusDisabled    = "disabled"
)

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Tracing(telemetry.TracerName))
	router.Use(middleware.RequestLogger(deps.Logger))

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:          12 * time.Hour,
	}))

	if deps.Redis != nil && deps.RateLimit > 0 {
		window := deps.RateLimitWindow
		if window <= 0 {
			window = time.Minute
		}
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, deps.RateLimit, window, deps.Logger.Sugar()))
	}

	router.GET("/health", func(c *gin.Context) {
		dbStatus := statusDisabled
		if deps.DB != nil {
			dbStatus = statusConnected
			if err := deps.DB.PingContext(c.Request.Context()); err != nil {
				dbStatus = statusUnreachable
			}
		}

		redisStatus := statusDisabled
		if deps.Redis != nil {
			redisStatus = statusConnected
			if err := deps.Redis.Ping(c.Request.Context()).Err(); err != nil {
				redisStatus = statusUnreachable
			}
		}

		statusCode := http.StatusOK
		if dbStatus == statusUnreachable || redisStatus == statusUnreachable {
			statusCode = http.StatusServiceUnavailable
		}

		c.JSON(statusCode, gin.H{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
			"uptime":   time.Since(deps.StartTime).String(),
		})
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	apiV1 := router.Group("/api/v1")

	deps.DashboardHandler.RegisterRoutes(apiV1)
	deps.CalendarHandler.RegisterRoutes(apiV1)
	deps.GoalHandler.RegisterRoutes(apiV1)
	deps.NutritionHandler.RegisterRoutes(apiV1)
	deps.DietPlanHandler.RegisterRoutes(apiV1)
	deps.ArticleHandler.RegisterRoutes(apiV1)

	return router
}
