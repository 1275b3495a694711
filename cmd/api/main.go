package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/healthadvisor/dashboard-engine/internal/adapters/cache"
	adapterHTTP "github.com/healthadvisor/dashboard-engine/internal/adapters/handler/http"
	"github.com/healthadvisor/dashboard-engine/internal/adapters/repository"
	"github.com/healthadvisor/dashboard-engine/internal/config"
	"github.com/healthadvisor/dashboard-engine/internal/core/domain"
	"github.com/healthadvisor/dashboard-engine/internal/core/services"
	"github.com/healthadvisor/dashboard-engine/internal/core/workers"
	"github.com/healthadvisor/dashboard-engine/internal/logger"
	"github.com/healthadvisor/dashboard-engine/internal/telemetry"
)

type app struct {
	router   *gin.Engine
	worker   *workers.StreakWorker
	calendar *services.CalendarService
	db       *sqlx.DB
	rdb      *redis.Client
}

func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.rdb != nil {
		a.rdb.Close()
	}
}

func connectDB(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.DSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

func newApp(ctx context.Context, cfg *config.Config, log *zap.Logger) (*app, error) {
	sugar := log.Sugar()
	a := &app{}

	var dayRepo domain.DayRecordRepository
	switch cfg.CalendarSource {
	case config.SourcePostgres:
		log.Info("Connecting to database...")
		db, err := connectDB(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		a.db = db

		pgRepo := repository.NewPostgresDayRecordRepository(db)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to prepare schema: %w", err)
		}
		dayRepo = pgRepo
		log.Info("Database connected successfully.")
	default:
		dayRepo = repository.NewSimulatedCalendarRepository()
		log.Info("Using simulated calendar source")
	}

	var snapshots domain.SnapshotStore = repository.NewInMemorySnapshotStore()
	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(ctx, cache.ClientOptions{
			Addr:        cfg.RedisAddr(),
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			PingTimeout: cfg.RedisPingTimeout,
		})
		if err != nil {
			log.Warn("Redis unavailable, running without cache and rate limiting", zap.Error(err))
		} else {
			a.rdb = rdb
			dayRepo = repository.NewCachedDayRecordRepository(dayRepo, rdb, sugar)
			snapshots = cache.NewRedisSnapshotStore(rdb)
			log.Info("Redis connected successfully.")
		}
	}

	a.worker = workers.NewStreakWorker(dayRepo, snapshots, sugar)

	a.calendar = services.NewCalendarService(dayRepo, snapshots, a.worker, cfg.Location, sugar)
	goalService := services.NewGoalService(repository.NewSeededHealthGoalRepository())
	nutritionService := services.NewNutritionService(repository.NewSeededNutritionGoalRepository())
	dietPlanService := services.NewDietPlanService(repository.NewInMemoryDietPlanRepository(domain.SampleDietPlan()), domain.DefaultAllergyProfile())
	articleService := services.NewArticleService(repository.NewInMemoryArticleRepository(domain.DefaultArticles()))
	dashboardService := services.NewDashboardService(a.calendar, goalService, nutritionService, articleService, sugar)

	a.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		CalendarHandler:  adapterHTTP.NewCalendarHandler(a.calendar),
		GoalHandler:      adapterHTTP.NewGoalHandler(goalService),
		NutritionHandler: adapterHTTP.NewNutritionHandler(nutritionService),
		DietPlanHandler:  adapterHTTP.NewDietPlanHandler(dietPlanService),
		ArticleHandler:   adapterHTTP.NewArticleHandler(articleService),
		DashboardHandler: adapterHTTP.NewDashboardHandler(dashboardService, a.calendar.Today),
		DB:               a.db,
		Redis:            a.rdb,
		RateLimit:        cfg.RateLimit,
		RateLimitWindow:  cfg.RateLimitWindow,
		Logger:           log,
		StartTime:        time.Now(),
	})

	return a, nil
}

// @title Health Dashboard API
// @version 1.0
// @description Daily health goals, nutrition rings, lifestyle articles and the healthy streak calendar.
// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Critical: invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Critical: failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg)
	if err != nil {
		log.Fatal("Critical: failed to init tracing", zap.Error(err))
	}

	a, err := newApp(ctx, cfg, log)
	if err != nil {
		log.Fatal("Critical: startup failed", zap.Error(err))
	}
	defer a.Close()

	a.worker.Start(ctx)
	a.worker.Enqueue(a.calendar.Today())

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      a.router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("Health dashboard running", zap.String("addr", "http://localhost:"+cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Critical server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Stop signal received. Shutting down...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown", zap.Error(err))
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn("Trace exporter did not flush", zap.Error(err))
	}

	log.Info("Server stopped gracefully.")
}
