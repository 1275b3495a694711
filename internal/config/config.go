package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	SourceSimulated = "simulated"
	SourcePostgres  = "postgres"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	// CalendarSource selects where day records come from: simulated or postgres.
	CalendarSource string

	DBUser     string
	DBPassword string
	DBHost     string
	DBPort     string
	DBName     string

	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	// RedisPingTimeout bounds the startup ping.
	RedisPingTimeout time.Duration

	RateLimit       int
	RateLimitWindow time.Duration

	Location *time.Location

	// OTLPEndpoint enables trace export when set, e.g. http://localhost:4318.
	OTLPEndpoint string
	ServiceName  string
}

func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("APP_ENV", "production"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CalendarSource: getEnv("CALENDAR_SOURCE", SourceSimulated),

		DBUser:     getEnv("DB_USER", ""),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBName:     getEnv("DB_NAME", ""),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		RateLimitWindow: time.Minute,

		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:  getEnv("OTEL_SERVICE_NAME", "health-dashboard"),
	}

	var err error
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RateLimit, err = getEnvInt("RATE_LIMIT", 100); err != nil {
		return nil, err
	}
	if cfg.RedisPingTimeout, err = getEnvDuration("REDIS_PING_TIMEOUT", 2*time.Second); err != nil {
		return nil, err
	}

	switch cfg.CalendarSource {
	case SourceSimulated, SourcePostgres:
	default:
		return nil, fmt.Errorf("config: unknown CALENDAR_SOURCE %q", cfg.CalendarSource)
	}

	tz := getEnv("TIMEZONE", "UTC")
	cfg.Location, err = time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("config: invalid TIMEZONE %q: %w", tz, err)
	}

	return cfg, nil
}

// DSN builds a postgres URL; credentials are escaped, so passwords may hold
// '@', '/' or ':'.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func (c *Config) RedisAddr() string {
	return net.JoinHostPort(c.RedisHost, c.RedisPort)
}

func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func (c *Config) TracingEnabled() bool {
	return c.OTLPEndpoint != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration: %w", key, err)
	}
	return d, nil
}
