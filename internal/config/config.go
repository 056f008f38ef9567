package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CacheDriverRedis  = "redis"
	CacheDriverMemory = "memory"
)

type Config struct {
	App struct {
		Name string
		Env  string
	}

	API struct {
		Host string
		Port string
	}

	DB struct {
		Enabled  bool
		Host     string
		Port     int
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Cache struct {
		Driver string
		TTL    time.Duration
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	Fetch struct {
		Timeout   time.Duration
		UserAgent string
	}

	Scheduler struct {
		Interval     time.Duration
		BatchTimeout time.Duration
		AutoStart    bool
	}

	Snapshot struct {
		BatchSize   int
		MaxWorkers  int
		PageTimeout time.Duration
	}
}

func New() *Config {
	_ = godotenv.Load()

	cfg := &Config{}

	// App
	cfg.App.Name = getEnv("APP_NAME", "pagetracker")
	cfg.App.Env = getEnv("APP_ENV", "development")

	// API
	cfg.API.Host = getEnv("API_HOST", "0.0.0.0")
	cfg.API.Port = getEnv("API_PORT", "8080")

	// DB (page ledger)
	cfg.DB.Enabled = getBool("DB_ENABLED", false)
	cfg.DB.Host = getEnv("DB_HOST", "db")
	cfg.DB.Port = getInt("DB_PORT", 5432)
	cfg.DB.User = getEnv("DB_USER", "root")
	cfg.DB.Password = getEnv("DB_PASSWORD", "")
	cfg.DB.Name = getEnv("DB_NAME", "pagetracker")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	// Cache
	cfg.Cache.Driver = strings.ToLower(getEnv("CACHE_DRIVER", CacheDriverRedis))
	cfg.Cache.TTL = getDuration("CACHE_TTL", 10*time.Second)

	// Redis
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = getInt("REDIS_DB", 0)

	// Fetch
	cfg.Fetch.Timeout = getDuration("FETCH_TIMEOUT", 10*time.Second)
	cfg.Fetch.UserAgent = getEnv("FETCH_USER_AGENT", "pagetracker/1.0")

	// Scheduler
	cfg.Scheduler.Interval = getDuration("SCHEDULER_INTERVAL", time.Minute)
	cfg.Scheduler.BatchTimeout = getDuration("SCHEDULER_BATCH_TIMEOUT", 30*time.Second)
	cfg.Scheduler.AutoStart = getBool("SCHEDULER_AUTOSTART", true)

	// Snapshot worker pool
	cfg.Snapshot.BatchSize = getInt("SNAPSHOT_BATCH_SIZE", 100)
	cfg.Snapshot.MaxWorkers = getInt("SNAPSHOT_MAX_WORKERS", 4)
	cfg.Snapshot.PageTimeout = getDuration("SNAPSHOT_PAGE_TIMEOUT", 5*time.Second)

	return cfg
}

// Validate reports settings that cannot be used to start the app.
func (c *Config) Validate() error {
	switch c.Cache.Driver {
	case CacheDriverRedis, CacheDriverMemory:
	default:
		return fmt.Errorf("config: unknown CACHE_DRIVER %q (want %q or %q)",
			c.Cache.Driver, CacheDriverRedis, CacheDriverMemory)
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("config: CACHE_TTL must be positive, got %s", c.Cache.TTL)
	}

	if c.Snapshot.PageTimeout <= 0 {
		return fmt.Errorf("config: SNAPSHOT_PAGE_TIMEOUT must be positive, got %s", c.Snapshot.PageTimeout)
	}

	return nil
}

func getEnv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}

func getBool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return isTruthy(v)
}

func getInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host,
		c.DB.Port,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.SSLMode,
	)
}
