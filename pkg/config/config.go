// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Loads server, cache, logging, Reddit and rate limit settings through viper

package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Cache contains cache configuration
	Cache CacheConfig

	// Log contains logger configuration
	Log LogConfig

	// Reddit contains listing source configuration
	Reddit RedditConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RefreshTimer is the interval in seconds between listing refreshes
	RefreshTimer int
}

// CacheConfig holds cache backend configuration
type CacheConfig struct {
	// Type specifies the cache backend (memory/redis/sqlite)
	Type string

	// Redis contains Redis-specific configuration
	Redis RedisConfig

	// Memory contains in-memory cache configuration
	Memory MemoryConfig

	// SQLite contains SQLite-specific configuration
	SQLite SQLiteConfig
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// Address is the Redis server address
	Address string

	// Password is the Redis authentication password
	Password string

	// DB is the Redis database number
	DB int
}

// MemoryConfig holds in-memory cache configuration
type MemoryConfig struct {
	// CleanupInterval is how often expired entries are purged. Entry lifetimes
	// come from RedditConfig.ListingTTL.
	CleanupInterval time.Duration
}

// SQLiteConfig holds SQLite cache configuration
type SQLiteConfig struct {
	// Path is the database file location
	Path string
}

// LogConfig holds logger configuration
type LogConfig struct {
	// Level is debug, info, warn or error
	Level string

	// Format is text or json
	Format string

	// File is an optional rotating log file
	File string
}

// RedditConfig holds listing source configuration
type RedditConfig struct {
	// BaseURL is the Reddit host feeds are fetched from
	BaseURL string

	// UserAgent identifies outgoing requests
	UserAgent string

	// Subreddits are kept warm by the listing refresher
	Subreddits []string

	// ListingTTL is how long fetched listings stay cached
	ListingTTL time.Duration
}

// RateLimitConfig holds per-client request limits
type RateLimitConfig struct {
	// Requests is the number of requests allowed per window
	Requests int

	// Window is the period the request budget refills over
	Window time.Duration
}

// Supported cache backends
const (
	CacheTypeMemory = "memory"
	CacheTypeRedis  = "redis"
	CacheTypeSQLite = "sqlite"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("PORT", "8000")
	v.SetDefault("REFRESH_TIMER", 60)
	v.SetDefault("CACHE_TYPE", CacheTypeMemory)
	v.SetDefault("REDIS_ADDRESS", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("MEMORY_CACHE_CLEANUP", "1h")
	v.SetDefault("SQLITE_PATH", "swish-cache.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("REDDIT_BASE_URL", "https://www.reddit.com")
	v.SetDefault("REDDIT_USER_AGENT", "SwishAPI/1.0 (NBA Reddit reader)")
	v.SetDefault("REDDIT_SUBREDDITS", "nba")
	v.SetDefault("LISTING_TTL", "2m")
	v.SetDefault("RATE_LIMIT", 60)
	v.SetDefault("RATE_WINDOW", "1m")
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	listingTTL, err := parseDuration(v, "LISTING_TTL")
	if err != nil {
		return nil, err
	}
	window, err := parseDuration(v, "RATE_WINDOW")
	if err != nil {
		return nil, err
	}
	cleanup, err := parseDuration(v, "MEMORY_CACHE_CLEANUP")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetString("PORT"),
			RefreshTimer: v.GetInt("REFRESH_TIMER"),
		},
		Cache: CacheConfig{
			Type: strings.ToLower(v.GetString("CACHE_TYPE")),
			Redis: RedisConfig{
				Address:  v.GetString("REDIS_ADDRESS"),
				Password: v.GetString("REDIS_PASSWORD"),
				DB:       v.GetInt("REDIS_DB"),
			},
			Memory: MemoryConfig{
				CleanupInterval: cleanup,
			},
			SQLite: SQLiteConfig{
				Path: v.GetString("SQLITE_PATH"),
			},
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
			File:   v.GetString("LOG_FILE"),
		},
		Reddit: RedditConfig{
			BaseURL:    strings.TrimRight(v.GetString("REDDIT_BASE_URL"), "/"),
			UserAgent:  v.GetString("REDDIT_USER_AGENT"),
			Subreddits: splitList(v.GetString("REDDIT_SUBREDDITS")),
			ListingTTL: listingTTL,
		},
		RateLimit: RateLimitConfig{
			Requests: v.GetInt("RATE_LIMIT"),
			Window:   window,
		},
	}

	return cfg, nil
}

// parseDuration accepts Go duration strings or a bare number of seconds
func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := strings.TrimSpace(v.GetString(key))
	if d, err := time.ParseDuration(raw); err == nil {
		return d, nil
	}
	if seconds := v.GetInt(key); seconds > 0 {
		return time.Duration(seconds) * time.Second, nil
	}
	return 0, fmt.Errorf("invalid duration for %s: %q", key, raw)
}

// splitList splits a comma separated value, dropping blanks
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RefreshTimer < 1 {
		return errors.New("refresh timer must be at least 1 second")
	}

	switch c.Cache.Type {
	case CacheTypeMemory:
	case CacheTypeRedis:
		if c.Cache.Redis.Address == "" {
			return errors.New("redis address cannot be empty when using redis cache")
		}
	case CacheTypeSQLite:
		if c.Cache.SQLite.Path == "" {
			return errors.New("sqlite path cannot be empty when using sqlite cache")
		}
	default:
		return errors.New("cache type must be 'memory', 'redis' or 'sqlite'")
	}

	if c.Reddit.BaseURL == "" {
		return errors.New("reddit base url cannot be empty")
	}

	if c.Reddit.ListingTTL <= 0 {
		return errors.New("listing ttl must be positive")
	}

	if c.RateLimit.Requests < 1 || c.RateLimit.Window <= 0 {
		return errors.New("rate limit requires a positive request count and window")
	}

	return nil
}
