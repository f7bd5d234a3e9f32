package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every key; viper treats empty values as unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "REFRESH_TIMER", "CACHE_TYPE", "REDIS_ADDRESS", "REDIS_PASSWORD",
		"REDIS_DB", "MEMORY_CACHE_CLEANUP", "SQLITE_PATH", "LOG_LEVEL",
		"LOG_FORMAT", "LOG_FILE", "REDDIT_BASE_URL", "REDDIT_USER_AGENT",
		"REDDIT_SUBREDDITS", "LISTING_TTL", "RATE_LIMIT", "RATE_WINDOW",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, 60, cfg.Server.RefreshTimer)
	assert.Equal(t, CacheTypeMemory, cfg.Cache.Type)
	assert.Equal(t, "localhost:6379", cfg.Cache.Redis.Address)
	assert.Equal(t, time.Hour, cfg.Cache.Memory.CleanupInterval)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "https://www.reddit.com", cfg.Reddit.BaseURL)
	assert.Equal(t, []string{"nba"}, cfg.Reddit.Subreddits)
	assert.Equal(t, 2*time.Minute, cfg.Reddit.ListingTTL)
	assert.Equal(t, 60, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		assert func(t *testing.T, cfg *Config)
	}{
		{
			name: "port and refresh timer",
			env:  map[string]string{"PORT": "3000", "REFRESH_TIMER": "120"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "3000", cfg.Server.Port)
				assert.Equal(t, 120, cfg.Server.RefreshTimer)
			},
		},
		{
			name: "cache type is lowercased",
			env:  map[string]string{"CACHE_TYPE": "SQLite", "SQLITE_PATH": "/tmp/swish.db"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, CacheTypeSQLite, cfg.Cache.Type)
				assert.Equal(t, "/tmp/swish.db", cfg.Cache.SQLite.Path)
			},
		},
		{
			name: "subreddit list",
			env:  map[string]string{"REDDIT_SUBREDDITS": " nba, lakers ,,warriors "},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"nba", "lakers", "warriors"}, cfg.Reddit.Subreddits)
			},
		},
		{
			name: "base url trailing slash trimmed",
			env:  map[string]string{"REDDIT_BASE_URL": "https://old.reddit.com/"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://old.reddit.com", cfg.Reddit.BaseURL)
			},
		},
		{
			name: "durations as seconds",
			env:  map[string]string{"LISTING_TTL": "30", "RATE_WINDOW": "10s", "MEMORY_CACHE_CLEANUP": "600"},
			assert: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 30*time.Second, cfg.Reddit.ListingTTL)
				assert.Equal(t, 10*time.Second, cfg.RateLimit.Window)
				assert.Equal(t, 10*time.Minute, cfg.Cache.Memory.CleanupInterval)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := LoadFromEnv()
			require.NoError(t, err)
			tt.assert(t, cfg)
		})
	}
}

func TestLoadFromEnv_InvalidDuration(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTING_TTL", "soon")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LISTING_TTL")
}

func TestLoadFromEnv_InvalidCleanupInterval(t *testing.T) {
	clearEnv(t)
	t.Setenv("MEMORY_CACHE_CLEANUP", "hourly")

	_, err := LoadFromEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MEMORY_CACHE_CLEANUP")
}

func TestLoadFromEnv_InvalidRefreshTimer(t *testing.T) {
	clearEnv(t)
	t.Setenv("REFRESH_TIMER", "invalid")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Error(t, cfg.Validate())
}

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: "8000", RefreshTimer: 60},
		Cache: CacheConfig{
			Type:  CacheTypeMemory,
			Redis: RedisConfig{Address: "localhost:6379"},
		},
		Reddit: RedditConfig{
			BaseURL:    "https://www.reddit.com",
			ListingTTL: time.Minute,
		},
		RateLimit: RateLimitConfig{Requests: 10, Window: time.Minute},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "empty port", mutate: func(c *Config) { c.Server.Port = "" }, wantErr: "port"},
		{name: "zero refresh", mutate: func(c *Config) { c.Server.RefreshTimer = 0 }, wantErr: "refresh timer"},
		{name: "unknown cache", mutate: func(c *Config) { c.Cache.Type = "memcached" }, wantErr: "cache type"},
		{name: "redis without address", mutate: func(c *Config) {
			c.Cache.Type = CacheTypeRedis
			c.Cache.Redis.Address = ""
		}, wantErr: "redis address"},
		{name: "sqlite without path", mutate: func(c *Config) { c.Cache.Type = CacheTypeSQLite }, wantErr: "sqlite path"},
		{name: "sqlite with path", mutate: func(c *Config) {
			c.Cache.Type = CacheTypeSQLite
			c.Cache.SQLite.Path = "cache.db"
		}},
		{name: "empty base url", mutate: func(c *Config) { c.Reddit.BaseURL = "" }, wantErr: "base url"},
		{name: "zero ttl", mutate: func(c *Config) { c.Reddit.ListingTTL = 0 }, wantErr: "listing ttl"},
		{name: "zero rate limit", mutate: func(c *Config) { c.RateLimit.Requests = 0 }, wantErr: "rate limit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
