// ABOUTME: Default implementations for library dependencies
// ABOUTME: Provides factory functions for creating default service implementations

package swish

import (
	"time"

	"swish-api/core/interfaces"
	"swish-api/infrastructure/cache/memory"
	"swish-api/infrastructure/cache/sqlite"
	httpInfra "swish-api/infrastructure/http/standard"
	"swish-api/infrastructure/logger/leveled"
)

const defaultUserAgent = "Swish-Library/1.0"

// DefaultHTTPClient creates a default HTTP client with sensible timeouts
func DefaultHTTPClient() interfaces.HTTPClient {
	return httpInfra.NewStandardHTTPClient(30*time.Second, httpInfra.WithUserAgent(defaultUserAgent))
}

// DefaultMemoryCache creates a default in-memory cache
func DefaultMemoryCache() interfaces.Cache {
	return memory.NewMemoryCache()
}

// DefaultLogger creates a logger that writes warnings and errors to stdout
func DefaultLogger() interfaces.Logger {
	return leveled.New(leveled.Options{Level: "warn"})
}

// QuietLogger creates a logger that discards all output
func QuietLogger() interfaces.Logger {
	return &quietLogger{}
}

// quietLogger is a logger that discards all output
type quietLogger struct{}

func (q *quietLogger) Debug(msg string, fields map[string]interface{}) {}
func (q *quietLogger) Info(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Warn(msg string, fields map[string]interface{})  {}
func (q *quietLogger) Error(msg string, fields map[string]interface{}) {}

// WithSQLiteCache persists listings in a SQLite file; the client closes it
func WithSQLiteCache(filePath string) Option {
	return func(c *Config) error {
		if filePath == "" {
			filePath = "swish_cache.db"
		}
		cache, err := sqlite.NewSQLiteCache(filePath, c.Logger)
		if err != nil {
			return NewError(ErrorTypeConfiguration, "failed to open sqlite cache").
				WithCause(err).
				WithContext("path", filePath)
		}
		c.Cache = cache
		c.closers = append(c.closers, cache)
		return nil
	}
}

// WithDefaultDependencies fills any unset dependency with its default
func WithDefaultDependencies() Option {
	return func(c *Config) error {
		applyDefaults(c)
		return nil
	}
}

// WithQuietMode configures the client to suppress all log output
func WithQuietMode() Option {
	return func(c *Config) error {
		c.Logger = QuietLogger()
		return nil
	}
}

func applyDefaults(c *Config) {
	if c.HTTPClient == nil {
		c.HTTPClient = DefaultHTTPClient()
	}
	if c.Cache == nil {
		c.Cache = DefaultMemoryCache()
	}
	if c.Logger == nil {
		c.Logger = DefaultLogger()
	}
}
