// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache built on patrickmn/go-cache
// - cache/redis: Redis-based cache implementation
// - cache/sqlite: File-backed cache that survives restarts
// - http/standard: Standard library HTTP client with retry logic
// - logger/leveled: logrus logger with optional rotating file output
//
// # Cache Implementations
//
// All caches report a missing or expired key with an error wrapping
// errors.ErrCacheMiss.
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "listing:nba", payload, 2*time.Minute)
//	value, err := cache.Get(ctx, "listing:nba")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address: "localhost:6379",
//	})
//
// SQLite Cache Example:
//
//	cache, err := sqlite.NewSQLiteCache("swish-cache.db", logger)
//	defer cache.Close()
//
// # HTTP Client
//
// The HTTP client retries network failures and 5xx responses:
//
//	client := standard.NewStandardHTTPClient(30*time.Second,
//	    standard.WithUserAgent("SwishAPI/1.0"),
//	    standard.WithLogger(logger),
//	)
//	resp, err := client.Get(ctx, "https://www.reddit.com/r/nba/new/.rss")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := leveled.New(leveled.Options{Level: "debug", Format: "json"})
//	logger.Info("Listing refreshed", map[string]interface{}{
//	    "subreddit": "nba",
//	    "threads":   25,
//	})
package infrastructure
