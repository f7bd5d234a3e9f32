// ABOUTME: Main entry point for the Swish API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"swish-api/api"
	"swish-api/api/handlers"
	"swish-api/core/body"
	"swish-api/core/interfaces"
	"swish-api/core/listing"
	"swish-api/core/workers"
	"swish-api/infrastructure/cache/memory"
	"swish-api/infrastructure/cache/redis"
	"swish-api/infrastructure/cache/sqlite"
	stdhttp "swish-api/infrastructure/http/standard"
	"swish-api/infrastructure/logger/leveled"
	"swish-api/pkg/config"
	"swish-api/pkg/featureflags"
)

const flagPrefix = "SWISH_"

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := leveled.New(leveled.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	flags := featureflags.NewEnvManager(flagPrefix)
	ctx := context.Background()

	logger.Info("Starting Swish API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"cache_type":    cfg.Cache.Type,
		"refresh_timer": cfg.Server.RefreshTimer,
		"log_level":     logger.Level(),
	})

	var cache interfaces.Cache
	var closers []io.Closer
	if flags.IsEnabled(ctx, featureflags.CacheEnabled) {
		cache, closers = newCache(cfg, logger)
	} else {
		logger.Info("Caching disabled", nil)
	}

	httpClient := stdhttp.NewStandardHTTPClient(30*time.Second,
		stdhttp.WithUserAgent(cfg.Reddit.UserAgent),
		stdhttp.WithLogger(logger),
	)

	plain := body.NewRenderer()
	markdown := body.NewRenderer(body.WithMarkdown(true))

	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
		Renderer:   plain,
	}

	listings := listing.NewListingService(deps, listing.Options{
		BaseURL: cfg.Reddit.BaseURL,
		TTL:     cfg.Reddit.ListingTTL,
	})

	var refresher *workers.ListingRefresher
	if flags.IsEnabled(ctx, featureflags.RefreshEnabled) && flags.IsEnabled(ctx, featureflags.ListingEnabled) {
		refresherConfig := workers.DefaultRefresherConfig()
		refresherConfig.Subreddits = cfg.Reddit.Subreddits
		refresherConfig.Interval = time.Duration(cfg.Server.RefreshTimer) * time.Second

		refresher = workers.NewListingRefresher(listings, logger, refresherConfig)
		if err := refresher.Start(); err != nil {
			logger.Error("Failed to start listing refresher", map[string]interface{}{
				"error": err.Error(),
			})
			refresher = nil
		}
	}

	apiConfig := api.APIConfig{Logger: logger, Flags: flags}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.RateLimit.Requests
		apiConfig.RateWindow = cfg.RateLimit.Window
	}
	humaAPI, router, limiter := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewRenderHandler(plain, markdown).RegisterRoutes(humaAPI)
	handlers.NewTeamsHandler().RegisterRoutes(humaAPI)
	handlers.NewThreadsHandler(listings, plain).RegisterRoutes(humaAPI)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if refresher != nil {
		_ = refresher.Stop()
	}
	if limiter != nil {
		limiter.Close()
	}
	for _, c := range closers {
		if err := c.Close(); err != nil {
			logger.Warn("Failed to close resource", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Server stopped", nil)
}

// newCache builds the configured backend, falling back to memory when it is unreachable
func newCache(cfg *config.Config, logger interfaces.Logger) (interfaces.Cache, []io.Closer) {
	switch cfg.Cache.Type {
	case config.CacheTypeRedis:
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err == nil {
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
			return redisCache, []io.Closer{redisCache}
		}
		logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	case config.CacheTypeSQLite:
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path, logger)
		if err == nil {
			logger.Info("Using SQLite cache", map[string]interface{}{
				"path": cfg.Cache.SQLite.Path,
			})
			return sqliteCache, []io.Closer{sqliteCache}
		}
		logger.Error("Failed to open SQLite cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	interval := cfg.Cache.Memory.CleanupInterval
	if interval <= 0 {
		interval = memory.DefaultCleanupInterval
	}
	logger.Info("Using memory cache", nil)
	return memory.NewMemoryCacheWithCleanup(interval), nil
}

func init() {
	fmt.Println(`
   _____         _      __
  / ___/      __(_)____/ /_
  \__ \ | /| / / / ___/ __ \
 ___/ / |/ |/ / (__  ) / / /
/____/|__/|__/_/____/_/ /_/
	`)
}
