// ABOUTME: Listing refresher keeps cached subreddit listings warm in the background
// ABOUTME: Runs a ticker that fans subreddit refreshes out to a bounded worker pool

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"swish-api/core/interfaces"
)

// ErrNoSubreddits is returned by Start when there is nothing to refresh
var ErrNoSubreddits = errors.New("no subreddits configured for refresh")

// RefresherConfig holds configuration for the listing refresher
type RefresherConfig struct {
	Subreddits []string
	Interval   time.Duration
	MaxWorkers int

	// Timeout bounds a single subreddit refresh
	Timeout time.Duration
}

// DefaultRefresherConfig returns the default refresher configuration
func DefaultRefresherConfig() RefresherConfig {
	return RefresherConfig{
		Subreddits: []string{"nba"},
		Interval:   time.Minute,
		MaxWorkers: 4,
		Timeout:    30 * time.Second,
	}
}

// RefreshResult summarises one pass over the configured subreddits
type RefreshResult struct {
	Refreshed int
	Failed    map[string]error
}

// ListingRefresher periodically re-fetches subreddit listings
type ListingRefresher struct {
	listings interfaces.ListingService
	logger   interfaces.Logger
	config   RefresherConfig

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// NewListingRefresher creates a new refresher
func NewListingRefresher(listings interfaces.ListingService, logger interfaces.Logger, config RefresherConfig) *ListingRefresher {
	defaults := DefaultRefresherConfig()
	if config.Interval <= 0 {
		config.Interval = defaults.Interval
	}
	if config.MaxWorkers <= 0 {
		config.MaxWorkers = defaults.MaxWorkers
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}

	return &ListingRefresher{
		listings: listings,
		logger:   logger,
		config:   config,
	}
}

// Start refreshes once immediately and then on every interval until Stop
func (r *ListingRefresher) Start() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return nil
	}
	if len(r.config.Subreddits) == 0 {
		return ErrNoSubreddits
	}

	ctx, cancel := context.WithCancel(context.Background())
	r.cancel = cancel
	r.running = true

	r.wg.Add(1)
	go r.loop(ctx)

	return nil
}

// Stop cancels in-flight refreshes and waits for the loop to exit
func (r *ListingRefresher) Stop() error {
	r.mu.Lock()
	if !r.running {
		r.mu.Unlock()
		return nil
	}
	r.cancel()
	r.running = false
	r.mu.Unlock()

	r.wg.Wait()
	return nil
}

// IsRunning reports whether the refresh loop is active
func (r *ListingRefresher) IsRunning() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *ListingRefresher) loop(ctx context.Context) {
	defer r.wg.Done()

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	r.RefreshAll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RefreshAll(ctx)
		}
	}
}

// RefreshAll refreshes every configured subreddit using at most MaxWorkers goroutines
func (r *ListingRefresher) RefreshAll(ctx context.Context) RefreshResult {
	start := time.Now()
	jobs := make(chan string)
	result := RefreshResult{Failed: make(map[string]error)}
	var mu sync.Mutex
	var wg sync.WaitGroup

	workers := r.config.MaxWorkers
	if workers > len(r.config.Subreddits) {
		workers = len(r.config.Subreddits)
	}

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for subreddit := range jobs {
				err := r.refreshOne(ctx, subreddit)
				mu.Lock()
				if err != nil {
					result.Failed[subreddit] = err
				} else {
					result.Refreshed++
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, subreddit := range r.config.Subreddits {
		select {
		case jobs <- subreddit:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	if r.logger != nil {
		r.logger.Info("Listing refresh completed", map[string]interface{}{
			"refreshed": result.Refreshed,
			"failed":    len(result.Failed),
			"duration":  time.Since(start).String(),
		})
	}

	return result
}

func (r *ListingRefresher) refreshOne(ctx context.Context, subreddit string) error {
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	threads, err := r.listings.Refresh(ctx, subreddit)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("Listing refresh failed", map[string]interface{}{
				"subreddit": subreddit,
				"error":     err.Error(),
			})
		}
		return err
	}

	if r.logger != nil {
		r.logger.Debug("Listing refreshed", map[string]interface{}{
			"subreddit": subreddit,
			"threads":   len(threads),
		})
	}
	return nil
}
