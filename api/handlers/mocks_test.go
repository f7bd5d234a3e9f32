package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"

	"swish-api/core/domain"
	"swish-api/pkg/featureflags"
)

// useFlags puts flags on every request context the way the server's
// feature flag middleware does; nil leaves handlers on the defaults
func useFlags(api huma.API, flags featureflags.Manager) {
	if flags == nil {
		return
	}
	api.UseMiddleware(func(ctx huma.Context, next func(huma.Context)) {
		next(huma.WithContext(ctx, featureflags.WithManager(ctx.Context(), flags)))
	})
}

// mockListingService is a mock implementation of the listing service
type mockListingService struct {
	threadsFunc func(ctx context.Context, subreddit string) ([]domain.ThreadSummary, error)
	threadFunc  func(ctx context.Context, id string) (*domain.Thread, error)
	calls       int
}

func (m *mockListingService) Threads(ctx context.Context, subreddit string) ([]domain.ThreadSummary, error) {
	m.calls++
	if m.threadsFunc != nil {
		return m.threadsFunc(ctx, subreddit)
	}
	return nil, nil
}

func (m *mockListingService) Thread(ctx context.Context, id string) (*domain.Thread, error) {
	m.calls++
	if m.threadFunc != nil {
		return m.threadFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockListingService) Refresh(ctx context.Context, subreddit string) ([]domain.ThreadSummary, error) {
	return m.Threads(ctx, subreddit)
}
