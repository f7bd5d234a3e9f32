// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used by handlers, workers and the library facade

package interfaces

import (
	"context"

	"swish-api/core/domain"
)

// ListingService loads Reddit listings and threads
type ListingService interface {
	// Threads returns the newest thread summaries of a subreddit
	Threads(ctx context.Context, subreddit string) ([]domain.ThreadSummary, error)

	// Thread returns a submission and its comments
	Thread(ctx context.Context, id string) (*domain.Thread, error)

	// Refresh bypasses the cache and re-fetches a subreddit listing
	Refresh(ctx context.Context, subreddit string) ([]domain.ThreadSummary, error)
}

// BodyRenderer renders a raw Reddit body into blocks
type BodyRenderer interface {
	Render(raw string, theme domain.Theme, bodyType domain.BodyType) []domain.RenderedBlock
}
