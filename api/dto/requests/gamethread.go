// ABOUTME: Request DTOs for game thread lookups
// ABOUTME: Threads may be supplied inline or fetched from a subreddit listing

package requests

import (
	"strings"

	"swish-api/core/domain"
	"swish-api/core/teams"
)

// ThreadInput is a caller supplied thread descriptor
type ThreadInput struct {
	ID    string `json:"id" doc:"Thread id"`
	Title string `json:"title" doc:"Thread title"`
}

// FindGameThreadRequest represents the request body for finding a game thread
type FindGameThreadRequest struct {
	// Threads is optional; when absent the subreddit listing is used
	Threads []ThreadInput `json:"threads,omitempty" maxItems:"1000" doc:"Threads to search; omit to search the subreddit listing"`

	Type string `json:"type" enum:"LIVE_GAME_THREAD,POST_GAME_THREAD" doc:"Thread type"`
	Home string `json:"home" minLength:"2" maxLength:"4" doc:"Home team abbreviation"`
	Away string `json:"away" minLength:"2" maxLength:"4" doc:"Away team abbreviation"`

	Subreddit string `json:"subreddit,omitempty" default:"nba" doc:"Subreddit whose listing is searched"`
}

// ApplyDefaults sets default values for optional fields
func (r *FindGameThreadRequest) ApplyDefaults() {
	if r.Subreddit == "" {
		r.Subreddit = teams.NBASubreddit
	}
	r.Home = strings.ToLower(strings.TrimSpace(r.Home))
	r.Away = strings.ToLower(strings.TrimSpace(r.Away))
}

// Summaries converts inline threads to domain summaries, or nil when none were sent
func (r *FindGameThreadRequest) Summaries() []domain.ThreadSummary {
	if r.Threads == nil {
		return nil
	}
	out := make([]domain.ThreadSummary, 0, len(r.Threads))
	for _, t := range r.Threads {
		out = append(out, domain.ThreadSummary{ID: t.ID, Title: t.Title})
	}
	return out
}
