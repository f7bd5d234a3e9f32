// ABOUTME: Listing service loads subreddit listings and threads from Reddit feeds
// ABOUTME: Fetches Atom feeds, maps entries to thread summaries and caches the result

package listing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"swish-api/core/domain"
	domainerrors "swish-api/core/errors"
	"swish-api/core/gamethread"
	"swish-api/core/interfaces"
	timeutil "swish-api/pkg/utils/time"
)

const (
	// DefaultBaseURL is the Reddit host feeds are read from
	DefaultBaseURL = "https://www.reddit.com"

	// DefaultTTL is how long listings stay cached
	DefaultTTL = 2 * time.Minute

	linkPrefix    = "t3_"
	commentPrefix = "t1_"

	listingKeyPrefix = "listing:"
	threadKeyPrefix  = "thread:"
)

var (
	subredditPattern = regexp.MustCompile(`^[A-Za-z0-9_]{2,21}$`)
	threadIDPattern  = regexp.MustCompile(`^[a-z0-9]{1,12}$`)

	// Reddit wraps self text and comments in these markers
	scMarkers = strings.NewReplacer("<!-- SC_OFF -->", "", "<!-- SC_ON -->", "")
)

// Options configures a ListingService
type Options struct {
	// BaseURL overrides DefaultBaseURL
	BaseURL string

	// TTL overrides DefaultTTL
	TTL time.Duration
}

// ListingService implements interfaces.ListingService over Reddit's Atom feeds
type ListingService struct {
	deps    interfaces.Dependencies
	baseURL string
	ttl     time.Duration
}

// NewListingService creates a new listing service instance
func NewListingService(deps interfaces.Dependencies, opts Options) *ListingService {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	ttl := opts.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &ListingService{
		deps:    deps,
		baseURL: baseURL,
		ttl:     ttl,
	}
}

// Threads returns the newest thread summaries of a subreddit, served from cache when fresh
func (s *ListingService) Threads(ctx context.Context, subreddit string) ([]domain.ThreadSummary, error) {
	if err := validateSubreddit(subreddit); err != nil {
		return nil, err
	}

	key := listingKeyPrefix + strings.ToLower(subreddit)
	var cached []domain.ThreadSummary
	if s.getCached(ctx, key, &cached) {
		return cached, nil
	}

	return s.Refresh(ctx, subreddit)
}

// Refresh re-fetches a subreddit listing and replaces the cached copy
func (s *ListingService) Refresh(ctx context.Context, subreddit string) ([]domain.ThreadSummary, error) {
	if err := validateSubreddit(subreddit); err != nil {
		return nil, err
	}

	feed, err := s.fetchFeed(ctx, fmt.Sprintf("%s/r/%s/new/.rss", s.baseURL, subreddit))
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.ThreadSummary, 0, len(feed.Items))
	for _, item := range feed.Items {
		summaries = append(summaries, domain.ThreadSummary{
			ID:        trimKind(item.GUID, linkPrefix),
			Title:     item.Title,
			Author:    authorName(item),
			Link:      item.Link,
			Published: published(item),
		})
	}

	s.setCached(ctx, listingKeyPrefix+strings.ToLower(subreddit), summaries)

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Listing fetched", map[string]interface{}{
			"subreddit": subreddit,
			"threads":   len(summaries),
		})
	}

	return summaries, nil
}

// Thread returns a submission followed by its comments
func (s *ListingService) Thread(ctx context.Context, id string) (*domain.Thread, error) {
	id = trimKind(strings.TrimSpace(id), linkPrefix)
	if !threadIDPattern.MatchString(id) {
		return nil, &domainerrors.ValidationError{
			Field:   "id",
			Message: "thread id must be a lowercase base36 reddit id",
		}
	}

	key := threadKeyPrefix + id
	var cached domain.Thread
	if s.getCached(ctx, key, &cached) {
		return &cached, nil
	}

	feed, err := s.fetchFeed(ctx, fmt.Sprintf("%s/comments/%s/.rss", s.baseURL, id))
	if err != nil {
		return nil, err
	}
	if len(feed.Items) == 0 {
		return nil, &domainerrors.NotFoundError{Resource: "thread", ID: id}
	}

	thread := &domain.Thread{
		Submission: toPost(feed.Items[0], linkPrefix),
		Comments:   make([]domain.Post, 0, len(feed.Items)-1),
	}
	for _, item := range feed.Items[1:] {
		thread.Comments = append(thread.Comments, toPost(item, commentPrefix))
	}

	s.setCached(ctx, key, thread)
	return thread, nil
}

// FindGameThread looks up the game thread for a matchup in a subreddit's listing
func (s *ListingService) FindGameThread(ctx context.Context, subreddit string, threadType domain.ThreadType, homeAbbr, awayAbbr string) (string, error) {
	threads, err := s.Threads(ctx, subreddit)
	if err != nil {
		return "", err
	}
	return gamethread.FindGameThreadID(threads, threadType, homeAbbr, awayAbbr), nil
}

func (s *ListingService) fetchFeed(ctx context.Context, feedURL string) (*gofeed.Feed, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, feedURL)
	if err != nil {
		return nil, domainerrors.WrapError(err, "failed to fetch "+feedURL)
	}
	defer resp.Body().Close()

	if resp.StatusCode() == http.StatusNotFound {
		return nil, &domainerrors.NotFoundError{Resource: "feed", ID: feedURL}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &domainerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "feed returned non-200 status code",
			API:        "reddit",
		}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, &domainerrors.ExternalAPIError{
			StatusCode: resp.StatusCode(),
			Message:    "empty feed content",
			API:        "reddit",
		}
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(body))
	if err != nil {
		return nil, domainerrors.WrapError(err, "failed to parse feed")
	}
	return feed, nil
}

// getCached decodes a cached value into dest and reports whether it was found
func (s *ListingService) getCached(ctx context.Context, key string, dest interface{}) bool {
	if s.deps.Cache == nil {
		return false
	}

	data, err := s.deps.Cache.Get(ctx, key)
	if err != nil {
		if !domainerrors.IsCacheMiss(err) && s.deps.Logger != nil {
			s.deps.Logger.Warn("Cache read failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		return false
	}

	if err := json.Unmarshal(data, dest); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Discarding undecodable cache entry", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
		_ = s.deps.Cache.Delete(ctx, key)
		return false
	}
	return true
}

// setCached stores value as JSON; cache failures never fail the request
func (s *ListingService) setCached(ctx context.Context, key string, value interface{}) {
	if s.deps.Cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.deps.Cache.Set(ctx, key, data, s.ttl); err != nil && s.deps.Logger != nil {
		s.deps.Logger.Warn("Cache write failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	}
}

func validateSubreddit(subreddit string) error {
	if !subredditPattern.MatchString(subreddit) {
		return &domainerrors.ValidationError{
			Field:   "subreddit",
			Message: "subreddit must be 2-21 letters, digits or underscores",
		}
	}
	return nil
}

func toPost(item *gofeed.Item, kind string) domain.Post {
	body := item.Content
	if body == "" {
		body = item.Description
	}

	post := domain.Post{
		ID:        trimKind(item.GUID, kind),
		Author:    authorName(item),
		Body:      strings.TrimSpace(scMarkers.Replace(body)),
		Link:      item.Link,
		Published: published(item),
	}
	if kind == linkPrefix {
		post.Title = item.Title
	}
	return post
}

// trimKind strips Reddit's fullname prefix, e.g. "t3_abc" to "abc"
func trimKind(id, kind string) string {
	return strings.TrimPrefix(id, kind)
}

func authorName(item *gofeed.Item) string {
	if item.Author == nil {
		return ""
	}
	return strings.TrimPrefix(item.Author.Name, "/u/")
}

func published(item *gofeed.Item) time.Time {
	switch {
	case item.PublishedParsed != nil:
		return *item.PublishedParsed
	case item.UpdatedParsed != nil:
		return *item.UpdatedParsed
	}
	return timeutil.FirstParsed(item.Published, item.Updated)
}
