// ABOUTME: Main client for the Swish library providing body rendering and thread lookup
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package swish

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"swish-api/core/body"
	"swish-api/core/domain"
	"swish-api/core/flair"
	"swish-api/core/gamethread"
	"swish-api/core/interfaces"
	"swish-api/core/listing"
	"swish-api/core/teams"
)

// Client is the main entry point for the Swish library
type Client struct {
	renderer *body.Renderer
	listings *listing.ListingService
	theme    domain.Theme
	config   Config

	mu     sync.Mutex
	closed bool
}

// Config holds the configuration for the client
type Config struct {
	// Cache stores fetched listings and threads
	Cache interfaces.Cache

	// HTTPClient fetches Reddit feeds
	HTTPClient interfaces.HTTPClient

	// Logger receives diagnostics
	Logger interfaces.Logger

	// Theme styles table documents
	Theme domain.ThemeKind

	// Markdown adds a markdown rendition to text blocks
	Markdown bool

	// BaseURL is the Reddit host
	BaseURL string

	// ListingTTL is how long fetched listings stay cached
	ListingTTL time.Duration

	// closers are resources opened by options and owned by the client
	closers []io.Closer
}

// NewClient creates a new Swish client with the given options
func NewClient(options ...Option) (*Client, error) {
	config := defaultConfig()

	for _, opt := range options {
		if err := opt(&config); err != nil {
			return nil, err
		}
	}
	applyDefaults(&config)

	renderer := body.NewRenderer(body.WithMarkdown(config.Markdown))
	deps := interfaces.Dependencies{
		Cache:      config.Cache,
		HTTPClient: config.HTTPClient,
		Logger:     config.Logger,
		Renderer:   renderer,
	}

	return &Client{
		renderer: renderer,
		listings: listing.NewListingService(deps, listing.Options{
			BaseURL: config.BaseURL,
			TTL:     config.ListingTTL,
		}),
		theme:  domain.ThemeFor(config.Theme),
		config: config,
	}, nil
}

// Close releases resources the client opened
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	var errs []error
	for _, closer := range c.config.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (c *Client) checkOpen() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// Theme returns the theme table documents are styled with
func (c *Client) Theme() Theme {
	return c.theme.Kind
}

// RenderBody splits a raw body into table and text blocks in document order
func (c *Client) RenderBody(raw string, bodyType BodyType) []Block {
	return blocksToPublic(c.renderer.Render(raw, c.theme, bodyType))
}

// WrapTable embeds a table fragment in a standalone document styled for the client theme
func (c *Client) WrapTable(tableHTML string) string {
	return body.Wrap(tableHTML, c.theme)
}

// IsRemoved reports whether a body was removed by moderators or deleted by its author
func IsRemoved(raw string) bool {
	return body.IsRemovedOrDeleted(raw)
}

// ParseFlair parses a flair of the form "Flair {cssClass='X', text='Y'}".
// Malformed flairs yield empty fields rather than an error.
func ParseFlair(raw string) Flair {
	return flairToPublic(flair.Parse(raw))
}

// FindGameThreadID returns the id of the first game thread of threadType between
// the two teams, or "" when none matches
func FindGameThreadID(threads []ThreadSummary, threadType ThreadType, homeAbbr, awayAbbr string) string {
	return gamethread.FindGameThreadID(summariesToDomain(threads), threadType, homeAbbr, awayAbbr)
}

// Teams returns every team ordered by abbreviation
func Teams() []Team {
	return teams.All()
}

// TeamSubreddit returns the subreddit of a team abbreviation such as "sas"
func TeamSubreddit(abbr string) (string, error) {
	subreddit, err := teams.SubredditFromAbbr(abbr)
	if err != nil {
		return "", wrapError(err)
	}
	return subreddit, nil
}

// Threads returns the newest threads of a subreddit
func (c *Client) Threads(ctx context.Context, subreddit string) ([]ThreadSummary, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	threads, err := c.listings.Threads(ctx, subreddit)
	if err != nil {
		return nil, wrapError(err)
	}
	return summariesToPublic(threads), nil
}

// FindGameThread looks up a game thread in the subreddit listing
func (c *Client) FindGameThread(ctx context.Context, subreddit string, threadType ThreadType, homeAbbr, awayAbbr string) (string, error) {
	if err := c.checkOpen(); err != nil {
		return "", err
	}

	id, err := c.listings.FindGameThread(ctx, subreddit, threadType, homeAbbr, awayAbbr)
	if err != nil {
		return "", wrapError(err)
	}
	return id, nil
}

// Thread fetches a thread and renders its submission and comments
func (c *Client) Thread(ctx context.Context, id string) (*Thread, error) {
	if err := c.checkOpen(); err != nil {
		return nil, err
	}

	thread, err := c.listings.Thread(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}

	out := &Thread{
		Submission: c.renderPost(thread.Submission, BodySubmission),
		Comments:   make([]Post, 0, len(thread.Comments)),
	}
	for _, comment := range thread.Comments {
		out.Comments = append(out.Comments, c.renderPost(comment, BodyComment))
	}
	return out, nil
}

func (c *Client) renderPost(post domain.Post, bodyType BodyType) Post {
	out := Post{
		ID:        post.ID,
		Author:    post.Author,
		Title:     post.Title,
		Link:      post.Link,
		Published: post.Published,
	}
	if body.IsRemovedMarkup(post.Body) {
		out.Removed = true
		out.Blocks = []Block{}
		return out
	}
	out.Blocks = c.RenderBody(post.Body, bodyType)
	return out
}
