package listing

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swish-api/core/domain"
	domainerrors "swish-api/core/errors"
	"swish-api/core/interfaces"
)

const listingFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>newest submissions : nba</title>
  <entry>
    <author><name>/u/NBA_MOD</name></author>
    <id>t3_abc123</id>
    <link href="https://www.reddit.com/r/nba/comments/abc123/game_thread/"/>
    <updated>2024-01-15T00:30:00+00:00</updated>
    <published>2024-01-15T00:30:00+00:00</published>
    <title>GAME THREAD: Cleveland Cavaliers @ San Antonio Spurs</title>
  </entry>
  <entry>
    <author><name>/u/fan</name></author>
    <id>t3_def456</id>
    <link href="https://www.reddit.com/r/nba/comments/def456/post_game_thread/"/>
    <updated>2024-01-15T03:00:00+00:00</updated>
    <title>POST GAME THREAD: Spurs defeat Cavaliers 110-100</title>
  </entry>
</feed>`

const threadFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>GAME THREAD</title>
  <entry>
    <author><name>/u/NBA_MOD</name></author>
    <content type="html">&lt;!-- SC_OFF --&gt;&lt;div class="md"&gt;&lt;p&gt;Tip off&lt;/p&gt;&lt;/div&gt;&lt;!-- SC_ON --&gt;</content>
    <id>t3_abc123</id>
    <link href="https://www.reddit.com/r/nba/comments/abc123/game_thread/"/>
    <updated>2024-01-15T00:30:00+00:00</updated>
    <title>GAME THREAD: Cleveland Cavaliers @ San Antonio Spurs</title>
  </entry>
  <entry>
    <author><name>/u/fan</name></author>
    <content type="html">&lt;div class="md"&gt;&lt;p&gt;Go Spurs&lt;/p&gt;&lt;/div&gt;</content>
    <id>t1_c1</id>
    <link href="https://www.reddit.com/r/nba/comments/abc123/game_thread/c1/"/>
    <updated>2024-01-15T00:31:00+00:00</updated>
    <title>/u/fan on GAME THREAD</title>
  </entry>
</feed>`

const emptyFeed = `<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom"><title>empty</title></feed>`

func feedClient(body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: body}, nil
		},
	}
}

func TestNewListingService_Defaults(t *testing.T) {
	svc := NewListingService(interfaces.Dependencies{}, Options{BaseURL: "https://old.reddit.com/"})
	assert.Equal(t, "https://old.reddit.com", svc.baseURL)
	assert.Equal(t, DefaultTTL, svc.ttl)

	svc = NewListingService(interfaces.Dependencies{}, Options{})
	assert.Equal(t, DefaultBaseURL, svc.baseURL)
}

func TestThreads_MapsEntries(t *testing.T) {
	client := feedClient(listingFeed)
	svc := NewListingService(interfaces.Dependencies{HTTPClient: client, Logger: nopLogger{}}, Options{BaseURL: "https://reddit.test"})

	threads, err := svc.Threads(context.Background(), "nba")
	require.NoError(t, err)
	require.Len(t, threads, 2)

	assert.Equal(t, "abc123", threads[0].ID)
	assert.Equal(t, "GAME THREAD: Cleveland Cavaliers @ San Antonio Spurs", threads[0].Title)
	assert.Equal(t, "NBA_MOD", threads[0].Author)
	assert.Equal(t, "https://www.reddit.com/r/nba/comments/abc123/game_thread/", threads[0].Link)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 30, 0, 0, time.UTC), threads[0].Published.UTC())

	assert.Equal(t, "def456", threads[1].ID)
	assert.Equal(t, time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC), threads[1].Published.UTC())

	assert.Equal(t, []string{"https://reddit.test/r/nba/new/.rss"}, client.calls)
}

func TestThreads_UsesCache(t *testing.T) {
	client := feedClient(listingFeed)
	cache := newMapCache()
	svc := NewListingService(interfaces.Dependencies{HTTPClient: client, Cache: cache}, Options{TTL: time.Minute})

	first, err := svc.Threads(context.Background(), "NBA")
	require.NoError(t, err)
	second, err := svc.Threads(context.Background(), "nba")
	require.NoError(t, err)

	assert.Equal(t, 1, client.callCount())
	assert.Equal(t, first, second)
	assert.Equal(t, time.Minute, cache.ttls["listing:nba"])
}

func TestRefresh_BypassesCache(t *testing.T) {
	client := feedClient(listingFeed)
	svc := NewListingService(interfaces.Dependencies{HTTPClient: client, Cache: newMapCache()}, Options{})

	_, err := svc.Threads(context.Background(), "nba")
	require.NoError(t, err)
	_, err = svc.Refresh(context.Background(), "nba")
	require.NoError(t, err)

	assert.Equal(t, 2, client.callCount())
}

func TestThreads_CorruptCacheEntryIsRefetched(t *testing.T) {
	client := feedClient(listingFeed)
	cache := newMapCache()
	cache.items["listing:nba"] = []byte("{not json")
	svc := NewListingService(interfaces.Dependencies{HTTPClient: client, Cache: cache, Logger: nopLogger{}}, Options{})

	threads, err := svc.Threads(context.Background(), "nba")
	require.NoError(t, err)
	assert.Len(t, threads, 2)
	assert.Equal(t, 1, client.callCount())
}

func TestThreads_InvalidSubreddit(t *testing.T) {
	client := feedClient(listingFeed)
	svc := NewListingService(interfaces.Dependencies{HTTPClient: client}, Options{})

	for _, sub := range []string{"", "a", "nba/../admin", "has space"} {
		_, err := svc.Threads(context.Background(), sub)
		assert.True(t, domainerrors.IsValidation(err), sub)
	}
	assert.Equal(t, 0, client.callCount())
}

func TestThreads_Errors(t *testing.T) {
	tests := []struct {
		name   string
		client *mockHTTPClient
		check  func(t *testing.T, err error)
	}{
		{
			name: "server error",
			client: &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				return &mockResponse{statusCode: 503}, nil
			}},
			check: func(t *testing.T, err error) {
				var apiErr *domainerrors.ExternalAPIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, 503, apiErr.StatusCode)
			},
		},
		{
			name: "not found",
			client: &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				return &mockResponse{statusCode: 404}, nil
			}},
			check: func(t *testing.T, err error) {
				assert.True(t, domainerrors.IsNotFound(err))
			},
		},
		{
			name: "network error",
			client: &mockHTTPClient{getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
				return nil, errors.New("connection refused")
			}},
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "connection refused")
			},
		},
		{
			name:   "empty body",
			client: feedClient(""),
			check: func(t *testing.T, err error) {
				assert.True(t, domainerrors.IsExternalAPI(err))
			},
		},
		{
			name:   "malformed feed",
			client: feedClient("this is not xml"),
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "failed to parse feed")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewListingService(interfaces.Dependencies{HTTPClient: tt.client}, Options{})
			threads, err := svc.Threads(context.Background(), "nba")
			require.Error(t, err)
			assert.Nil(t, threads)
			tt.check(t, err)
		})
	}
}

func TestThreads_NoHTTPClient(t *testing.T) {
	svc := NewListingService(interfaces.Dependencies{}, Options{})

	_, err := svc.Threads(context.Background(), "nba")
	assert.EqualError(t, err, "HTTP client not configured")
}

func TestThread_SubmissionAndComments(t *testing.T) {
	client := feedClient(threadFeed)
	cache := newMapCache()
	svc := NewListingService(interfaces.Dependencies{HTTPClient: client, Cache: cache}, Options{BaseURL: "https://reddit.test"})

	thread, err := svc.Thread(context.Background(), "t3_abc123")
	require.NoError(t, err)

	assert.Equal(t, []string{"https://reddit.test/comments/abc123/.rss"}, client.calls)
	assert.Equal(t, "abc123", thread.Submission.ID)
	assert.Equal(t, "GAME THREAD: Cleveland Cavaliers @ San Antonio Spurs", thread.Submission.Title)
	assert.Equal(t, `<div class="md"><p>Tip off</p></div>`, thread.Submission.Body)

	require.Len(t, thread.Comments, 1)
	assert.Equal(t, "c1", thread.Comments[0].ID)
	assert.Equal(t, "fan", thread.Comments[0].Author)
	assert.Empty(t, thread.Comments[0].Title)
	assert.Equal(t, `<div class="md"><p>Go Spurs</p></div>`, thread.Comments[0].Body)

	_, cached := cache.items["thread:abc123"]
	assert.True(t, cached)

	again, err := svc.Thread(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, thread.Submission.ID, again.Submission.ID)
	assert.Equal(t, 1, client.callCount())
}

func TestThread_EmptyFeedIsNotFound(t *testing.T) {
	svc := NewListingService(interfaces.Dependencies{HTTPClient: feedClient(emptyFeed)}, Options{})

	_, err := svc.Thread(context.Background(), "zzz999")
	assert.True(t, domainerrors.IsNotFound(err))
}

func TestThread_InvalidID(t *testing.T) {
	svc := NewListingService(interfaces.Dependencies{HTTPClient: feedClient(threadFeed)}, Options{})

	for _, id := range []string{"", "t3_", "ABC", "abc/def"} {
		_, err := svc.Thread(context.Background(), id)
		assert.True(t, domainerrors.IsValidation(err), id)
	}
}

func TestFindGameThread(t *testing.T) {
	svc := NewListingService(interfaces.Dependencies{HTTPClient: feedClient(listingFeed)}, Options{})
	ctx := context.Background()

	id, err := svc.FindGameThread(ctx, "nba", domain.LiveGameThread, "sas", "cle")
	require.NoError(t, err)
	assert.Equal(t, "abc123", id)

	id, err = svc.FindGameThread(ctx, "nba", domain.PostGameThread, "sas", "cle")
	require.NoError(t, err)
	assert.Equal(t, "def456", id)

	id, err = svc.FindGameThread(ctx, "nba", domain.LiveGameThread, "bos", "lal")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestFindGameThread_PropagatesListingErrors(t *testing.T) {
	svc := NewListingService(interfaces.Dependencies{}, Options{})

	_, err := svc.FindGameThread(context.Background(), "", domain.LiveGameThread, "sas", "cle")
	assert.True(t, domainerrors.IsValidation(err))
}
