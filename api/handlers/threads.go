// ABOUTME: Listing and game thread handlers for the Huma API
// ABOUTME: Serves subreddit listings, rendered threads and game thread lookups

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"swish-api/api/dto/mappers"
	"swish-api/api/dto/requests"
	"swish-api/api/dto/responses"
	"swish-api/core/domain"
	"swish-api/core/gamethread"
	"swish-api/core/interfaces"
	"swish-api/core/listing"
	"swish-api/pkg/featureflags"
)

// ThreadsHandler handles listing, thread and game thread requests
type ThreadsHandler struct {
	listings interfaces.ListingService
	renderer interfaces.BodyRenderer
}

// NewThreadsHandler creates a new threads handler; listings may be nil, which
// disables the endpoints that read from Reddit
func NewThreadsHandler(listings interfaces.ListingService, renderer interfaces.BodyRenderer) *ThreadsHandler {
	return &ThreadsHandler{
		listings: listings,
		renderer: renderer,
	}
}

// RegisterRoutes registers thread routes
func (h *ThreadsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "findGameThread",
		Method:      http.MethodPost,
		Path:        "/gamethreads/find",
		Summary:     "Find a game thread",
		Description: "Finds the live or post game thread for a matchup, in the supplied threads or the subreddit listing",
		Tags:        []string{"Threads"},
	}, h.FindGameThread)

	huma.Register(api, huma.Operation{
		OperationID: "listThreads",
		Method:      http.MethodGet,
		Path:        "/r/{subreddit}/threads",
		Summary:     "List subreddit threads",
		Description: "Returns the newest threads of a subreddit",
		Tags:        []string{"Threads"},
	}, h.ListThreads)

	huma.Register(api, huma.Operation{
		OperationID: "getThread",
		Method:      http.MethodGet,
		Path:        "/threads/{id}",
		Summary:     "Get a rendered thread",
		Description: "Returns a submission and its comments with every body rendered to blocks",
		Tags:        []string{"Threads"},
	}, h.GetThread)
}

func (h *ThreadsHandler) listingsAvailable(ctx context.Context) bool {
	return h.listings != nil && featureflags.IsEnabled(ctx, featureflags.ListingEnabled)
}

// FindGameThreadInput defines the input for the FindGameThread operation
type FindGameThreadInput struct {
	Body requests.FindGameThreadRequest
}

// FindGameThreadOutput defines the output for the FindGameThread operation
type FindGameThreadOutput struct {
	Body responses.GameThreadResponse
}

// FindGameThread handles the POST /gamethreads/find endpoint
func (h *ThreadsHandler) FindGameThread(ctx context.Context, input *FindGameThreadInput) (*FindGameThreadOutput, error) {
	input.Body.ApplyDefaults()

	threadType, ok := gamethread.ParseThreadType(input.Body.Type)
	if !ok {
		return nil, huma.Error400BadRequest("type must be LIVE_GAME_THREAD or POST_GAME_THREAD")
	}

	threads := input.Body.Summaries()
	if threads == nil {
		if !h.listingsAvailable(ctx) {
			return nil, huma.Error400BadRequest("threads are required while listings are disabled")
		}
		fetched, err := h.listings.Threads(ctx, input.Body.Subreddit)
		if err != nil {
			return nil, toHumaError(err)
		}
		threads = fetched
	}

	id := gamethread.FindGameThreadID(threads, threadType, input.Body.Home, input.Body.Away)
	return &FindGameThreadOutput{
		Body: responses.GameThreadResponse{ID: id, Found: id != ""},
	}, nil
}

// ListThreadsInput defines the input for the ListThreads operation
type ListThreadsInput struct {
	Subreddit string `path:"subreddit" doc:"Subreddit name without the r/ prefix"`
	Page      int    `query:"page" default:"1" minimum:"1" doc:"Page number"`
	PerPage   int    `query:"per_page" default:"25" minimum:"1" maximum:"100" doc:"Threads per page"`
}

// ListThreadsOutput defines the output for the ListThreads operation
type ListThreadsOutput struct {
	Body responses.ThreadsResponse
}

// ListThreads handles the GET /r/{subreddit}/threads endpoint
func (h *ThreadsHandler) ListThreads(ctx context.Context, input *ListThreadsInput) (*ListThreadsOutput, error) {
	if !h.listingsAvailable(ctx) {
		return nil, huma.Error404NotFound("listings are disabled")
	}

	threads, err := h.listings.Threads(ctx, input.Subreddit)
	if err != nil {
		return nil, toHumaError(err)
	}

	out := mappers.ToThreadsResponse(input.Subreddit, listing.PaginateThreads(threads, input.Page, input.PerPage))
	out.Page = max(input.Page, 1)
	out.PerPage = input.PerPage
	if out.PerPage < 1 {
		out.PerPage = listing.DefaultPerPage
	}
	out.Total = len(threads)

	return &ListThreadsOutput{Body: out}, nil
}

// GetThreadInput defines the input for the GetThread operation
type GetThreadInput struct {
	ID    string `path:"id" doc:"Thread id, with or without the t3_ prefix"`
	Theme string `query:"theme" default:"DARK" doc:"LIGHT or DARK"`
}

// GetThreadOutput defines the output for the GetThread operation
type GetThreadOutput struct {
	Body responses.ThreadResponse
}

// GetThread handles the GET /threads/{id} endpoint
func (h *ThreadsHandler) GetThread(ctx context.Context, input *GetThreadInput) (*GetThreadOutput, error) {
	if !h.listingsAvailable(ctx) {
		return nil, huma.Error404NotFound("listings are disabled")
	}

	theme := input.Theme
	if theme == "" {
		theme = string(domain.ThemeDark)
	}
	kind, err := domain.ParseThemeKind(theme)
	if err != nil {
		return nil, toHumaError(err)
	}

	thread, err := h.listings.Thread(ctx, input.ID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &GetThreadOutput{
		Body: mappers.ToThreadResponse(h.renderer, thread, domain.ThemeFor(kind)),
	}, nil
}
