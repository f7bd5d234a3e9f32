// Package api provides the HTTP API layer for Swish.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Endpoints
//
//	POST /render               split a body into table and text blocks
//	POST /flairs               parse user flair strings
//	GET  /teams                list the team table
//	POST /gamethreads/find     find a live or post game thread
//	GET  /r/{subreddit}/threads newest threads of a subreddit
//	GET  /threads/{id}         a submission and its comments, rendered
//
// The OpenAPI document is served at /openapi.json and the docs UI at /docs.
//
// # Usage Example
//
//	humaAPI, router, limiter := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  60,
//	    RateWindow: time.Minute,
//	})
//	defer limiter.Close()
//
//	handlers.NewTeamsHandler().RegisterRoutes(humaAPI)
//
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// Errors use the RFC 7807 format produced by Huma:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "theme: must be LIGHT or DARK"
//	}
//
// Domain errors are mapped to HTTP status codes in handlers/errors.go.
package api
