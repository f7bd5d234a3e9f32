// Package core contains the business logic for Swish.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (Block, Theme, Thread, ThreadSummary)
// - body: Segments raw bodies into table and text blocks and renders them
// - flair: Parses /r/nba user flairs
// - gamethread: Finds live and post game threads by title
// - teams: The static team table
// - listing: Loads subreddit listings and threads from Reddit feeds
// - workers: Background listing refresh
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "swish-api/core/body"
//	    "swish-api/core/domain"
//	)
//
//	renderer := body.NewRenderer()
//	blocks := renderer.Render(raw, domain.DarkTheme(), domain.BodyComment)
//	for _, b := range blocks {
//	    if b.Kind == domain.BlockTable {
//	        // show b.StyledHTML in a web view framed by b.BorderAsset
//	    }
//	}
package core
