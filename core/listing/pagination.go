// ABOUTME: Pagination utilities for thread listings
// ABOUTME: Provides functions to paginate thread summaries for API responses

package listing

import "swish-api/core/domain"

// DefaultPerPage is used when a caller passes a non-positive page size
const DefaultPerPage = 25

// PaginateThreads returns one page of threads; pages start at 1
func PaginateThreads(threads []domain.ThreadSummary, page, perPage int) []domain.ThreadSummary {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}

	start := (page - 1) * perPage
	if start >= len(threads) {
		return []domain.ThreadSummary{}
	}

	end := start + perPage
	if end > len(threads) {
		end = len(threads)
	}

	return threads[start:end]
}
