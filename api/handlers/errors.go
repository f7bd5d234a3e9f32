// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"github.com/danielgtaylor/huma/v2"

	"swish-api/core/errors"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	var apiErr *errors.ExternalAPIError
	if stderrors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode >= 500:
			return huma.Error503ServiceUnavailable("Reddit is unavailable", err)
		case apiErr.StatusCode == 429:
			return huma.Error429TooManyRequests("Rate limited by Reddit")
		case apiErr.StatusCode >= 400:
			return huma.Error502BadGateway("Reddit rejected the request", err)
		default:
			return huma.Error502BadGateway("Unexpected response from Reddit", err)
		}
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
