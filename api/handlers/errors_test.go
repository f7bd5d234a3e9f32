package handlers

import (
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swish-api/core/errors"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name           string
		input          error
		expectedStatus int
		expectedInMsg  string
	}{
		{
			name:           "NotFoundError returns 404",
			input:          &errors.NotFoundError{Resource: "thread", ID: "abc"},
			expectedStatus: 404,
			expectedInMsg:  "thread not found: abc",
		},
		{
			name:           "ValidationError returns 400",
			input:          &errors.ValidationError{Field: "theme", Message: "unknown theme"},
			expectedStatus: 400,
			expectedInMsg:  "theme",
		},
		{
			name:           "ExternalAPIError with 500 returns 503",
			input:          &errors.ExternalAPIError{StatusCode: 500, Message: "server error", API: "reddit"},
			expectedStatus: 503,
			expectedInMsg:  "Reddit is unavailable",
		},
		{
			name:           "ExternalAPIError with 429 returns 429",
			input:          &errors.ExternalAPIError{StatusCode: 429, Message: "rate limited", API: "reddit"},
			expectedStatus: 429,
			expectedInMsg:  "Rate limited by Reddit",
		},
		{
			name:           "ExternalAPIError with 403 returns 502",
			input:          &errors.ExternalAPIError{StatusCode: 403, Message: "forbidden", API: "reddit"},
			expectedStatus: 502,
			expectedInMsg:  "Reddit rejected the request",
		},
		{
			name:           "ExternalAPIError with unexpected status returns 502",
			input:          &errors.ExternalAPIError{StatusCode: 200, Message: "empty feed content", API: "reddit"},
			expectedStatus: 502,
			expectedInMsg:  "Unexpected response from Reddit",
		},
		{
			name:           "wrapped NotFoundError returns 404",
			input:          fmt.Errorf("wrapped: %w", &errors.NotFoundError{Resource: "thread", ID: "x"}),
			expectedStatus: 404,
			expectedInMsg:  "thread not found",
		},
		{
			name:           "wrapped ExternalAPIError returns 503",
			input:          fmt.Errorf("listing: %w", &errors.ExternalAPIError{StatusCode: 502, API: "reddit"}),
			expectedStatus: 503,
			expectedInMsg:  "Reddit is unavailable",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("boom"),
			expectedStatus: 500,
			expectedInMsg:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input)
			require.Error(t, result)

			var humaErr *huma.ErrorModel
			require.ErrorAs(t, result, &humaErr)
			assert.Equal(t, tt.expectedStatus, humaErr.Status)
			assert.Contains(t, humaErr.Detail, tt.expectedInMsg)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.NoError(t, toHumaError(nil))
}
