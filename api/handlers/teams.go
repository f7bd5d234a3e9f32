// ABOUTME: Team handler for the Huma API
// ABOUTME: Serves the static NBA team table

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"swish-api/api/dto/mappers"
	"swish-api/api/dto/responses"
	"swish-api/core/teams"
)

// TeamsHandler serves team metadata
type TeamsHandler struct{}

// NewTeamsHandler creates a new teams handler
func NewTeamsHandler() *TeamsHandler {
	return &TeamsHandler{}
}

// RegisterRoutes registers team routes
func (h *TeamsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "listTeams",
		Method:      http.MethodGet,
		Path:        "/teams",
		Summary:     "List NBA teams",
		Description: "Returns every team with its abbreviation, subreddit and asset names",
		Tags:        []string{"Teams"},
	}, h.ListTeams)
}

// ListTeamsOutput defines the output for the ListTeams operation
type ListTeamsOutput struct {
	Body responses.TeamsResponse
}

// ListTeams handles the GET /teams endpoint
func (h *TeamsHandler) ListTeams(ctx context.Context, _ *struct{}) (*ListTeamsOutput, error) {
	return &ListTeamsOutput{
		Body: responses.TeamsResponse{Teams: mappers.ToTeamResponses(teams.All())},
	}, nil
}
