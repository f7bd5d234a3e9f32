// ABOUTME: Render and flair handlers for the Huma API
// ABOUTME: Turns raw Reddit bodies into themed blocks and parses /r/nba flairs

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"swish-api/api/dto/mappers"
	"swish-api/api/dto/requests"
	"swish-api/api/dto/responses"
	"swish-api/core/domain"
	"swish-api/core/interfaces"
	"swish-api/pkg/featureflags"
)

// RenderHandler handles body rendering and flair parsing
type RenderHandler struct {
	plain    interfaces.BodyRenderer
	markdown interfaces.BodyRenderer
}

// NewRenderHandler creates a new render handler. The markdown renderer is
// used when a request asks for markdown output and the request context's
// flags allow it.
func NewRenderHandler(plain, markdown interfaces.BodyRenderer) *RenderHandler {
	return &RenderHandler{
		plain:    plain,
		markdown: markdown,
	}
}

// RegisterRoutes registers render and flair routes
func (h *RenderHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "renderBody",
		Method:      http.MethodPost,
		Path:        "/render",
		Summary:     "Render a Reddit body",
		Description: "Splits a raw body into table and text blocks, wraps tables in a themed document and normalises text",
		Tags:        []string{"Render"},
	}, h.Render)

	huma.Register(api, huma.Operation{
		OperationID: "parseFlairs",
		Method:      http.MethodPost,
		Path:        "/flairs",
		Summary:     "Parse /r/nba flairs",
		Description: "Extracts the display text, CSS class and team asset from raw flair strings",
		Tags:        []string{"Flair"},
	}, h.ParseFlairs)
}

// RenderInput defines the input for the Render operation
type RenderInput struct {
	Body requests.RenderRequest
}

// RenderOutput defines the output for the Render operation
type RenderOutput struct {
	Body responses.RenderResponse
}

// Render handles the POST /render endpoint
func (h *RenderHandler) Render(ctx context.Context, input *RenderInput) (*RenderOutput, error) {
	input.Body.ApplyDefaults()

	kind, err := domain.ParseThemeKind(input.Body.Theme)
	if err != nil {
		return nil, toHumaError(err)
	}
	bodyType, err := domain.ParseBodyType(input.Body.BodyType)
	if err != nil {
		return nil, toHumaError(err)
	}

	renderer := h.plain
	if h.markdown != nil && input.Body.WantsMarkdown(featureflags.IsEnabled(ctx, featureflags.MarkdownEnabled)) {
		renderer = h.markdown
	}

	return &RenderOutput{
		Body: mappers.ToRenderResponse(renderer, input.Body.Body, domain.ThemeFor(kind), bodyType),
	}, nil
}

// ParseFlairsInput defines the input for the ParseFlairs operation
type ParseFlairsInput struct {
	Body requests.FlairRequest
}

// ParseFlairsOutput defines the output for the ParseFlairs operation
type ParseFlairsOutput struct {
	Body responses.FlairsResponse
}

// ParseFlairs handles the POST /flairs endpoint
func (h *RenderHandler) ParseFlairs(ctx context.Context, input *ParseFlairsInput) (*ParseFlairsOutput, error) {
	out := &ParseFlairsOutput{}
	out.Body.Flairs = make([]responses.FlairResult, 0, len(input.Body.Flairs))
	for _, raw := range input.Body.Flairs {
		out.Body.Flairs = append(out.Body.Flairs, mappers.ToFlairResult(raw))
	}
	return out, nil
}
