// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Keeps rendering, flair and listing types out of the HTTP layer

package mappers

import (
	"time"

	"swish-api/api/dto/responses"
	"swish-api/core/body"
	"swish-api/core/domain"
	"swish-api/core/flair"
	"swish-api/core/teams"
)

// Renderer is the subset of the body renderer the mappers need
type Renderer interface {
	Render(raw string, theme domain.Theme, bodyType domain.BodyType) []domain.RenderedBlock
}

// ToBlockResponses converts rendered blocks to DTOs
func ToBlockResponses(blocks []domain.RenderedBlock) []responses.BlockResponse {
	out := make([]responses.BlockResponse, 0, len(blocks))
	for _, b := range blocks {
		block := responses.BlockResponse{
			Kind:        string(b.Kind),
			StyledHTML:  b.StyledHTML,
			BorderAsset: b.BorderAsset,
			HTML:        b.HTML,
			Text:        b.Text,
			Markdown:    b.Markdown,
			Layout:      b.Layout,
		}
		for _, l := range b.Links {
			block.Links = append(block.Links, responses.LinkResponse{Text: l.Text, URL: l.URL})
		}
		out = append(out, block)
	}
	return out
}

// ToRenderResponse renders raw and wraps the blocks; removed bodies have no blocks
func ToRenderResponse(r Renderer, raw string, theme domain.Theme, bodyType domain.BodyType) responses.RenderResponse {
	if body.IsRemovedOrDeleted(raw) {
		return responses.RenderResponse{Removed: true, Blocks: []responses.BlockResponse{}}
	}
	return responses.RenderResponse{Blocks: ToBlockResponses(r.Render(raw, theme, bodyType))}
}

// ToFlairResult converts a raw flair string to its parsed DTO
func ToFlairResult(raw string) responses.FlairResult {
	f := flair.Parse(raw)
	return responses.FlairResult{
		Raw:      raw,
		Text:     f.Text,
		CSSClass: f.CSSClass,
		Asset:    f.Asset,
	}
}

// ToTeamResponses converts the static team table to DTOs
func ToTeamResponses(all []teams.Team) []responses.TeamResponse {
	out := make([]responses.TeamResponse, 0, len(all))
	for _, t := range all {
		out = append(out, responses.TeamResponse{
			Abbr:      t.Abbr,
			Name:      t.Name,
			Subreddit: t.Subreddit,
			Logo:      t.Logo,
			Snoo:      t.Snoo,
		})
	}
	return out
}

// ToThreadsResponse converts a listing to its DTO
func ToThreadsResponse(subreddit string, threads []domain.ThreadSummary) responses.ThreadsResponse {
	out := responses.ThreadsResponse{
		Subreddit: subreddit,
		Threads:   make([]responses.ThreadSummaryResponse, 0, len(threads)),
	}
	for _, t := range threads {
		out.Threads = append(out.Threads, responses.ThreadSummaryResponse{
			ID:        t.ID,
			Title:     t.Title,
			Author:    t.Author,
			Link:      t.Link,
			Published: timePtr(t.Published),
		})
	}
	return out
}

// ToPostResponse renders a post body with the given theme and body type
//
// Feed bodies arrive wrapped in markup, so removal is judged on the displayed text.
func ToPostResponse(r Renderer, post domain.Post, theme domain.Theme, bodyType domain.BodyType) responses.PostResponse {
	rendered := responses.RenderResponse{Removed: true, Blocks: []responses.BlockResponse{}}
	if !body.IsRemovedMarkup(post.Body) {
		rendered = responses.RenderResponse{Blocks: ToBlockResponses(r.Render(post.Body, theme, bodyType))}
	}
	return responses.PostResponse{
		ID:        post.ID,
		Author:    post.Author,
		Title:     post.Title,
		Link:      post.Link,
		Published: timePtr(post.Published),
		Removed:   rendered.Removed,
		Blocks:    rendered.Blocks,
	}
}

// ToThreadResponse renders a submission and all of its comments
func ToThreadResponse(r Renderer, thread *domain.Thread, theme domain.Theme) responses.ThreadResponse {
	out := responses.ThreadResponse{
		Submission: ToPostResponse(r, thread.Submission, theme, domain.BodySubmission),
		Comments:   make([]responses.PostResponse, 0, len(thread.Comments)),
	}
	for _, c := range thread.Comments {
		out.Comments = append(out.Comments, ToPostResponse(r, c, theme, domain.BodyComment))
	}
	return out
}

func timePtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
