// ABOUTME: Request DTOs for body rendering and flair parsing endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

import "swish-api/core/domain"

// RenderRequest represents the request body for rendering a Reddit body
type RenderRequest struct {
	// Body is the raw HTML-escaped body as served by Reddit
	Body string `json:"body" maxLength:"200000" doc:"Raw HTML-escaped Reddit body"`

	// Theme selects the table stylesheet
	Theme string `json:"theme,omitempty" default:"DARK" doc:"LIGHT or DARK"`

	// BodyType selects the text block layout
	BodyType string `json:"body_type,omitempty" default:"SUBMISSION" doc:"SUBMISSION or COMMENT, case-insensitive"`

	// Markdown adds a markdown rendition to text blocks
	Markdown *bool `json:"markdown,omitempty" doc:"Include markdown for text blocks"`
}

// ApplyDefaults sets default values for optional fields
func (r *RenderRequest) ApplyDefaults() {
	if r.Theme == "" {
		r.Theme = string(domain.ThemeDark)
	}
	if r.BodyType == "" {
		r.BodyType = domain.BodySubmission.String()
	}
}

// WantsMarkdown reports whether markdown was requested, falling back to def
func (r *RenderRequest) WantsMarkdown(def bool) bool {
	if r.Markdown == nil {
		return def
	}
	return *r.Markdown
}

// FlairRequest represents the request body for parsing flairs
type FlairRequest struct {
	Flairs []string `json:"flairs" minItems:"1" maxItems:"500" doc:"Raw flair strings, e.g. Flair {cssClass='BOS', text='The Truth'}"`
}
