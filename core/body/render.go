// ABOUTME: Renderer prepares body blocks for a presentation layer
// ABOUTME: Tables become themed standalone documents, text becomes normalised HTML, text and links

package body

import (
	"strings"

	"swish-api/core/domain"
	"swish-api/pkg/utils/html"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// Wrap embeds a raw table fragment in a standalone HTML document styled for the theme
func Wrap(tableHTML string, theme domain.Theme) string {
	var sb strings.Builder
	sb.Grow(len(tableHTML) + 512)

	sb.WriteString(`<html><head><style type="text/css">`)
	sb.WriteString("body{color: " + theme.TextColorHex + "; background-color: " +
		theme.BackgroundColorHex + "; font-size: small} ")
	sb.WriteString("table{table-layout:fixed; border-collapse: collapse; font-size: small;} ")
	sb.WriteString("td{white-space: nowrap; max-width: 100%} ")
	sb.WriteString("table, th, td {border: 1px solid gray;}")
	sb.WriteString("th, td {padding: 5px; text-align: left;}")
	sb.WriteString("</style></head><body>")
	sb.WriteString(tableHTML)
	sb.WriteString("</body></html>")

	return sb.String()
}

// Option configures a Renderer
type Option func(*Renderer)

// WithMarkdown enables the markdown rendition of text blocks
func WithMarkdown(enabled bool) Option {
	return func(r *Renderer) {
		r.markdown = enabled
	}
}

// Renderer turns raw bodies into rendered blocks. It holds no per-call state and
// may be shared between goroutines.
type Renderer struct {
	markdown  bool
	converter *md.Converter
}

// NewRenderer creates a renderer
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(r)
	}
	if r.markdown {
		r.converter = md.NewConverter("", true, nil)
	}
	return r
}

// Render segments raw and renders every block with the given theme and body type
func (r *Renderer) Render(raw string, theme domain.Theme, bodyType domain.BodyType) []domain.RenderedBlock {
	blocks := Segment(raw)
	rendered := make([]domain.RenderedBlock, 0, len(blocks))

	for _, block := range blocks {
		if block.IsTable() {
			rendered = append(rendered, r.renderTable(block, theme))
			continue
		}
		rendered = append(rendered, r.renderText(block, bodyType))
	}

	return rendered
}

func (r *Renderer) renderTable(block domain.Block, theme domain.Theme) domain.RenderedBlock {
	return domain.RenderedBlock{
		Kind:        domain.BlockTable,
		Source:      block.Content,
		StyledHTML:  Wrap(block.Content, theme),
		BorderAsset: theme.BorderAsset,
	}
}

func (r *Renderer) renderText(block domain.Block, bodyType domain.BodyType) domain.RenderedBlock {
	normalized := Normalize(block.Content)
	out := domain.RenderedBlock{
		Kind:   domain.BlockText,
		Source: block.Content,
		HTML:   normalized,
		Layout: bodyType.Layout(),
	}

	text, anchors, err := html.Flatten(normalized)
	if err != nil {
		out.Text = normalized
	} else {
		out.Text = text
		for _, a := range anchors {
			out.Links = append(out.Links, domain.Link{Text: a.Text, URL: a.Href})
		}
	}

	if r.converter != nil && normalized != "" {
		if markdown, err := r.converter.ConvertString(normalized); err == nil {
			out.Markdown = strings.TrimSpace(markdown)
		}
	}

	return out
}
