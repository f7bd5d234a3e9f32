// ABOUTME: Public types for the Swish library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package swish

import (
	"time"

	"swish-api/core/domain"
	"swish-api/core/flair"
	"swish-api/core/teams"
)

// Theme selects the palette used for table documents
type Theme = domain.ThemeKind

const (
	ThemeLight = domain.ThemeLight
	ThemeDark  = domain.ThemeDark
)

// BodyType selects the layout used for text blocks
type BodyType = domain.BodyType

const (
	BodySubmission = domain.BodySubmission
	BodyComment    = domain.BodyComment
)

// ThreadType selects the live or post game thread
type ThreadType = domain.ThreadType

const (
	LiveGameThread = domain.LiveGameThread
	PostGameThread = domain.PostGameThread
)

// Team is one row of the static team table
type Team = teams.Team

// BlockKind tags a rendered block
type BlockKind string

const (
	BlockTable BlockKind = "table"
	BlockText  BlockKind = "text"
)

// Link is a hyperlink found in a text block
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// Block is one rendered segment of a body
type Block struct {
	Kind        BlockKind `json:"kind"`
	StyledHTML  string    `json:"styled_html,omitempty"`
	BorderAsset string    `json:"border_asset,omitempty"`
	HTML        string    `json:"html,omitempty"`
	Text        string    `json:"text,omitempty"`
	Markdown    string    `json:"markdown,omitempty"`
	Links       []Link    `json:"links,omitempty"`
	Layout      string    `json:"layout,omitempty"`
}

// IsTable reports whether the block is a table document
func (b Block) IsTable() bool {
	return b.Kind == BlockTable
}

// Flair is a parsed user flair
type Flair struct {
	Text     string `json:"text"`
	CSSClass string `json:"css_class"`
	Asset    string `json:"asset,omitempty"`
}

// ThreadSummary describes a thread in a listing
type ThreadSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	Link      string    `json:"link,omitempty"`
	Published time.Time `json:"published,omitempty"`
}

// Post is a submission or comment with its rendered body
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author,omitempty"`
	Title     string    `json:"title,omitempty"`
	Link      string    `json:"link,omitempty"`
	Published time.Time `json:"published,omitempty"`
	Removed   bool      `json:"removed"`
	Blocks    []Block   `json:"blocks"`
}

// Thread is a rendered submission and its comments
type Thread struct {
	Submission Post   `json:"submission"`
	Comments   []Post `json:"comments"`
}

func blocksToPublic(rendered []domain.RenderedBlock) []Block {
	blocks := make([]Block, 0, len(rendered))
	for _, rb := range rendered {
		b := Block{
			Kind:        BlockKind(rb.Kind),
			StyledHTML:  rb.StyledHTML,
			BorderAsset: rb.BorderAsset,
			HTML:        rb.HTML,
			Text:        rb.Text,
			Markdown:    rb.Markdown,
			Layout:      rb.Layout,
		}
		for _, l := range rb.Links {
			b.Links = append(b.Links, Link{Text: l.Text, URL: l.URL})
		}
		blocks = append(blocks, b)
	}
	return blocks
}

func flairToPublic(f flair.Flair) Flair {
	return Flair{Text: f.Text, CSSClass: f.CSSClass, Asset: f.Asset}
}

func summariesToPublic(threads []domain.ThreadSummary) []ThreadSummary {
	out := make([]ThreadSummary, len(threads))
	for i, t := range threads {
		out[i] = ThreadSummary(t)
	}
	return out
}

func summariesToDomain(threads []ThreadSummary) []domain.ThreadSummary {
	if threads == nil {
		return nil
	}
	out := make([]domain.ThreadSummary, len(threads))
	for i, t := range threads {
		out[i] = domain.ThreadSummary(t)
	}
	return out
}
