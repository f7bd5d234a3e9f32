// ABOUTME: Block domain model represents one top-level segment of a Reddit body
// ABOUTME: Defines the table/text block kinds and the body types used to pick a layout

package domain

import (
	"strings"

	coreerrors "swish-api/core/errors"
)

// BlockKind tags a block as a table fragment or free text
type BlockKind string

const (
	// BlockTable holds a raw <table>...</table> fragment
	BlockTable BlockKind = "table"

	// BlockText holds free text that still needs normalisation
	BlockText BlockKind = "text"
)

// Block is one segment of a body, in document order
type Block struct {
	Kind    BlockKind
	Content string
}

// IsTable reports whether the block is a table fragment
func (b Block) IsTable() bool {
	return b.Kind == BlockTable
}

// Link is a hyperlink found inside a text block
type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// RenderedBlock is a block prepared for a presentation layer.
// Table blocks carry StyledHTML; text blocks carry HTML, Text and Links.
type RenderedBlock struct {
	Kind BlockKind

	// Source is the block content before any rendering
	Source string

	// StyledHTML is the standalone themed document for table blocks
	StyledHTML string

	// BorderAsset is the drawable used for the "click to view table" frame
	BorderAsset string

	// HTML is the normalised markup of a text block
	HTML string

	// Text is the plain text a rich-text widget would display
	Text string

	// Markdown is an optional markdown rendition of a text block
	Markdown string

	Links []Link

	// Layout is the layout resource selected by the body type
	Layout string
}

// BodyType selects the layout used for text blocks
type BodyType int

const (
	BodySubmission BodyType = iota
	BodyComment
)

// ParseBodyType converts a body type tag into a BodyType.
// Anything other than SUBMISSION or COMMENT is rejected.
func ParseBodyType(tag string) (BodyType, error) {
	switch strings.ToUpper(strings.TrimSpace(tag)) {
	case "SUBMISSION":
		return BodySubmission, nil
	case "COMMENT":
		return BodyComment, nil
	default:
		return 0, &coreerrors.ValidationError{
			Field:   "body_type",
			Message: "invalid body type: " + tag,
		}
	}
}

// String returns the tag form of the body type
func (t BodyType) String() string {
	if t == BodyComment {
		return "COMMENT"
	}
	return "SUBMISSION"
}

// Layout returns the layout resource name for text blocks of this body type
func (t BodyType) Layout() string {
	if t == BodyComment {
		return "comment_body_block_layout"
	}
	return "submission_body_block_layout"
}
