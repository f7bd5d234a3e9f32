// ABOUTME: Flair parser for /r/nba user flair strings
// ABOUTME: Extracts display text and CSS class from the fixed "Flair {cssClass='X', text='Y'}" form

// Package flair parses /r/nba flairs.
//
// The parser splits on the quote character and reads fixed positions, so any
// flair text that itself contains a quote yields "". That fragility is
// long-standing observable behaviour.
package flair

import "strings"

const (
	quote = "'"

	// expectedSections is the segment count of a well-formed flair
	expectedSections = 5

	// cssClassIndex and textIndex are the quote-delimited positions in
	// Flair {cssClass='<cssClass>', text='<text>'}
	cssClassIndex = 1
	textIndex     = 3
)

// Flair is a parsed flair string
type Flair struct {
	Text     string `json:"text"`
	CSSClass string `json:"css_class"`
	Asset    string `json:"asset,omitempty"`
}

// ParseNbaFlair returns the display text of a flair, e.g. "The Truth", or "" when malformed
func ParseNbaFlair(flair string) string {
	return section(flair, textIndex)
}

// ParseCSSClass returns the CSS class of a flair, e.g. "Celtics1", or "" when malformed
func ParseCSSClass(flair string) string {
	return section(flair, cssClassIndex)
}

// Parse returns the text, CSS class and team asset of a flair
func Parse(flair string) Flair {
	f := Flair{
		Text:     ParseNbaFlair(flair),
		CSSClass: ParseCSSClass(flair),
	}
	f.Asset, _ = AssetForCSSClass(f.CSSClass)
	return f
}

func section(flair string, index int) string {
	if flair == "" {
		return ""
	}
	sections := splitDropTrailing(flair, quote)
	if len(sections) != expectedSections {
		return ""
	}
	return sections[index]
}

// splitDropTrailing splits like strings.Split but drops trailing empty
// segments, so "a'b'" counts as two segments rather than three.
func splitDropTrailing(s, sep string) []string {
	parts := strings.Split(s, sep)
	end := len(parts)
	for end > 0 && parts[end-1] == "" {
		end--
	}
	if end == 0 && s == "" {
		return parts[:1]
	}
	return parts[:end]
}
