// ABOUTME: Normalizer turns an entity-escaped Reddit body into displayable markup
// ABOUTME: Applies the fixed entity and list/paragraph substitutions the app has always used

package body

import (
	"regexp"
	"strings"
	"unicode"

	"swish-api/pkg/utils/html"
)

// entityReplacements run in this exact order; &amp; must stay last
var entityReplacements = [][2]string{
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", "\""},
	{"&apos;", "'"},
	{"&amp;", "&"},
}

// listItemTag matches any opening <li> tag, with or without attributes
var listItemTag = regexp.MustCompile(`(?i)<li.*?>`)

const bullet = "•"

// Normalize unescapes entities, rewrites list and paragraph tags, and trims the result.
//
// Everything from the last newline onward is discarded, not just trailing blank
// lines. Clients depend on that output, so it stays.
func Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	text := raw
	for _, r := range entityReplacements {
		text = strings.ReplaceAll(text, r[0], r[1])
	}

	text = strings.ReplaceAll(text, "<li><p>", "<p>"+bullet+" ")
	text = strings.ReplaceAll(text, "</li>", "<br>")
	text = listItemTag.ReplaceAllLiteralString(text, bullet)
	text = strings.ReplaceAll(text, "<p>", "<div>")
	text = strings.ReplaceAll(text, "</p>", "</div>")

	if i := strings.LastIndex(text, "\n"); i != -1 {
		text = text[:i]
	}

	text = strings.TrimRight(text, "\n")
	return strings.TrimFunc(text, unicode.IsSpace)
}

// IsRemovedOrDeleted reports whether a self-text body was removed by moderators or deleted
func IsRemovedOrDeleted(selftext string) bool {
	return selftext == "[removed]" || selftext == "[deleted]"
}

// IsRemovedMarkup reports whether a feed body, still wrapped in Reddit's
// <div class="md"> markup, displays as [removed] or [deleted]
func IsRemovedMarkup(raw string) bool {
	return IsRemovedOrDeleted(html.StripHTML(Normalize(raw)))
}
