// ABOUTME: HTML utilities for flattening markup into displayable text
// ABOUTME: Mirrors how a rich-text widget shows an HTML fragment and collects its links

package html

import (
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Anchor is a hyperlink found in a fragment
type Anchor struct {
	Text string
	Href string
}

// blockElements start and end on their own line when flattened
var blockElements = map[atom.Atom]bool{
	atom.Div:        true,
	atom.P:          true,
	atom.Ul:         true,
	atom.Ol:         true,
	atom.Blockquote: true,
	atom.Pre:        true,
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.H4:         true,
	atom.H5:         true,
	atom.H6:         true,
	atom.Hr:         true,
	atom.Table:      true,
	atom.Tr:         true,
}

// Flatten parses an HTML fragment and returns its display text and links.
// Line breaks come from <br> and block elements; other whitespace runs collapse to one space.
func Flatten(fragment string) (string, []Anchor, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", nil, err
	}

	var anchors []Anchor
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		anchors = append(anchors, Anchor{
			Text: strings.TrimSpace(s.Text()),
			Href: href,
		})
	})

	var sb strings.Builder
	for _, n := range doc.Find("body").Nodes {
		writeNode(&sb, n)
	}

	return tidyLines(sb.String()), anchors, nil
}

// StripHTML removes all markup from a fragment and returns its text on one line
func StripHTML(fragment string) string {
	text, _, err := Flatten(fragment)
	if err != nil {
		return strings.TrimSpace(fragment)
	}
	return strings.Join(strings.Fields(text), " ")
}

func writeNode(sb *strings.Builder, n *xhtml.Node) {
	switch n.Type {
	case xhtml.TextNode:
		writeCollapsed(sb, n.Data)
		return
	case xhtml.ElementNode:
		if n.DataAtom == atom.Br {
			sb.WriteByte('\n')
			return
		}
		if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
			return
		}
	}

	block := n.Type == xhtml.ElementNode && blockElements[n.DataAtom]
	if block {
		ensureNewline(sb)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeNode(sb, c)
	}
	if block {
		ensureNewline(sb)
	}
}

func writeCollapsed(sb *strings.Builder, text string) {
	space := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			space = true
			continue
		}
		if space && sb.Len() > 0 && !endsWith(sb, '\n') && !endsWith(sb, ' ') {
			sb.WriteByte(' ')
		}
		space = false
		sb.WriteRune(r)
	}
	if space && sb.Len() > 0 && !endsWith(sb, '\n') && !endsWith(sb, ' ') {
		sb.WriteByte(' ')
	}
}

func ensureNewline(sb *strings.Builder) {
	if sb.Len() > 0 && !endsWith(sb, '\n') {
		sb.WriteByte('\n')
	}
}

func endsWith(sb *strings.Builder, b byte) bool {
	s := sb.String()
	return len(s) > 0 && s[len(s)-1] == b
}

// tidyLines trims every line and drops runs of more than one blank line
func tidyLines(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	blank := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			blank++
			if blank > 1 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}
