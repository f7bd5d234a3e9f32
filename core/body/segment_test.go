package body

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swish-api/core/domain"
)

func text(s string) domain.Block  { return domain.Block{Kind: domain.BlockText, Content: s} }
func table(s string) domain.Block { return domain.Block{Kind: domain.BlockTable, Content: s} }

func TestSegment(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []domain.Block
	}{
		{
			name: "no table",
			raw:  "hello &amp; world",
			want: []domain.Block{text("hello &amp; world")},
		},
		{
			name: "empty body",
			raw:  "",
			want: []domain.Block{text("")},
		},
		{
			name: "one table between text",
			raw:  "before<table><tr><td>1</td></tr></table>after",
			want: []domain.Block{
				text("before"),
				table("<table><tr><td>1</td></tr></table>"),
				text("after"),
			},
		},
		{
			name: "table only keeps empty text blocks",
			raw:  "<table>x</table>",
			want: []domain.Block{text(""), table("<table>x</table>"), text("")},
		},
		{
			name: "two tables",
			raw:  "a<table>1</table>b<table>2</table>c",
			want: []domain.Block{
				text("a"), table("<table>1</table>"),
				text("b"), table("<table>2</table>"),
				text("c"),
			},
		},
		{
			name: "table with attributes",
			raw:  `<p>Box score</p><table class="stats"><thead><tr><th>PTS</th></tr></thead></table>`,
			want: []domain.Block{
				text("<p>Box score</p>"),
				table(`<table class="stats"><thead><tr><th>PTS</th></tr></thead></table>`),
				text(""),
			},
		},
		{
			name: "unterminated table takes the rest",
			raw:  "a<table><tr>",
			want: []domain.Block{text("a"), table("<table><tr>")},
		},
		{
			name: "match is case sensitive",
			raw:  "a<TABLE>x</TABLE>",
			want: []domain.Block{text("a<TABLE>x</TABLE>")},
		},
		{
			name: "escaped table is text",
			raw:  "&lt;table&gt;&lt;/table&gt;",
			want: []domain.Block{text("&lt;table&gt;&lt;/table&gt;")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Segment(tt.raw))
		})
	}
}

func TestSegment_Invariants(t *testing.T) {
	bodies := []string{
		"plain",
		"x<table>1</table>y<table>2</table>z",
		"<table><tr><td>&amp;</td></tr></table>\n&lt;p&gt;after&lt;/p&gt;",
		"lead<table>unterminated",
	}

	for _, raw := range bodies {
		blocks := Segment(raw)

		var sb strings.Builder
		for _, b := range blocks {
			sb.WriteString(b.Content)
			if b.IsTable() {
				assert.True(t, strings.HasPrefix(b.Content, "<table"), raw)
			} else {
				assert.NotContains(t, b.Content, "<table", raw)
			}
		}
		assert.Equal(t, raw, sb.String(), "blocks must reproduce the input in order")
	}
}

func TestSegment_WithoutTableMatchesNormalize(t *testing.T) {
	raw := "  &lt;p&gt;Spurs by 20&lt;/p&gt;\nfooter  "

	blocks := Segment(raw)
	require.Len(t, blocks, 1)
	assert.Equal(t, domain.BlockText, blocks[0].Kind)
	assert.Equal(t, Normalize(raw), Normalize(blocks[0].Content))
}
