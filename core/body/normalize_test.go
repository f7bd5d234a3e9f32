package body

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "empty input",
			raw:  "",
			want: "",
		},
		{
			name: "escaped paragraph becomes div",
			raw:  "&lt;p&gt;Hi&lt;/p&gt;",
			want: "<div>Hi</div>",
		},
		{
			name: "ampersand is unescaped last",
			raw:  "&amp;lt;b&amp;gt;",
			want: "&lt;b&gt;",
		},
		{
			name: "quotes and apostrophes",
			raw:  "&quot;Big Fundamental&quot; &apos;Timmy&apos;",
			want: `"Big Fundamental" 'Timmy'`,
		},
		{
			name: "list item wrapping a paragraph",
			raw:  "&lt;ul&gt;&lt;li&gt;&lt;p&gt;one&lt;/p&gt;&lt;/li&gt;&lt;/ul&gt;",
			want: "<ul><div>• one</div><br></ul>",
		},
		{
			name: "list item with attributes",
			raw:  `<li class="x">two</li>`,
			want: "•two<br>",
		},
		{
			name: "upper case list item",
			raw:  "<LI>three",
			want: "•three",
		},
		{
			name: "surrounding whitespace trimmed",
			raw:  "   <p>hello</p>   ",
			want: "<div>hello</div>",
		},
		{
			name: "unicode whitespace trimmed",
			raw:  "\u2003hello\u00a0",
			want: "hello",
		},
		{
			name: "trailing newline removed",
			raw:  "<p>Hi</p>\n",
			want: "<div>Hi</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw))
		})
	}
}

func TestNormalize_DropsEverythingAfterLastNewline(t *testing.T) {
	// Content after the final newline is lost even when it is not blank.
	assert.Equal(t, "first line", Normalize("first line\nsecond line"))
	assert.Equal(t, "a\nb", Normalize("a\nb\nc"))
	assert.Equal(t, "<div>Game on</div>", Normalize("&lt;p&gt;Game on&lt;/p&gt;\n&lt;p&gt;Final&lt;/p&gt;"))
}

func TestNormalize_IsIdempotentOnPlainText(t *testing.T) {
	once := Normalize("Spurs win")
	assert.Equal(t, once, Normalize(once))
}

func TestIsRemovedOrDeleted(t *testing.T) {
	assert.True(t, IsRemovedOrDeleted("[removed]"))
	assert.True(t, IsRemovedOrDeleted("[deleted]"))
	assert.False(t, IsRemovedOrDeleted("[Removed]"))
	assert.False(t, IsRemovedOrDeleted("removed"))
	assert.False(t, IsRemovedOrDeleted(""))
}

func TestIsRemovedMarkup(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"wrapped removed comment", `<div class="md"><p>[removed]</p></div>`, true},
		{"wrapped deleted with trailing newline", "<div class=\"md\"><p>[deleted]</p>\n</div>", true},
		{"escaped markup", "&lt;div class=&quot;md&quot;&gt;&lt;p&gt;[removed]&lt;/p&gt;&lt;/div&gt;", true},
		{"bare selftext", "[removed]", true},
		{"quoting the marker", `<div class="md"><p>why was this [removed]?</p></div>`, false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRemovedMarkup(tt.raw))
		})
	}
}
