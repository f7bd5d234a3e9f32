// ABOUTME: Response DTOs for rendered bodies, flairs, teams and threads
// ABOUTME: Field names follow the snake_case JSON convention used across the API

package responses

import "time"

// LinkResponse is a hyperlink found in a text block
type LinkResponse struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// BlockResponse is one rendered block of a body
type BlockResponse struct {
	Kind        string         `json:"kind" enum:"table,text" doc:"Block kind"`
	StyledHTML  string         `json:"styled_html,omitempty" doc:"Standalone themed document for table blocks"`
	BorderAsset string         `json:"border_asset,omitempty" doc:"Frame drawable for table blocks"`
	HTML        string         `json:"html,omitempty" doc:"Normalised markup for text blocks"`
	Text        string         `json:"text,omitempty" doc:"Plain text for text blocks"`
	Markdown    string         `json:"markdown,omitempty" doc:"Markdown rendition when requested"`
	Links       []LinkResponse `json:"links,omitempty"`
	Layout      string         `json:"layout,omitempty" doc:"Layout selected by the body type"`
}

// RenderResponse is the result of rendering one body
type RenderResponse struct {
	Removed bool            `json:"removed" doc:"True when the body is [removed] or [deleted]"`
	Blocks  []BlockResponse `json:"blocks"`
}

// FlairResult is one parsed flair
type FlairResult struct {
	Raw      string `json:"raw"`
	Text     string `json:"text"`
	CSSClass string `json:"css_class"`
	Asset    string `json:"asset,omitempty"`
}

// FlairsResponse lists parsed flairs in request order
type FlairsResponse struct {
	Flairs []FlairResult `json:"flairs"`
}

// GameThreadResponse carries the matched thread id, empty when nothing matched
type GameThreadResponse struct {
	ID    string `json:"id"`
	Found bool   `json:"found"`
}

// TeamResponse is one team of the static table
type TeamResponse struct {
	Abbr      string `json:"abbr"`
	Name      string `json:"name"`
	Subreddit string `json:"subreddit"`
	Logo      string `json:"logo"`
	Snoo      string `json:"snoo"`
}

// TeamsResponse lists every team
type TeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// ThreadSummaryResponse describes a thread in a listing
type ThreadSummaryResponse struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author,omitempty"`
	Link      string     `json:"link,omitempty"`
	Published *time.Time `json:"published,omitempty"`
}

// ThreadsResponse is a subreddit listing
type ThreadsResponse struct {
	Subreddit string                  `json:"subreddit"`
	Page      int                     `json:"page"`
	PerPage   int                     `json:"per_page"`
	Total     int                     `json:"total" doc:"Threads in the whole listing"`
	Threads   []ThreadSummaryResponse `json:"threads"`
}

// PostResponse is a submission or comment with its rendered body
type PostResponse struct {
	ID        string          `json:"id"`
	Author    string          `json:"author,omitempty"`
	Title     string          `json:"title,omitempty"`
	Link      string          `json:"link,omitempty"`
	Published *time.Time      `json:"published,omitempty"`
	Removed   bool            `json:"removed"`
	Blocks    []BlockResponse `json:"blocks"`
}

// ThreadResponse is a submission and its comments
type ThreadResponse struct {
	Submission PostResponse   `json:"submission"`
	Comments   []PostResponse `json:"comments"`
}
