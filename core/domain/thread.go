// ABOUTME: Thread domain models describe Reddit threads and their posts
// ABOUTME: ThreadSummary is the minimal descriptor used for game-thread matching

package domain

import "time"

// ThreadSummary is a minimal descriptor of a discussion thread
type ThreadSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author,omitempty"`
	Link      string    `json:"link,omitempty"`
	Published time.Time `json:"published,omitempty"`
}

// Post is a submission or comment body with its metadata
type Post struct {
	ID        string    `json:"id"`
	Author    string    `json:"author,omitempty"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body"`
	Link      string    `json:"link,omitempty"`
	Published time.Time `json:"published,omitempty"`
}

// Thread is a submission followed by its comments in feed order
type Thread struct {
	Submission Post   `json:"submission"`
	Comments   []Post `json:"comments"`
}

// ThreadType selects which game thread flavour to look for
type ThreadType string

const (
	LiveGameThread ThreadType = "LIVE_GAME_THREAD"
	PostGameThread ThreadType = "POST_GAME_THREAD"
)
