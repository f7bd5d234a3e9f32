package mappers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swish-api/core/body"
	"swish-api/core/domain"
	"swish-api/core/teams"
)

func TestToBlockResponses(t *testing.T) {
	blocks := []domain.RenderedBlock{
		{Kind: domain.BlockText, HTML: "<div>hi</div>", Text: "hi", Layout: "submission_body_block_layout",
			Links: []domain.Link{{Text: "nba", URL: "https://nba.com"}}},
		{Kind: domain.BlockTable, StyledHTML: "<html></html>", BorderAsset: "square_border_night"},
	}

	out := ToBlockResponses(blocks)
	require.Len(t, out, 2)
	assert.Equal(t, "text", out[0].Kind)
	assert.Equal(t, "hi", out[0].Text)
	assert.Equal(t, "https://nba.com", out[0].Links[0].URL)
	assert.Equal(t, "table", out[1].Kind)
	assert.Equal(t, "square_border_night", out[1].BorderAsset)
}

func TestToRenderResponse(t *testing.T) {
	r := body.NewRenderer()

	out := ToRenderResponse(r, "a<table></table>b", domain.DarkTheme(), domain.BodyComment)
	assert.False(t, out.Removed)
	require.Len(t, out.Blocks, 3)
	assert.Equal(t, "comment_body_block_layout", out.Blocks[0].Layout)
	assert.Equal(t, "table", out.Blocks[1].Kind)

	removed := ToRenderResponse(r, "[removed]", domain.DarkTheme(), domain.BodyComment)
	assert.True(t, removed.Removed)
	assert.NotNil(t, removed.Blocks)
	assert.Empty(t, removed.Blocks)
}

func TestToFlairResult(t *testing.T) {
	out := ToFlairResult("Flair {cssClass='BOS', text='The Truth'}")
	assert.Equal(t, "The Truth", out.Text)
	assert.Equal(t, "BOS", out.CSSClass)
	assert.Equal(t, "Flair {cssClass='BOS', text='The Truth'}", out.Raw)

	bad := ToFlairResult("garbage")
	assert.Empty(t, bad.Text)
	assert.Empty(t, bad.CSSClass)
}

func TestToTeamResponses(t *testing.T) {
	out := ToTeamResponses(teams.All())
	assert.Len(t, out, 30)
	for _, team := range out {
		assert.NotEmpty(t, team.Name)
		assert.NotEmpty(t, team.Subreddit)
	}
}

func TestToThreadsResponse(t *testing.T) {
	published := time.Date(2024, 1, 15, 0, 30, 0, 0, time.UTC)
	out := ToThreadsResponse("nba", []domain.ThreadSummary{
		{ID: "a", Title: "GAME THREAD", Published: published},
		{ID: "b", Title: "no date"},
	})

	assert.Equal(t, "nba", out.Subreddit)
	require.Len(t, out.Threads, 2)
	require.NotNil(t, out.Threads[0].Published)
	assert.Equal(t, published, *out.Threads[0].Published)
	assert.Nil(t, out.Threads[1].Published)

	empty := ToThreadsResponse("nba", nil)
	assert.NotNil(t, empty.Threads)
}

func TestToThreadResponse(t *testing.T) {
	thread := &domain.Thread{
		Submission: domain.Post{ID: "abc", Title: "GAME THREAD", Body: "<div>Tip off</div>"},
		Comments: []domain.Post{
			{ID: "c1", Body: "<div>Go Spurs</div>"},
			{ID: "c2", Body: `<div class="md"><p>[deleted]</p>` + "\n</div>"},
			{ID: "c3", Body: `<div class="md"><p>[removed]</p></div>`},
			{ID: "c4", Body: `<div class="md"><p>Why was that [removed]?</p></div>`},
		},
	}

	out := ToThreadResponse(body.NewRenderer(), thread, domain.LightTheme())

	assert.Equal(t, "GAME THREAD", out.Submission.Title)
	require.Len(t, out.Submission.Blocks, 1)
	assert.Equal(t, "submission_body_block_layout", out.Submission.Blocks[0].Layout)
	assert.Equal(t, "Tip off", out.Submission.Blocks[0].Text)

	require.Len(t, out.Comments, 4)
	assert.Equal(t, "comment_body_block_layout", out.Comments[0].Blocks[0].Layout)
	assert.False(t, out.Comments[0].Removed)

	assert.True(t, out.Comments[1].Removed)
	assert.Empty(t, out.Comments[1].Blocks)
	assert.True(t, out.Comments[2].Removed)
	assert.NotNil(t, out.Comments[2].Blocks)

	assert.False(t, out.Comments[3].Removed)
	require.Len(t, out.Comments[3].Blocks, 1)
}
