// ABOUTME: Game thread matcher finds the live or post game thread for a matchup
// ABOUTME: Matches thread titles against the thread type phrase and both team nicknames

package gamethread

import (
	"strings"

	"swish-api/core/domain"
	"swish-api/core/teams"
)

const (
	gameThreadPhrase     = "GAME THREAD"
	postGameThreadPhrase = "POST GAME THREAD"
	postGameHyphenated   = "POST-GAME THREAD"
	postMarker           = "POST"
)

// ParseThreadType converts LIVE_GAME_THREAD or POST_GAME_THREAD into a ThreadType
func ParseThreadType(tag string) (domain.ThreadType, bool) {
	switch domain.ThreadType(strings.ToUpper(strings.TrimSpace(tag))) {
	case domain.LiveGameThread:
		return domain.LiveGameThread, true
	case domain.PostGameThread:
		return domain.PostGameThread, true
	}
	return "", false
}

// FindGameThreadID returns the id of the first thread whose title is a game thread
// of the requested type for both teams, usually titled like
// "GAME THREAD: Cleveland Cavaliers @ San Antonio Spurs".
// It returns "" when nothing matches or either abbreviation is unknown.
func FindGameThreadID(threads []domain.ThreadSummary, threadType domain.ThreadType, homeAbbr, awayAbbr string) string {
	if threads == nil {
		return ""
	}

	homeName := teams.FullName(homeAbbr)
	awayName := teams.FullName(awayAbbr)
	if homeName == "" || awayName == "" {
		return ""
	}

	for _, thread := range threads {
		title := strings.ToUpper(thread.Title)
		if !isType(title, threadType) {
			continue
		}
		if TitleContainsTeam(title, homeName) && TitleContainsTeam(title, awayName) {
			return thread.ID
		}
	}

	return ""
}

func isType(capsTitle string, threadType domain.ThreadType) bool {
	switch threadType {
	case domain.LiveGameThread:
		return strings.Contains(capsTitle, gameThreadPhrase) && !strings.Contains(capsTitle, postMarker)
	case domain.PostGameThread:
		return strings.Contains(capsTitle, postGameThreadPhrase) || strings.Contains(capsTitle, postGameHyphenated)
	}
	return false
}

// TitleContainsTeam reports whether the title mentions the last word of the team
// name, e.g. "SPURS" for "San Antonio Spurs"
func TitleContainsTeam(title, fullTeamName string) bool {
	capsTeam := strings.ToUpper(fullTeamName)
	nickname := capsTeam[strings.LastIndex(capsTeam, " ")+1:]
	return strings.Contains(strings.ToUpper(title), nickname)
}
