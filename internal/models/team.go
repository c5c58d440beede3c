package models

import (
	"strings"
	"unicode"
)

// TeamProfile carries the per-side inputs for a single prediction. Profiles
// are built fresh from user input for every call and never retained.
type TeamProfile struct {
	Name string `json:"name"`
	// RecentFormScore is the points total from the last five matches
	// (win 3, draw 1, loss 0), so it ranges over [0, 15].
	RecentFormScore float64 `json:"recent_form_score"`
	LeaguePosition  int     `json:"league_position"`
	GoalsScored     float64 `json:"goals_scored"`
	GoalsConceded   float64 `json:"goals_conceded"`
	// InjuryImpact counts unavailable key players (injuries plus
	// suspensions).
	InjuryImpact float64 `json:"injury_impact"`
	IsHome       bool    `json:"is_home"`
}

// HeadToHead is the aggregate record between the two sides over their recent
// meetings, oriented from the current home side's perspective. It is shared
// context, owned by neither team.
type HeadToHead struct {
	HomeWins int `json:"home_wins"`
	Draws    int `json:"draws"`
	AwayWins int `json:"away_wins"`
}

// Total returns the number of recorded meetings. Zero means no head-to-head
// history, which contributes nothing to the prediction.
func (h HeadToHead) Total() int {
	return h.HomeWins + h.Draws + h.AwayWins
}

// Swap returns the record as seen from the opposite orientation.
func (h HeadToHead) Swap() HeadToHead {
	return HeadToHead{HomeWins: h.AwayWins, Draws: h.Draws, AwayWins: h.HomeWins}
}

// FormPoints converts a last-five win/draw count into form points.
func FormPoints(wins, draws int) float64 {
	return float64(3*wins + draws)
}

// SanitizeTeamName strips control characters and collapses whitespace runs so
// arbitrary user input renders cleanly in responses and terminal output.
func SanitizeTeamName(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	lastSpace := false
	for _, r := range s {
		if unicode.IsControl(r) {
			continue
		}
		if unicode.IsSpace(r) {
			if !lastSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		sb.WriteRune(r)
		lastSpace = false
	}

	return strings.TrimRight(sb.String(), " ")
}
