package models

import (
	"time"
)

const (
	MatchStatusScheduled  = "scheduled"
	MatchStatusInProgress = "in_progress"
	MatchStatusFinished   = "finished"
)

// ValidMatchStatus reports whether s is one of the supported match states.
// The status is freely settable by the caller; there is no state machine.
func ValidMatchStatus(s string) bool {
	switch s {
	case MatchStatusScheduled, MatchStatusInProgress, MatchStatusFinished:
		return true
	}
	return false
}

type Match struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	HomeTeamID string    `json:"home_team_id" gorm:"not null;index;check:chk_match_sides,home_team_id <> away_team_id"`
	AwayTeamID string    `json:"away_team_id" gorm:"not null;index"`
	MatchDate  time.Time `json:"match_date" gorm:"not null"`
	Stadium    string    `json:"stadium"`
	Status     string    `json:"status" gorm:"default:'scheduled'"`

	// ScoreHome/ScoreAway are derived from goal events and maintained by the
	// event ledger; the generic match update can still overwrite them (see
	// RecomputeScore for the repair path).
	ScoreHome int `json:"score_home" gorm:"default:0;check:score_home >= 0"`
	ScoreAway int `json:"score_away" gorm:"default:0;check:score_away >= 0"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	HomeTeam *Team `json:"home_team,omitempty" gorm:"foreignKey:HomeTeamID"`
	AwayTeam *Team `json:"away_team,omitempty" gorm:"foreignKey:AwayTeamID"`
}

// HasTeam reports whether the team plays on either side of the match.
func (m *Match) HasTeam(teamID string) bool {
	return teamID == m.HomeTeamID || teamID == m.AwayTeamID
}
