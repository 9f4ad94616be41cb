package models

import (
	"time"
)

const (
	EventTypeGoal       = "goal"
	EventTypeYellowCard = "yellow_card"
	EventTypeRedCard    = "red_card"
)

// Minute bounds for an event. 120 covers extra time; the same bound is
// enforced by the column CHECK below so the store and the validator agree.
const (
	MinMinute = 1
	MaxMinute = 120
)

func ValidEventType(s string) bool {
	switch s {
	case EventTypeGoal, EventTypeYellowCard, EventTypeRedCard:
		return true
	}
	return false
}

// Event is a row in the match event ledger. Rows are created and deleted only
// through the EventService so the match score stays in step with the goals on
// record.
type Event struct {
	ID          string `json:"id" gorm:"primaryKey"`
	MatchID     string `json:"match_id" gorm:"not null;index"`
	TeamID      string `json:"team_id" gorm:"not null;index"`
	PlayerID    string `json:"player_id" gorm:"not null;index"`
	EventType   string `json:"event_type" gorm:"not null;check:event_type IN ('goal','yellow_card','red_card')"`
	Minute      int    `json:"minute" gorm:"not null;check:minute BETWEEN 1 AND 120"`
	Description string `json:"description,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	// Relationships
	Match  *Match  `json:"match,omitempty" gorm:"foreignKey:MatchID"`
	Team   *Team   `json:"team,omitempty" gorm:"foreignKey:TeamID"`
	Player *Player `json:"player,omitempty" gorm:"foreignKey:PlayerID"`
}
