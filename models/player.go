package models

import (
	"time"
)

type Player struct {
	ID       string  `json:"id" gorm:"primaryKey"`
	TeamID   *string `json:"team_id" gorm:"index"` // nullable: a player may be between clubs
	Name     string  `json:"name" gorm:"not null"`
	Position string  `json:"position"`
	Number   int     `json:"number"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Team *Team `json:"team,omitempty" gorm:"foreignKey:TeamID"`
}

// BelongsTo reports whether the player is currently registered with the team.
func (p *Player) BelongsTo(teamID string) bool {
	return p.TeamID != nil && *p.TeamID == teamID
}
