package models

import (
	"time"
)

type Team struct {
	ID        string `json:"id" gorm:"primaryKey"`
	Name      string `json:"name" gorm:"not null"`
	ShortName string `json:"short_name"`
	Country   string `json:"country"`
	Slug      string `json:"slug" gorm:"uniqueIndex"`
	CrestURL  string `json:"crest_url,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Relationships
	Players []Player `json:"players,omitempty" gorm:"foreignKey:TeamID"`
}
