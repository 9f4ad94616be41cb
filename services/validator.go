package services

import (
	"fmt"

	"football-match-tracker/models"
)

// EventInput carries the fields a caller may supply when recording an event.
type EventInput struct {
	MatchID     string `json:"match_id"`
	TeamID      string `json:"team_id"`
	PlayerID    string `json:"player_id"`
	EventType   string `json:"event_type"`
	Minute      int    `json:"minute"`
	Description string `json:"description"`
}

// ValidateEvent checks a proposed event against the rows it references before
// anything is written. match and player are nil when the lookup found no row.
// Checks run in order and stop at the first failure; the function reads
// nothing and writes nothing.
func ValidateEvent(in EventInput, match *models.Match, teamExists bool, player *models.Player) error {
	if in.MatchID == "" || in.TeamID == "" || in.PlayerID == "" || in.EventType == "" || in.Minute == 0 {
		return fmt.Errorf("%w: match_id, team_id, player_id, event_type and minute are required", models.ErrValidation)
	}
	if !models.ValidEventType(in.EventType) {
		return fmt.Errorf("%w: invalid event_type %q (use: goal, yellow_card, red_card)", models.ErrValidation, in.EventType)
	}
	if in.Minute < models.MinMinute || in.Minute > models.MaxMinute {
		return fmt.Errorf("%w: minute must be between %d and %d", models.ErrValidation, models.MinMinute, models.MaxMinute)
	}
	if match == nil {
		return models.ErrMatchNotFound
	}
	if !teamExists {
		return models.ErrTeamNotFound
	}
	if player == nil {
		return models.ErrPlayerNotFound
	}
	if !player.BelongsTo(in.TeamID) {
		return models.ErrPlayerTeamMismatch
	}
	if !match.HasTeam(in.TeamID) {
		return models.ErrTeamNotInMatch
	}
	return nil
}
