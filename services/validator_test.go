package services

import (
	"errors"
	"testing"

	"football-match-tracker/models"
)

func TestValidateEvent(t *testing.T) {
	homeID := "team-home"
	awayID := "team-away"
	match := &models.Match{ID: "match-1", HomeTeamID: homeID, AwayTeamID: awayID}
	player := &models.Player{ID: "player-1", TeamID: &homeID}

	valid := EventInput{
		MatchID:   "match-1",
		TeamID:    homeID,
		PlayerID:  "player-1",
		EventType: models.EventTypeGoal,
		Minute:    45,
	}

	tests := []struct {
		name       string
		mutate     func(*EventInput)
		match      *models.Match
		teamExists bool
		player     *models.Player
		wantErr    error
	}{
		{name: "valid goal", match: match, teamExists: true, player: player},
		{name: "valid card", mutate: func(in *EventInput) { in.EventType = models.EventTypeRedCard }, match: match, teamExists: true, player: player},
		{name: "minute at upper bound", mutate: func(in *EventInput) { in.Minute = 120 }, match: match, teamExists: true, player: player},
		{name: "missing match id", mutate: func(in *EventInput) { in.MatchID = "" }, match: match, teamExists: true, player: player, wantErr: models.ErrValidation},
		{name: "missing player id", mutate: func(in *EventInput) { in.PlayerID = "" }, match: match, teamExists: true, player: player, wantErr: models.ErrValidation},
		{name: "missing minute", mutate: func(in *EventInput) { in.Minute = 0 }, match: match, teamExists: true, player: player, wantErr: models.ErrValidation},
		{name: "unknown event type", mutate: func(in *EventInput) { in.EventType = "penalty" }, match: match, teamExists: true, player: player, wantErr: models.ErrValidation},
		{name: "minute beyond extra time", mutate: func(in *EventInput) { in.Minute = 121 }, match: match, teamExists: true, player: player, wantErr: models.ErrValidation},
		{name: "negative minute", mutate: func(in *EventInput) { in.Minute = -3 }, match: match, teamExists: true, player: player, wantErr: models.ErrValidation},
		{name: "match missing", match: nil, teamExists: true, player: player, wantErr: models.ErrMatchNotFound},
		{name: "team missing", match: match, teamExists: false, player: player, wantErr: models.ErrTeamNotFound},
		{name: "player missing", match: match, teamExists: true, player: nil, wantErr: models.ErrPlayerNotFound},
		{name: "player on other team", mutate: func(in *EventInput) { in.TeamID = awayID }, match: match, teamExists: true, player: player, wantErr: models.ErrPlayerTeamMismatch},
		{
			name:       "player without a club",
			match:      match,
			teamExists: true,
			player:     &models.Player{ID: "player-2", TeamID: nil},
			wantErr:    models.ErrPlayerTeamMismatch,
		},
		{
			name:       "team plays elsewhere",
			match:      &models.Match{ID: "match-2", HomeTeamID: "team-x", AwayTeamID: "team-y"},
			teamExists: true,
			player:     player,
			wantErr:    models.ErrTeamNotInMatch,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := valid
			if tc.mutate != nil {
				tc.mutate(&in)
			}
			err := ValidateEvent(in, tc.match, tc.teamExists, tc.player)
			if tc.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateEvent() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("ValidateEvent() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidatorChecksOrder(t *testing.T) {
	// A match that is absent must win over a later failure: the team below is
	// also missing, but the match check comes first.
	in := EventInput{MatchID: "m", TeamID: "t", PlayerID: "p", EventType: models.EventTypeGoal, Minute: 10}
	err := ValidateEvent(in, nil, false, nil)
	if !errors.Is(err, models.ErrMatchNotFound) {
		t.Fatalf("ValidateEvent() = %v, want %v", err, models.ErrMatchNotFound)
	}
}
