package services

import (
	"errors"
	"testing"

	"football-match-tracker/models"

	"gorm.io/gorm"
)

func TestApplyGoalRejectsTeamOutsideMatch(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)

	err := db.Transaction(func(tx *gorm.DB) error {
		return applyGoal(tx, &f.match, "team-elsewhere")
	})
	if !errors.Is(err, models.ErrScoreInconsistency) {
		t.Fatalf("err = %v, want %v", err, models.ErrScoreInconsistency)
	}
	wantScore(t, db, f.match.ID, 0, 0)
}

func TestReverseGoalIgnoresTeamOutsideMatch(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := NewEventService(db)

	if _, err := svc.RecordEvent(goalInput(f, f.home.ID, f.striker.ID, 21)); err != nil {
		t.Fatalf("record: %v", err)
	}

	// Reversal for a team on neither side is a deliberate no-op, not an error.
	err := db.Transaction(func(tx *gorm.DB) error {
		return reverseGoal(tx, &f.match, "team-elsewhere")
	})
	if err != nil {
		t.Fatalf("reverse with outside team: %v", err)
	}
	wantScore(t, db, f.match.ID, 1, 0)
}
