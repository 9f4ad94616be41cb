package services

import (
	"errors"
	"testing"
	"time"

	"football-match-tracker/models"
)

func TestCreateMatchValidation(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := NewMatchService(db)

	date := time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

	if _, err := svc.createMatch(MatchInput{HomeTeamID: f.home.ID, AwayTeamID: f.home.ID, MatchDate: date}); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("same team err = %v, want %v", err, models.ErrValidation)
	}
	if _, err := svc.createMatch(MatchInput{HomeTeamID: f.home.ID, AwayTeamID: "no-such-team", MatchDate: date}); !errors.Is(err, models.ErrTeamNotFound) {
		t.Fatalf("missing team err = %v, want %v", err, models.ErrTeamNotFound)
	}
	if _, err := svc.createMatch(MatchInput{HomeTeamID: f.home.ID, AwayTeamID: f.away.ID}); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("missing date err = %v, want %v", err, models.ErrValidation)
	}

	match, err := svc.createMatch(MatchInput{HomeTeamID: f.home.ID, AwayTeamID: f.away.ID, MatchDate: date})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if match.Status != models.MatchStatusScheduled || match.ScoreHome != 0 || match.ScoreAway != 0 {
		t.Fatalf("new match = %s %d:%d, want scheduled 0:0", match.Status, match.ScoreHome, match.ScoreAway)
	}
	if match.Stadium != "Unknown stadium" {
		t.Fatalf("stadium = %q, want default", match.Stadium)
	}
}

func TestUpdateMatch(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	svc := NewMatchService(db)

	badStatus := "postponed"
	if _, err := svc.updateMatch(f.match.ID, MatchUpdate{Status: &badStatus}); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("bad status err = %v, want %v", err, models.ErrValidation)
	}

	negative := -1
	if _, err := svc.updateMatch(f.match.ID, MatchUpdate{ScoreHome: &negative}); !errors.Is(err, models.ErrValidation) {
		t.Fatalf("negative score err = %v, want %v", err, models.ErrValidation)
	}

	if _, err := svc.updateMatch(f.match.ID, MatchUpdate{}); !errors.Is(err, models.ErrNoFields) {
		t.Fatalf("empty update err = %v, want %v", err, models.ErrNoFields)
	}

	status := models.MatchStatusInProgress
	stadium := "Eden Arena"
	updated, err := svc.updateMatch(f.match.ID, MatchUpdate{Status: &status, Stadium: &stadium})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != status || updated.Stadium != stadium {
		t.Fatalf("updated = %s/%s, want %s/%s", updated.Status, updated.Stadium, status, stadium)
	}

	if _, err := svc.updateMatch("no-such-match", MatchUpdate{Status: &status}); !errors.Is(err, models.ErrMatchNotFound) {
		t.Fatalf("missing match err = %v, want %v", err, models.ErrMatchNotFound)
	}
}

func TestDeleteMatchCascadesEvents(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	matchSvc := NewMatchService(db)
	eventSvc := NewEventService(db)

	if _, err := eventSvc.RecordEvent(goalInput(f, f.home.ID, f.striker.ID, 12)); err != nil {
		t.Fatalf("record: %v", err)
	}
	in := goalInput(f, f.away.ID, f.winger.ID, 40)
	in.EventType = models.EventTypeYellowCard
	if _, err := eventSvc.RecordEvent(in); err != nil {
		t.Fatalf("record: %v", err)
	}

	if err := matchSvc.deleteMatch(f.match.ID); err != nil {
		t.Fatalf("delete match: %v", err)
	}

	if n := countEvents(t, db, "match_id = ?", f.match.ID); n != 0 {
		t.Fatalf("orphaned events = %d, want 0", n)
	}
	var matches int64
	db.Model(&models.Match{}).Where("id = ?", f.match.ID).Count(&matches)
	if matches != 0 {
		t.Fatalf("match still present")
	}
}

func TestDeleteMatchNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMatchService(db)
	if err := svc.deleteMatch("no-such-match"); !errors.Is(err, models.ErrMatchNotFound) {
		t.Fatalf("err = %v, want %v", err, models.ErrMatchNotFound)
	}
}

func TestRecomputeScoreRepairsDrift(t *testing.T) {
	db := newTestDB(t)
	f := seedFixture(t, db)
	eventSvc := NewEventService(db)
	matchSvc := NewMatchService(db)

	if _, err := eventSvc.RecordEvent(goalInput(f, f.home.ID, f.striker.ID, 21)); err != nil {
		t.Fatalf("record: %v", err)
	}
	wantScore(t, db, f.match.ID, 1, 0)

	// Direct score edit through the generic match update desynchronizes the
	// stored score from the goal events on record.
	five, two := 5, 2
	if _, err := matchSvc.updateMatch(f.match.ID, MatchUpdate{ScoreHome: &five, ScoreAway: &two}); err != nil {
		t.Fatalf("direct edit: %v", err)
	}
	wantScore(t, db, f.match.ID, 5, 2)

	repaired, err := RecomputeScore(db, f.match.ID)
	if err != nil {
		t.Fatalf("recompute: %v", err)
	}
	if repaired.ScoreHome != 1 || repaired.ScoreAway != 0 {
		t.Fatalf("recomputed = %d:%d, want 1:0", repaired.ScoreHome, repaired.ScoreAway)
	}
	wantScore(t, db, f.match.ID, 1, 0)
}

func TestRecomputeScoreNotFound(t *testing.T) {
	db := newTestDB(t)
	if _, err := RecomputeScore(db, "no-such-match"); !errors.Is(err, models.ErrMatchNotFound) {
		t.Fatalf("err = %v, want %v", err, models.ErrMatchNotFound)
	}
}
