package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"football-match-tracker/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

// newTestDB opens a fresh in-memory SQLite database named after the test so
// parallel tests do not share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.New(sqlite.Config{
		DSN:        dsn,
		DriverName: "sqlite",
	}), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.Team{}, &models.Player{}, &models.Match{}, &models.Event{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

type fixture struct {
	home    models.Team
	away    models.Team
	striker models.Player // plays for home
	winger  models.Player // plays for away
	match   models.Match  // home vs away, 0:0
}

func seedFixture(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	f := fixture{
		home: models.Team{ID: uuid.NewString(), Name: "Sparta Praha", ShortName: "SPA", Country: "Czechia", Slug: "sparta-praha"},
		away: models.Team{ID: uuid.NewString(), Name: "Slavia Praha", ShortName: "SLA", Country: "Czechia", Slug: "slavia-praha"},
	}
	if err := db.Create(&f.home).Error; err != nil {
		t.Fatalf("seed home team: %v", err)
	}
	if err := db.Create(&f.away).Error; err != nil {
		t.Fatalf("seed away team: %v", err)
	}

	f.striker = models.Player{ID: uuid.NewString(), TeamID: &f.home.ID, Name: "Jan Novak", Position: "Forward", Number: 9}
	f.winger = models.Player{ID: uuid.NewString(), TeamID: &f.away.ID, Name: "Petr Svoboda", Position: "Winger", Number: 11}
	if err := db.Create(&f.striker).Error; err != nil {
		t.Fatalf("seed striker: %v", err)
	}
	if err := db.Create(&f.winger).Error; err != nil {
		t.Fatalf("seed winger: %v", err)
	}

	f.match = models.Match{
		ID:         uuid.NewString(),
		HomeTeamID: f.home.ID,
		AwayTeamID: f.away.ID,
		MatchDate:  time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC),
		Stadium:    "Letna",
		Status:     models.MatchStatusScheduled,
	}
	if err := db.Create(&f.match).Error; err != nil {
		t.Fatalf("seed match: %v", err)
	}
	return f
}

func reloadMatch(t *testing.T, db *gorm.DB, id string) models.Match {
	t.Helper()
	var m models.Match
	if err := db.First(&m, "id = ?", id).Error; err != nil {
		t.Fatalf("reload match %s: %v", id, err)
	}
	return m
}

func wantScore(t *testing.T, db *gorm.DB, matchID string, home, away int) {
	t.Helper()
	m := reloadMatch(t, db, matchID)
	if m.ScoreHome != home || m.ScoreAway != away {
		t.Fatalf("score = %d:%d, want %d:%d", m.ScoreHome, m.ScoreAway, home, away)
	}
}

func countEvents(t *testing.T, db *gorm.DB, query string, args ...interface{}) int64 {
	t.Helper()
	var n int64
	q := db.Model(&models.Event{})
	if query != "" {
		q = q.Where(query, args...)
	}
	if err := q.Count(&n).Error; err != nil {
		t.Fatalf("count events: %v", err)
	}
	return n
}
