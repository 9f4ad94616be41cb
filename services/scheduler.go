// services/scheduler.go
package services

import (
	"log"
	"time"

	"football-match-tracker/models"

	"github.com/go-co-op/gocron/v2"
)

// StartScoreAuditScheduler runs a periodic audit that recounts goal events
// for every match and rewrites stored scores that drifted. Direct score edits
// through the generic match update bypass the event ledger; this job is the
// safety net that pulls them back in line.
func (s *MatchService) StartScoreAuditScheduler(interval time.Duration) {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			var matches []models.Match
			if err := s.DB.Find(&matches).Error; err != nil {
				log.Printf("[ScoreAudit] DB error: %v", err)
				return
			}

			for _, m := range matches {
				repaired, err := RecomputeScore(s.DB, m.ID)
				if err != nil {
					log.Printf("[ScoreAudit] failed to recompute match %s: %v", m.ID, err)
					continue
				}
				if repaired.ScoreHome != m.ScoreHome || repaired.ScoreAway != m.ScoreAway {
					log.Printf("[ScoreAudit] repaired match %s: %d:%d -> %d:%d",
						m.ID, m.ScoreHome, m.ScoreAway, repaired.ScoreHome, repaired.ScoreAway)
				}
			}
		}),
	)
}
