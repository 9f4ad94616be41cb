package services

import (
	"errors"

	"football-match-tracker/models"

	"gorm.io/gorm"
)

// applyGoal credits one goal to the scoring team's side of the match. It must
// run in the same transaction as the event insert so the score and the ledger
// commit or roll back together.
func applyGoal(tx *gorm.DB, match *models.Match, teamID string) error {
	switch teamID {
	case match.HomeTeamID:
		return tx.Model(&models.Match{}).Where("id = ?", match.ID).
			Update("score_home", gorm.Expr("score_home + 1")).Error
	case match.AwayTeamID:
		return tx.Model(&models.Match{}).Where("id = ?", match.ID).
			Update("score_away", gorm.Expr("score_away + 1")).Error
	default:
		return models.ErrScoreInconsistency
	}
}

// reverseGoal takes one goal back from the team's side, clamped at zero. A
// side already at zero is left untouched rather than reported: the ledger
// favors not corrupting state over surfacing a rare double reversal. A team
// matching neither side is a no-op for the same reason (the match's home/away
// assignment may have shifted under the event since it was recorded).
func reverseGoal(tx *gorm.DB, match *models.Match, teamID string) error {
	switch teamID {
	case match.HomeTeamID:
		return tx.Model(&models.Match{}).
			Where("id = ? AND score_home > 0", match.ID).
			Update("score_home", gorm.Expr("score_home - 1")).Error
	case match.AwayTeamID:
		return tx.Model(&models.Match{}).
			Where("id = ? AND score_away > 0", match.ID).
			Update("score_away", gorm.Expr("score_away - 1")).Error
	default:
		return nil
	}
}

// reversePlayerGoals takes back every goal a player has on record so that
// matches outliving the player keep a truthful score. Matches listed in skip
// are about to be deleted themselves and need no adjustment.
func reversePlayerGoals(tx *gorm.DB, playerID string, skip map[string]bool) error {
	var goals []models.Event
	if err := tx.Where("player_id = ? AND event_type = ?", playerID, models.EventTypeGoal).
		Find(&goals).Error; err != nil {
		return err
	}
	for _, g := range goals {
		if skip[g.MatchID] {
			continue
		}
		var match models.Match
		err := tx.First(&match, "id = ?", g.MatchID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		// the event's own team decides the side, not current match state
		if err := reverseGoal(tx, &match, g.TeamID); err != nil {
			return err
		}
	}
	return nil
}

// RecomputeScore recounts goal events for both sides of a match and rewrites
// the stored score. This is the repair path for drift introduced by direct
// score edits on the generic match update, which bypass the event ledger.
func RecomputeScore(db *gorm.DB, matchID string) (*models.Match, error) {
	var match models.Match
	if err := db.First(&match, "id = ?", matchID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrMatchNotFound
		}
		return nil, wrapStorage(err)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		var home, away int64
		if err := tx.Model(&models.Event{}).
			Where("match_id = ? AND team_id = ? AND event_type = ?", match.ID, match.HomeTeamID, models.EventTypeGoal).
			Count(&home).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Event{}).
			Where("match_id = ? AND team_id = ? AND event_type = ?", match.ID, match.AwayTeamID, models.EventTypeGoal).
			Count(&away).Error; err != nil {
			return err
		}
		match.ScoreHome = int(home)
		match.ScoreAway = int(away)
		return tx.Model(&models.Match{}).Where("id = ?", match.ID).
			Updates(map[string]interface{}{
				"score_home": match.ScoreHome,
				"score_away": match.ScoreAway,
			}).Error
	})
	if err != nil {
		return nil, wrapStorage(err)
	}
	return &match, nil
}
