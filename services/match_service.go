package services

import (
	"errors"
	"fmt"
	"time"

	"football-match-tracker/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MatchService struct {
	DB *gorm.DB
}

func NewMatchService(db *gorm.DB) *MatchService {
	return &MatchService{DB: db}
}

type MatchInput struct {
	HomeTeamID string    `json:"home_team_id"`
	AwayTeamID string    `json:"away_team_id"`
	MatchDate  time.Time `json:"match_date"`
	Stadium    string    `json:"stadium"`
}

// MatchUpdate is the generic partial update. Score fields are deliberately
// writable here: that mirrors the surrounding CRUD contract, and the drift it
// can introduce is repaired by RecomputeScore / the audit job.
type MatchUpdate struct {
	MatchDate *time.Time `json:"match_date"`
	Stadium   *string    `json:"stadium"`
	Status    *string    `json:"status"`
	ScoreHome *int       `json:"score_home"`
	ScoreAway *int       `json:"score_away"`
}

func (s *MatchService) createMatch(in MatchInput) (*models.Match, error) {
	if in.HomeTeamID == "" || in.AwayTeamID == "" || in.MatchDate.IsZero() {
		return nil, fmt.Errorf("%w: home_team_id, away_team_id and match_date are required", models.ErrValidation)
	}
	if in.HomeTeamID == in.AwayTeamID {
		return nil, fmt.Errorf("%w: home team and away team cannot be the same", models.ErrValidation)
	}
	for _, teamID := range []string{in.HomeTeamID, in.AwayTeamID} {
		var count int64
		if err := s.DB.Model(&models.Team{}).Where("id = ?", teamID).Count(&count).Error; err != nil {
			return nil, wrapStorage(err)
		}
		if count == 0 {
			return nil, models.ErrTeamNotFound
		}
	}

	stadium := in.Stadium
	if stadium == "" {
		stadium = "Unknown stadium"
	}
	match := &models.Match{
		ID:         uuid.NewString(),
		HomeTeamID: in.HomeTeamID,
		AwayTeamID: in.AwayTeamID,
		MatchDate:  in.MatchDate,
		Stadium:    stadium,
		Status:     models.MatchStatusScheduled,
	}
	if err := s.DB.Create(match).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return match, nil
}

func (s *MatchService) updateMatch(id string, upd MatchUpdate) (*models.Match, error) {
	var match models.Match
	if err := s.DB.First(&match, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrMatchNotFound
		}
		return nil, wrapStorage(err)
	}

	updates := map[string]interface{}{}
	if upd.MatchDate != nil {
		updates["match_date"] = *upd.MatchDate
		match.MatchDate = *upd.MatchDate
	}
	if upd.Stadium != nil {
		updates["stadium"] = *upd.Stadium
		match.Stadium = *upd.Stadium
	}
	if upd.Status != nil {
		if !models.ValidMatchStatus(*upd.Status) {
			return nil, fmt.Errorf("%w: invalid status (use: scheduled, in_progress, finished)", models.ErrValidation)
		}
		updates["status"] = *upd.Status
		match.Status = *upd.Status
	}
	if upd.ScoreHome != nil {
		if *upd.ScoreHome < 0 {
			return nil, fmt.Errorf("%w: score_home must be non-negative", models.ErrValidation)
		}
		updates["score_home"] = *upd.ScoreHome
		match.ScoreHome = *upd.ScoreHome
	}
	if upd.ScoreAway != nil {
		if *upd.ScoreAway < 0 {
			return nil, fmt.Errorf("%w: score_away must be non-negative", models.ErrValidation)
		}
		updates["score_away"] = *upd.ScoreAway
		match.ScoreAway = *upd.ScoreAway
	}
	if len(updates) == 0 {
		return nil, models.ErrNoFields
	}

	if err := s.DB.Model(&models.Match{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return &match, nil
}

// deleteMatch removes a match and every event recorded against it in one
// transaction. The score needs no adjustment since the match row goes with it.
func (s *MatchService) deleteMatch(id string) error {
	return wrapStorage(s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("match_id = ?", id).Delete(&models.Event{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Match{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrMatchNotFound
		}
		return nil
	}))
}

// --- HTTP endpoints ---

func (s *MatchService) GetAllMatches(c *fiber.Ctx) error {
	var matches []models.Match
	if err := s.DB.Preload("HomeTeam").Preload("AwayTeam").
		Order("match_date ASC").Find(&matches).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(matches)
}

func (s *MatchService) GetMatchByID(c *fiber.Ctx) error {
	var match models.Match
	err := s.DB.Preload("HomeTeam").Preload("AwayTeam").
		First(&match, "id = ?", c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "match not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(match)
}

func (s *MatchService) CreateMatch(c *fiber.Ctx) error {
	var in MatchInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON (match_date must be RFC3339)"})
	}
	match, err := s.createMatch(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(match)
}

func (s *MatchService) UpdateMatch(c *fiber.Ctx) error {
	var upd MatchUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	match, err := s.updateMatch(c.Params("id"), upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(match)
}

func (s *MatchService) DeleteMatch(c *fiber.Ctx) error {
	if err := s.deleteMatch(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "match and its events deleted"})
}

func (s *MatchService) RecomputeMatchScore(c *fiber.Ctx) error {
	match, err := RecomputeScore(s.DB, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(match)
}
