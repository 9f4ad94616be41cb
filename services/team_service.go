package services

import (
	"errors"
	"fmt"
	"path/filepath"

	"football-match-tracker/models"
	"football-match-tracker/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type TeamService struct {
	DB *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{DB: db}
}

type TeamInput struct {
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
	Country   string `json:"country"`
}

// teamSlug derives a unique URL slug from the team name, suffixing with a
// short random fragment on collision.
func (s *TeamService) teamSlug(name, excludeID string) (string, error) {
	base := slug.Make(name)
	var count int64
	err := s.DB.Model(&models.Team{}).
		Where("slug = ? AND id <> ?", base, excludeID).
		Count(&count).Error
	if err != nil {
		return "", wrapStorage(err)
	}
	if count == 0 {
		return base, nil
	}
	return base + "-" + uuid.NewString()[:8], nil
}

func (s *TeamService) createTeam(in TeamInput) (*models.Team, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	teamSlug, err := s.teamSlug(in.Name, "")
	if err != nil {
		return nil, err
	}
	team := &models.Team{
		ID:        uuid.NewString(),
		Name:      in.Name,
		ShortName: in.ShortName,
		Country:   in.Country,
		Slug:      teamSlug,
	}
	if err := s.DB.Create(team).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return team, nil
}

func (s *TeamService) updateTeam(id string, in TeamInput) (*models.Team, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("%w: name is required", models.ErrValidation)
	}
	var team models.Team
	if err := s.DB.First(&team, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrTeamNotFound
		}
		return nil, wrapStorage(err)
	}

	if in.Name != team.Name {
		teamSlug, err := s.teamSlug(in.Name, id)
		if err != nil {
			return nil, err
		}
		team.Slug = teamSlug
	}
	team.Name = in.Name
	team.ShortName = in.ShortName
	team.Country = in.Country
	if err := s.DB.Save(&team).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return &team, nil
}

// deleteTeam removes a team and everything hanging off it: the team's
// players (with their events), every match the team plays in (with its
// events), and finally the team row, all in one transaction.
func (s *TeamService) deleteTeam(id string) error {
	return wrapStorage(s.DB.Transaction(func(tx *gorm.DB) error {
		var matchIDs []string
		if err := tx.Model(&models.Match{}).
			Where("home_team_id = ? OR away_team_id = ?", id, id).
			Pluck("id", &matchIDs).Error; err != nil {
			return err
		}
		doomed := make(map[string]bool, len(matchIDs))
		for _, mid := range matchIDs {
			doomed[mid] = true
		}

		var playerIDs []string
		if err := tx.Model(&models.Player{}).
			Where("team_id = ?", id).
			Pluck("id", &playerIDs).Error; err != nil {
			return err
		}

		// A player may have goals in matches that survive the team (events
		// recorded before a transfer). Reverse those before dropping the rows.
		for _, pid := range playerIDs {
			if err := reversePlayerGoals(tx, pid, doomed); err != nil {
				return err
			}
		}
		if len(playerIDs) > 0 {
			if err := tx.Where("player_id IN ?", playerIDs).Delete(&models.Event{}).Error; err != nil {
				return err
			}
		}
		if len(matchIDs) > 0 {
			if err := tx.Where("match_id IN ?", matchIDs).Delete(&models.Event{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", matchIDs).Delete(&models.Match{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("team_id = ?", id).Delete(&models.Player{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Team{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrTeamNotFound
		}
		return nil
	}))
}

// --- HTTP endpoints ---

func (s *TeamService) GetAllTeams(c *fiber.Ctx) error {
	var teams []models.Team
	if err := s.DB.Order("name ASC").Find(&teams).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(teams)
}

func (s *TeamService) GetTeamByID(c *fiber.Ctx) error {
	var team models.Team
	err := s.DB.Preload("Players").First(&team, "id = ?", c.Params("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "team not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(team)
}

func (s *TeamService) GetTeamBySlug(c *fiber.Ctx) error {
	var team models.Team
	err := s.DB.Preload("Players").First(&team, "slug = ?", c.Params("slug")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "team not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(team)
}

func (s *TeamService) CreateTeam(c *fiber.Ctx) error {
	var in TeamInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	team, err := s.createTeam(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(team)
}

func (s *TeamService) UpdateTeam(c *fiber.Ctx) error {
	var in TeamInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	team, err := s.updateTeam(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(team)
}

func (s *TeamService) DeleteTeam(c *fiber.Ctx) error {
	if err := s.deleteTeam(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "team and its players, matches and events deleted"})
}

// UploadCrest stores a team crest image in R2 and records the public URL.
func (s *TeamService) UploadCrest(c *fiber.Ctx) error {
	var team models.Team
	if err := s.DB.First(&team, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "team not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if !utils.R2Enabled() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "crest storage is not configured"})
	}

	crestFile, err := c.FormFile("crest")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "crest file is required"})
	}
	ext := filepath.Ext(crestFile.Filename)
	if ext == "" {
		ext = ".png"
	}
	key := "crests/" + uuid.NewString() + ext
	url, err := utils.UploadFileToR2(crestFile, key)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to upload crest"})
	}

	if err := s.DB.Model(&team).Update("crest_url", url).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	team.CrestURL = url
	return c.JSON(team)
}
