package services

import (
	"errors"
	"fmt"

	"football-match-tracker/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PlayerService struct {
	DB *gorm.DB
}

func NewPlayerService(db *gorm.DB) *PlayerService {
	return &PlayerService{DB: db}
}

type PlayerInput struct {
	TeamID   string `json:"team_id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	Number   int    `json:"number"`
}

func (s *PlayerService) createPlayer(in PlayerInput) (*models.Player, error) {
	if in.TeamID == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: team_id and name are required", models.ErrValidation)
	}
	var count int64
	if err := s.DB.Model(&models.Team{}).Where("id = ?", in.TeamID).Count(&count).Error; err != nil {
		return nil, wrapStorage(err)
	}
	if count == 0 {
		return nil, models.ErrTeamNotFound
	}

	player := &models.Player{
		ID:       uuid.NewString(),
		TeamID:   &in.TeamID,
		Name:     in.Name,
		Position: in.Position,
		Number:   in.Number,
	}
	if err := s.DB.Create(player).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return player, nil
}

func (s *PlayerService) updatePlayer(id string, in PlayerInput) (*models.Player, error) {
	if in.TeamID == "" || in.Name == "" {
		return nil, fmt.Errorf("%w: team_id and name are required", models.ErrValidation)
	}
	var count int64
	if err := s.DB.Model(&models.Team{}).Where("id = ?", in.TeamID).Count(&count).Error; err != nil {
		return nil, wrapStorage(err)
	}
	if count == 0 {
		return nil, models.ErrTeamNotFound
	}

	var player models.Player
	if err := s.DB.First(&player, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPlayerNotFound
		}
		return nil, wrapStorage(err)
	}

	player.TeamID = &in.TeamID
	player.Name = in.Name
	player.Position = in.Position
	player.Number = in.Number
	if err := s.DB.Save(&player).Error; err != nil {
		return nil, wrapStorage(err)
	}
	return &player, nil
}

// deletePlayer removes a player together with every event on their record.
// Goals among those events are reversed first so matches that outlive the
// player keep a score matching the remaining ledger.
func (s *PlayerService) deletePlayer(id string) error {
	return wrapStorage(s.DB.Transaction(func(tx *gorm.DB) error {
		if err := reversePlayerGoals(tx, id, nil); err != nil {
			return err
		}
		if err := tx.Where("player_id = ?", id).Delete(&models.Event{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Player{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return models.ErrPlayerNotFound
		}
		return nil
	}))
}

// --- HTTP endpoints ---

func (s *PlayerService) GetAllPlayers(c *fiber.Ctx) error {
	var players []models.Player
	q := s.DB.Order("name ASC")
	if teamID := c.Query("team_id"); teamID != "" {
		q = q.Where("team_id = ?", teamID)
	}
	if err := q.Find(&players).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(players)
}

func (s *PlayerService) GetPlayerByID(c *fiber.Ctx) error {
	var player models.Player
	if err := s.DB.First(&player, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "player not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(player)
}

func (s *PlayerService) CreatePlayer(c *fiber.Ctx) error {
	var in PlayerInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	player, err := s.createPlayer(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(player)
}

func (s *PlayerService) UpdatePlayer(c *fiber.Ctx) error {
	var in PlayerInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	player, err := s.updatePlayer(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(player)
}

func (s *PlayerService) DeletePlayer(c *fiber.Ctx) error {
	if err := s.deletePlayer(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "player and their events deleted"})
}
