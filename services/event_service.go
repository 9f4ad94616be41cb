package services

import (
	"errors"
	"fmt"

	"football-match-tracker/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventService struct {
	DB *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{DB: db}
}

// EventUpdate carries the fields that stay mutable after an event is
// recorded. Everything else (event_type, team_id, player_id, match_id) is
// frozen: changing those would require re-deriving score deltas retroactively.
type EventUpdate struct {
	Minute      *int    `json:"minute"`
	Description *string `json:"description"`
}

// RecordEvent validates the input against the referenced match, team and
// player, then appends the event and applies the score delta in one
// transaction. Nothing is written when validation rejects the input.
func (s *EventService) RecordEvent(in EventInput) (*models.Event, error) {
	var match *models.Match
	if in.MatchID != "" {
		var m models.Match
		switch err := s.DB.First(&m, "id = ?", in.MatchID).Error; {
		case err == nil:
			match = &m
		case errors.Is(err, gorm.ErrRecordNotFound):
			// leave nil for the validator
		default:
			return nil, wrapStorage(err)
		}
	}

	teamExists := false
	if in.TeamID != "" {
		var count int64
		if err := s.DB.Model(&models.Team{}).Where("id = ?", in.TeamID).Count(&count).Error; err != nil {
			return nil, wrapStorage(err)
		}
		teamExists = count > 0
	}

	var player *models.Player
	if in.PlayerID != "" {
		var p models.Player
		switch err := s.DB.First(&p, "id = ?", in.PlayerID).Error; {
		case err == nil:
			player = &p
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return nil, wrapStorage(err)
		}
	}

	if err := ValidateEvent(in, match, teamExists, player); err != nil {
		return nil, err
	}

	event := &models.Event{
		ID:          uuid.NewString(),
		MatchID:     in.MatchID,
		TeamID:      in.TeamID,
		PlayerID:    in.PlayerID,
		EventType:   in.EventType,
		Minute:      in.Minute,
		Description: in.Description,
	}

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		if event.EventType == models.EventTypeGoal {
			return applyGoal(tx, match, event.TeamID)
		}
		return nil
	})
	if err != nil {
		return nil, wrapStorage(err)
	}
	return event, nil
}

// UpdateEventFields amends the minute and/or description of a recorded event.
func (s *EventService) UpdateEventFields(id string, upd EventUpdate) (*models.Event, error) {
	if upd.Minute == nil && upd.Description == nil {
		return nil, models.ErrNoFields
	}
	if upd.Minute != nil && (*upd.Minute < models.MinMinute || *upd.Minute > models.MaxMinute) {
		return nil, fmt.Errorf("%w: minute must be between %d and %d", models.ErrValidation, models.MinMinute, models.MaxMinute)
	}

	var event models.Event
	if err := s.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrEventNotFound
		}
		return nil, wrapStorage(err)
	}

	updates := map[string]interface{}{}
	if upd.Minute != nil {
		updates["minute"] = *upd.Minute
		event.Minute = *upd.Minute
	}
	if upd.Description != nil {
		updates["description"] = *upd.Description
		event.Description = *upd.Description
	}
	result := s.DB.Model(&models.Event{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, wrapStorage(result.Error)
	}
	// deleted between the fetch above and this write
	if result.RowsAffected == 0 {
		return nil, models.ErrEventNotFound
	}
	return &event, nil
}

// RemoveEvent deletes an event and, for goals, takes the goal back from the
// match score in the same transaction.
func (s *EventService) RemoveEvent(id string) error {
	var event models.Event
	if err := s.DB.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrEventNotFound
		}
		return wrapStorage(err)
	}

	return wrapStorage(s.DB.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Event{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		// A concurrent delete may have won the race since the fetch above.
		// Reversing the score for a row this transaction did not remove
		// would drive it below the goals still on record.
		if result.RowsAffected == 0 {
			return models.ErrEventNotFound
		}
		if event.EventType != models.EventTypeGoal {
			return nil
		}
		var match models.Match
		switch err := tx.First(&match, "id = ?", event.MatchID).Error; {
		case errors.Is(err, gorm.ErrRecordNotFound):
			// match already gone; nothing to adjust
			return nil
		case err != nil:
			return err
		}
		// the event's own team decides which side loses the goal
		return reverseGoal(tx, &match, event.TeamID)
	}))
}

// --- HTTP endpoints ---

func (s *EventService) GetAllEvents(c *fiber.Ctx) error {
	q := s.DB.Order("created_at ASC")
	if matchID := c.Query("match_id"); matchID != "" {
		q = q.Where("match_id = ?", matchID)
	}
	var events []models.Event
	if err := q.Find(&events).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(events)
}

func (s *EventService) GetEventByID(c *fiber.Ctx) error {
	var event models.Event
	if err := s.DB.First(&event, "id = ?", c.Params("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "event not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(event)
}

func (s *EventService) CreateEvent(c *fiber.Ctx) error {
	var in EventInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	event, err := s.RecordEvent(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(event)
}

func (s *EventService) UpdateEvent(c *fiber.Ctx) error {
	var upd EventUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid JSON"})
	}
	event, err := s.UpdateEventFields(c.Params("id"), upd)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(event)
}

func (s *EventService) DeleteEvent(c *fiber.Ctx) error {
	if err := s.RemoveEvent(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "event deleted"})
}
