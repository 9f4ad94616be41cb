package services

import (
	"errors"
	"fmt"

	"football-match-tracker/models"

	"github.com/gofiber/fiber/v2"
)

// respondError maps service error kinds onto HTTP status codes. Storage
// failures surface as 500 so the caller knows it may retry.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, models.ErrMatchNotFound),
		errors.Is(err, models.ErrTeamNotFound),
		errors.Is(err, models.ErrPlayerNotFound),
		errors.Is(err, models.ErrEventNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrNoFields),
		errors.Is(err, models.ErrPlayerTeamMismatch),
		errors.Is(err, models.ErrTeamNotInMatch):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}

// wrapStorage tags an unexpected database error as models.ErrStorage. Errors
// already in the taxonomy pass through untouched, so it can wrap a whole
// transaction whose body returns taxonomy errors of its own.
func wrapStorage(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, models.ErrValidation),
		errors.Is(err, models.ErrNoFields),
		errors.Is(err, models.ErrTeamNotFound),
		errors.Is(err, models.ErrPlayerNotFound),
		errors.Is(err, models.ErrMatchNotFound),
		errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrPlayerTeamMismatch),
		errors.Is(err, models.ErrTeamNotInMatch),
		errors.Is(err, models.ErrScoreInconsistency):
		return err
	default:
		return fmt.Errorf("%w: %v", models.ErrStorage, err)
	}
}
