package handlers

import (
	"football-match-tracker/services"

	"github.com/gofiber/fiber/v2"
)

func SetupMatchRoutes(app *fiber.App, matchService *services.MatchService) {
	app.Get("/matches", matchService.GetAllMatches)
	app.Get("/matches/:id", matchService.GetMatchByID)
	app.Post("/matches", matchService.CreateMatch)
	app.Put("/matches/:id", matchService.UpdateMatch)
	app.Delete("/matches/:id", matchService.DeleteMatch)

	// Repair endpoint: recount goals from the event ledger
	app.Post("/matches/:id/recompute", matchService.RecomputeMatchScore)
}
