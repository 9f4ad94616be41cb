package handlers

import (
	"football-match-tracker/services"

	"github.com/gofiber/fiber/v2"
)

func SetupPlayerRoutes(app *fiber.App, playerService *services.PlayerService) {
	app.Get("/players", playerService.GetAllPlayers)
	app.Get("/players/:id", playerService.GetPlayerByID)
	app.Post("/players", playerService.CreatePlayer)
	app.Put("/players/:id", playerService.UpdatePlayer)
	app.Delete("/players/:id", playerService.DeletePlayer)
}
