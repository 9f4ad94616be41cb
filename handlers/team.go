package handlers

import (
	"football-match-tracker/services"

	"github.com/gofiber/fiber/v2"
)

func SetupTeamRoutes(app *fiber.App, teamService *services.TeamService) {
	app.Get("/teams", teamService.GetAllTeams)
	app.Get("/teams/slug/:slug", teamService.GetTeamBySlug)
	app.Get("/teams/:id", teamService.GetTeamByID)
	app.Post("/teams", teamService.CreateTeam)
	app.Put("/teams/:id", teamService.UpdateTeam)
	app.Delete("/teams/:id", teamService.DeleteTeam)
	app.Post("/teams/:id/crest", teamService.UploadCrest)
}
