package handlers

import (
	"football-match-tracker/services"

	"github.com/gofiber/fiber/v2"
)

func SetupEventRoutes(app *fiber.App, eventService *services.EventService) {
	app.Get("/events", eventService.GetAllEvents)
	app.Get("/events/:id", eventService.GetEventByID)
	app.Post("/events", eventService.CreateEvent)
	app.Put("/events/:id", eventService.UpdateEvent)
	app.Delete("/events/:id", eventService.DeleteEvent)
}
