package main

import (
	"log"
	"os"
	"time"

	"football-match-tracker/handlers"
	"football-match-tracker/models"
	"football-match-tracker/services"
	"football-match-tracker/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading environment variables directly")
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect to database:", err)
	}

	if err := db.AutoMigrate(
		&models.Team{},
		&models.Player{},
		&models.Match{},
		&models.Event{},
	); err != nil {
		log.Fatal("failed to migrate database:", err)
	}

	if err := utils.InitR2(); err != nil {
		log.Println("⚠️  Crest storage disabled:", err)
	}

	app := fiber.New()

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	if allowedOrigins == "" {
		allowedOrigins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	teamService := services.NewTeamService(db)
	playerService := services.NewPlayerService(db)
	matchService := services.NewMatchService(db)
	eventService := services.NewEventService(db)

	handlers.SetupTeamRoutes(app, teamService)
	handlers.SetupPlayerRoutes(app, playerService)
	handlers.SetupMatchRoutes(app, matchService)
	handlers.SetupEventRoutes(app, eventService)

	matchService.StartScoreAuditScheduler(10 * time.Minute)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("✅ Server running on http://localhost:%s", port)
	log.Println("✅ Score audit running (every 10m)")
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("server error:", err)
	}
}
