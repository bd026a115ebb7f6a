package main

import (
	"app/config"
	"app/database"
	"app/handlers"
	"app/routes"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	// Load configuration
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	// Set up the application configuration. Operator credentials and the
	// Gemini key are optional; the handlers degrade when they are absent.
	config.AppConfig.JWTSecret = jwtSecret
	config.AppConfig.OperatorEmail = os.Getenv("OPERATOR_EMAIL")
	config.AppConfig.OperatorPasswordHash = os.Getenv("OPERATOR_PASSWORD_HASH")
	config.AppConfig.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")

	// Initialize database
	database.InitDB(databaseURL)
	defer database.CloseDB()

	// Wire the dashboard controllers
	handlers.InitDashboards()

	app := fiber.New()

	// Add CORS and panic-recovery middleware
	app.Use(cors.New())
	app.Use(recover.New())

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":3000"))
}
