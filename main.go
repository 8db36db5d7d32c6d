package main

import (
	"app/config"
	"app/database"
	"app/middleware"
	"app/routes"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
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

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	config.AppConfig.DatabaseURL = databaseURL
	config.AppConfig.Port = port
	config.AppConfig.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	if config.AppConfig.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY is not set, AI insights disabled")
	}

	// Initialize database
	database.Connect(databaseURL)
	defer database.Close()

	app := fiber.New()

	// Add CORS middleware
	app.Use(cors.New())
	app.Use(middleware.RequestLogger)

	// Setup routes
	routes.SetupRoutes(app)

	// Start server
	log.Fatal(app.Listen(":" + port))
}
