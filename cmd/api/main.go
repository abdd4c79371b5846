package main

import (
	"log"
	"time"

	"github.com/synth-sarmi/synthsurvey-back/internal/infrastructure/config"
	"github.com/synth-sarmi/synthsurvey-back/internal/infrastructure/database"
	"github.com/synth-sarmi/synthsurvey-back/internal/interfaces/http/middleware"
	"github.com/synth-sarmi/synthsurvey-back/internal/interfaces/http/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg := config.Load()

	// Initialize database
	db, err := database.SetupDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Error setting up database: %v", err)
	}

	// Configure Fiber for better performance
	app := fiber.New(fiber.Config{
		Concurrency: 256 * 1024,
		// Prefork desabilitado: causa instabilidade no container
		Prefork:      false,
		BodyLimit:    10 * 1024 * 1024, // 10MB
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	// Setup middleware
	middleware.SetupMiddlewares(app, cfg)
	app.Use(middleware.PerformanceLogger())

	// Setup routes
	routes.SetupRoutes(app, db, cfg)

	// Start server
	log.Printf("🚀 Server is running on port %s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}
