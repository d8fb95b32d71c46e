package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"skillswap-api/config"
	"skillswap-api/database"
	"skillswap-api/middleware"
	"skillswap-api/routes"
	"skillswap-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with starter data (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	emailService := services.NewEmailService(cfg)

	// Create router
	router := gin.Default()

	router.Use(middleware.SetupCORS())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RateLimit(120, 20))

	// Recovery middleware
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, cfg.JWTSecret, emailService)

	// Start server
	log.Printf("Starting SkillSwap API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
