package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/showhub/showhub-go/internal/cache"
	"github.com/showhub/showhub-go/internal/config"
	"github.com/showhub/showhub-go/internal/database"
	"github.com/showhub/showhub-go/internal/services/trivia"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Optional redis cache for the category list
	var cacheClient *cache.Client
	if cfg.RedisEnabled {
		cacheClient = cache.NewClient(cfg)
		if err := cacheClient.Ping(context.Background()); err != nil {
			log.Fatal("Failed to connect to Redis:", err)
		}
	}

	// Create service
	triviaService := trivia.NewService(db, cacheClient, cfg)

	// Setup Gin router
	r := gin.Default()

	// Add CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Setup routes
	triviaService.SetupRoutes(r)

	// Start server
	log.Printf("Trivia Service starting on port %s", cfg.TriviaServicePort)
	if err := r.Run(":" + cfg.TriviaServicePort); err != nil {
		log.Fatal("Failed to start Trivia Service:", err)
	}
}
