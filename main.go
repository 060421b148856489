package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"restaurant-api/config"
	"restaurant-api/gateway"
	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/routes"
	"restaurant-api/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	tokens := middleware.NewTokenService(cfg.JWTSecret)
	stripeGateway := gateway.NewStripe(cfg.StripeSecret)
	h := handlers.New(db, tokens, stripeGateway)
	guard := middleware.NewGuard(tokens, h.AdminCheck())

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Ordering API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "welcome to the restaurant ordering server",
			"health":  "/health",
		})
	})

	// Register all routes
	routes.Setup(r, h, guard, cfg)

	// Start server
	log.Printf("server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
