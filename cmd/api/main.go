package main

import (
	"fmt"
	"log"
	"time"

	"rhea-feedback-api/config"
	"rhea-feedback-api/handlers"
	"rhea-feedback-api/middleware"
	"rhea-feedback-api/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.GetDSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get sql db handle: %v", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	// Connect to Redis; a failure degrades to uncached fetches
	cache, err := services.NewCacheService(cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, running without fetch cache: %v", err)
	}

	authService := services.NewAuthService(cfg.Auth, cfg.JWT)
	cleaner := services.NewCleaner()
	predictionService := services.NewPredictionService(db, cache,
		time.Duration(cfg.Cache.TTLSeconds)*time.Second)
	feedbackService := services.NewFeedbackService(db)

	authHandler := handlers.NewAuthHandler(authService)
	summaryHandler := handlers.NewSummaryHandler(predictionService, cleaner)
	feedbackHandler := handlers.NewFeedbackHandler(predictionService, cleaner, feedbackService)

	// Initialize Gin router
	router := gin.Default()
	router.Use(middleware.SetupCORS(cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "UP",
			"message": "Rhea Feedback API is running",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api/v1")
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth(authService))
	protected.POST("/auth/logout", authHandler.Logout)
	protected.GET("/summary", summaryHandler.GetSummary)
	protected.GET("/feedback", feedbackHandler.GetGrid)
	protected.POST("/feedback", feedbackHandler.Submit)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Starting server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
