package main

import (
	"fmt"
	"log"
	"os"

	"risk-reward/internal/api/handlers"
	"risk-reward/internal/api/middleware"
	"risk-reward/internal/config"
	"risk-reward/internal/web"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment, optionally overridden by a
	// YAML config file.
	port := os.Getenv("API_PORT")
	var cfg *config.Config
	if path := os.Getenv("API_CONFIG"); path != "" {
		c, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = c
		if cfg.Server.Port != "" {
			port = cfg.Server.Port
		}
		if cfg.PresetDir != "" && os.Getenv("PRESET_DIR") == "" {
			os.Setenv("PRESET_DIR", cfg.PresetDir)
		}
	}
	if port == "" {
		port = "8080"
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	calculateHandler := handlers.NewCalculateHandler()
	presetHandler := handlers.NewPresetHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// The calculator form itself
	router.GET("/", func(c *gin.Context) {
		c.Data(200, "text/html; charset=utf-8", []byte(web.FormPage))
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/calculate", calculateHandler.RunCalculation)
		api.GET("/presets", presetHandler.ListPresets)
	}

	// Serve extra static assets if a directory is configured
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" && cfg != nil {
		staticDir = cfg.Server.StaticDir
	}
	if staticDir != "" {
		if _, err := os.Stat(staticDir); err == nil {
			router.Static("/assets", staticDir)
			log.Printf("Serving static files from %s", staticDir)
		} else {
			log.Printf("Static directory %s not found, skipping static file serving", staticDir)
		}
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
