package main

import (
	"log"

	"canopy/internal/api"
	"canopy/internal/auth"
	"canopy/internal/config"
	"canopy/internal/db"
	"canopy/internal/router"
	"canopy/internal/slur"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	cfg := config.Load()

	// Initialize Database
	conn, err := db.Init(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 所有依赖显式注入，处理器本身无状态
	ctx := &api.Context{
		DB:       conn,
		Config:   cfg,
		Verifier: auth.NewVerifier(cfg.JWTSecret),
		Slurs:    slur.NewFilter(cfg.BannedTerms),
	}

	// Initialize Gin
	r := gin.Default()
	router.RegisterRoutes(r, ctx)

	log.Printf("Canopy server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
