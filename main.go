package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	v1 "github.com/travelprojects-api/api/v1"
	"github.com/travelprojects-api/config"
	"github.com/travelprojects-api/database"
	"github.com/travelprojects-api/lib/artic"
	"github.com/travelprojects-api/lib/cache"
	"github.com/travelprojects-api/repositories"
	"github.com/travelprojects-api/services"
)

func main() {
	// Load environment variables
	config.LoadEnv()

	// Initialize database connection and run migrations
	database.Initialize()

	// Artwork cache backed by redis
	artworkCache := cache.NewRedisCache(config.RedisAddr(), config.RedisPassword())

	// Art Institute of Chicago catalog client
	catalog := artic.NewClient(config.ArticAPIURL(), artworkCache)

	// Wire repositories and services
	projectRepo := repositories.NewProjectRepository()
	placeRepo := repositories.NewPlaceRepository()

	projectService := services.NewProjectService(projectRepo, catalog)
	placeService := services.NewPlaceService(projectRepo, placeRepo, catalog)
	artworkService := services.NewArtworkService(catalog)

	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register v1 API routes
	apiV1 := router.Group("/api/v1")
	v1.RegisterRoutes(apiV1, projectService, placeService, artworkService)

	port := config.Port()

	log.Printf("🚀 Travel Projects API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
