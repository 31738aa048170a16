package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/travelprojects-api/services"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(
	router *gin.RouterGroup,
	projectService *services.ProjectService,
	placeService *services.PlaceService,
	artworkService *services.ArtworkService,
) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	projectController := NewProjectController(projectService)
	projectController.RegisterRoutes(router)

	placeController := NewPlaceController(placeService)
	placeController.RegisterRoutes(router)

	artworkController := NewArtworkController(artworkService)
	artworkController.RegisterRoutes(router)
}
