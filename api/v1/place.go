package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/travelprojects-api/dto"
	"github.com/travelprojects-api/services"
)

// PlaceController handles the place sub-resource endpoints nested under a
// project id
type PlaceController struct {
	placeService *services.PlaceService
}

// NewPlaceController creates a new place controller
func NewPlaceController(placeService *services.PlaceService) *PlaceController {
	return &PlaceController{placeService: placeService}
}

// RegisterRoutes registers place routes under /projects/:id
func (c *PlaceController) RegisterRoutes(router *gin.RouterGroup) {
	places := router.Group("/projects/:id/places")
	{
		places.GET("", c.ListPlaces)
		places.POST("/add", c.AddPlace)
		places.GET("/:placeId", c.GetPlace)
		places.PATCH("/:placeId/update", c.UpdatePlace)
		places.PUT("/:placeId/update", c.UpdatePlace)
	}
}

// ListPlaces returns the places of a project in creation order
func (c *PlaceController) ListPlaces(ctx *gin.Context) {
	places, err := c.placeService.ListPlaces(ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, places)
}

// AddPlace attaches an artwork from the catalog to an existing project
func (c *PlaceController) AddPlace(ctx *gin.Context) {
	var req dto.CreatePlaceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	place, err := c.placeService.AddPlace(ctx.Request.Context(), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, place)
}

// GetPlace returns a single place of a project
func (c *PlaceController) GetPlace(ctx *gin.Context) {
	place, err := c.placeService.GetPlace(ctx.Param("id"), ctx.Param("placeId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, place)
}

// UpdatePlace updates the notes or visited flag of a place
func (c *PlaceController) UpdatePlace(ctx *gin.Context) {
	var req dto.UpdatePlaceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	place, err := c.placeService.UpdatePlace(ctx.Param("id"), ctx.Param("placeId"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, place)
}
