package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/travelprojects-api/services"
)

// ArtworkController proxies free-text search to the external art catalog
type ArtworkController struct {
	artworkService *services.ArtworkService
}

// NewArtworkController creates a new artwork controller
func NewArtworkController(artworkService *services.ArtworkService) *ArtworkController {
	return &ArtworkController{artworkService: artworkService}
}

// RegisterRoutes registers artwork routes
func (c *ArtworkController) RegisterRoutes(router *gin.RouterGroup) {
	artworks := router.Group("/artworks")
	{
		artworks.GET("/search", c.Search)
	}
}

// Search forwards a free-text query to the catalog search endpoint
func (c *ArtworkController) Search(ctx *gin.Context) {
	limit, err := strconv.Atoi(ctx.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}

	result, err := c.artworkService.Search(ctx.Request.Context(), ctx.Query("q"), limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}
