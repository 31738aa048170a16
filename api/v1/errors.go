package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/travelprojects-api/lib/artic"
	"github.com/travelprojects-api/services"
)

// respondError maps service-layer errors to HTTP responses
func respondError(ctx *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"status": "error",
			"errors": validationErr.Fields,
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrProjectNotFound), errors.Is(err, services.ErrPlaceNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	case errors.Is(err, services.ErrProjectHasVisitedPlaces):
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":  "Cannot delete project with visited places",
			"detail": "A project cannot be deleted if any of its places are marked as visited",
		})
	case errors.Is(err, artic.ErrUnavailable):
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "error",
			"message": "Art catalog is currently unavailable",
		})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
	}
}
