package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck returns basic service liveness information
func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "travelprojects-api",
	})
}
