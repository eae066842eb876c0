package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jumptake/backend/models"
)

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func HealthCheck(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, models.HealthResponse{
			Status:  "healthy",
			Service: "jumptake-backend",
			Version: version,
		})
	}
}
