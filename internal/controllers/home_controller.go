package controllers

import (
	"net/http"
	"time"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/gin-gonic/gin"
)

// Home godoc
// @Summary API home
// @Description Welcome message and documentation link
// @Tags Home
// @Produce json
// @Success 200 {object} models.Home
// @Router / [get]
func Home(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, models.NewHome())
}

// HealthCheck godoc
// @Summary Health check
// @Description Check if the service is running
// @Tags Home
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "gin-vehicle-api",
	})
}
