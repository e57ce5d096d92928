package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel changes the level of the controllers logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// parseID reads the "id" path parameter, answering 400 when it is not a positive integer
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidID, "Invalid ID format"))
		return 0, false
	}
	return uint(id), true
}

// parsePage reads the optional "page" query parameter; a missing page is the first one
func parsePage(ctx *gin.Context) (int, bool) {
	raw := ctx.Query("page")
	if raw == "" {
		return 1, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidPage, "Invalid page format"))
		return 0, false
	}
	return page, true
}

// respondError maps service errors to HTTP responses
func respondError(ctx *gin.Context, err error, notFoundCode, notFoundMessage string) {
	var validation *models.ValidationErrors
	switch {
	case errors.As(err, &validation):
		ctx.JSON(http.StatusBadRequest, validation)
	case errors.Is(err, store.ErrNotFound):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(notFoundCode, notFoundMessage))
	default:
		log.WithError(err).WithField("path", ctx.FullPath()).Error("Unhandled service error")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}
