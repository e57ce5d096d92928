package controllers

import (
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/services"
	"github.com/gin-gonic/gin"
)

// VehicleController handles HTTP requests related to vehicles
type VehicleController interface {
	// CreateVehicle creates a new vehicle
	CreateVehicle(c *gin.Context)
	// ListVehicles retrieves one page of vehicles
	ListVehicles(c *gin.Context)
	// GetVehicleByID retrieves a vehicle by its ID
	GetVehicleByID(c *gin.Context)
	// UpdateVehicle replaces an existing vehicle
	UpdateVehicle(c *gin.Context)
	// DeleteVehicle deletes a vehicle by its ID
	DeleteVehicle(c *gin.Context)
}

type vehicleController struct {
	service services.VehicleService
}

// NewVehicleController creates a new instance of VehicleController
func NewVehicleController(service services.VehicleService) VehicleController {
	return &vehicleController{service: service}
}

// CreateVehicle godoc
// @Summary Create a vehicle
// @Description Create a new vehicle. Requires the Admin or Editor role.
// @Tags Veiculos
// @Accept json
// @Produce json
// @Param vehicle body models.VehicleDTO true "Vehicle"
// @Success 201 {object} models.Vehicle
// @Failure 400 {object} models.ValidationErrors
// @Security BearerAuth
// @Router /veiculos [post]
func (c *vehicleController) CreateVehicle(ctx *gin.Context) {
	var dto models.VehicleDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	vehicle, err := c.service.Create(ctx.Request.Context(), dto)
	if err != nil {
		respondError(ctx, err, models.ErrVehicleNotFound, "Vehicle not found")
		return
	}

	ctx.Header("Location", fmt.Sprintf("/veiculos/%d", vehicle.ID))
	ctx.JSON(http.StatusCreated, vehicle)
}

// ListVehicles godoc
// @Summary List vehicles
// @Description Get one page of vehicles with optional filtering. Requires the Admin or Editor role.
// @Tags Veiculos
// @Produce json
// @Param page query int false "1-based page number"
// @Param name query string false "Filter by vehicle name (partial match)"
// @Param brand query string false "Filter by brand (partial match)"
// @Success 200 {array} models.Vehicle
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /veiculos [get]
func (c *vehicleController) ListVehicles(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}

	query := services.VehicleQuery{
		Name:  ctx.Query("name"),
		Brand: ctx.Query("brand"),
	}
	vehicles, err := c.service.ListPage(ctx.Request.Context(), page, query)
	if err != nil {
		respondError(ctx, err, models.ErrVehicleNotFound, "Vehicle not found")
		return
	}
	ctx.JSON(http.StatusOK, vehicles)
}

// GetVehicleByID godoc
// @Summary Get vehicle by ID
// @Description Get a single vehicle. Requires the Admin or Editor role.
// @Tags Veiculos
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} models.Vehicle
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /veiculos/{id} [get]
func (c *vehicleController) GetVehicleByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	vehicle, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrVehicleNotFound, "Vehicle not found")
		return
	}
	ctx.JSON(http.StatusOK, vehicle)
}

// UpdateVehicle godoc
// @Summary Update a vehicle
// @Description Replace name, brand and year of a vehicle. Requires the Admin role.
// @Tags Veiculos
// @Accept json
// @Produce json
// @Param id path int true "Vehicle ID"
// @Param vehicle body models.VehicleDTO true "Vehicle"
// @Success 200 {object} models.Vehicle
// @Failure 400 {object} models.ValidationErrors
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /veiculos/{id} [put]
func (c *vehicleController) UpdateVehicle(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var dto models.VehicleDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	vehicle, err := c.service.Update(ctx.Request.Context(), id, dto)
	if err != nil {
		respondError(ctx, err, models.ErrVehicleNotFound, "Vehicle not found")
		return
	}
	ctx.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle godoc
// @Summary Delete a vehicle
// @Description Delete a vehicle by its ID. Requires the Admin role.
// @Tags Veiculos
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 204
// @Failure 400 {object} models.APIError
// @Failure 403 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /veiculos/{id} [delete]
func (c *vehicleController) DeleteVehicle(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	if err := c.service.Delete(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err, models.ErrVehicleNotFound, "Vehicle not found")
		return
	}
	ctx.Status(http.StatusNoContent)
}
