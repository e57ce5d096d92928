package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/auth"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/services"
	"github.com/gin-gonic/gin"
)

// AdministratorController handles HTTP requests related to administrators
type AdministratorController interface {
	// Login exchanges credentials for a bearer token
	Login(c *gin.Context)
	// CreateAdministrator registers a new administrator
	CreateAdministrator(c *gin.Context)
	// ListAdministrators retrieves one page of administrators
	ListAdministrators(c *gin.Context)
	// GetAdministratorByID retrieves an administrator by its ID
	GetAdministratorByID(c *gin.Context)
}

type administratorController struct {
	service services.AdministratorService
	tokens  *auth.TokenService
}

// NewAdministratorController creates a new instance of AdministratorController
func NewAdministratorController(service services.AdministratorService, tokens *auth.TokenService) AdministratorController {
	return &administratorController{service: service, tokens: tokens}
}

// Login godoc
// @Summary Administrator login
// @Description Validate credentials and issue a bearer token valid for 24 hours
// @Tags Administradores
// @Accept json
// @Produce json
// @Param credentials body models.LoginDTO true "Login credentials"
// @Success 200 {object} models.LoggedAdministrator
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Router /administradores/login [post]
func (c *administratorController) Login(ctx *gin.Context) {
	var credentials models.LoginDTO
	if err := ctx.ShouldBindJSON(&credentials); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	admin, err := c.service.Login(ctx.Request.Context(), credentials)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrInvalidCredentials, "Invalid email or password"))
			return
		}
		respondError(ctx, err, models.ErrAdministratorNotFound, "Administrator not found")
		return
	}

	token, err := c.tokens.Issue(*admin)
	if err != nil {
		log.WithError(err).Error("Could not generate token")
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Could not generate token"))
		return
	}

	ctx.JSON(http.StatusOK, models.LoggedAdministrator{
		Email: admin.Email,
		Role:  admin.Role,
		Token: token,
	})
}

// CreateAdministrator godoc
// @Summary Create an administrator
// @Description Register a new administrator. Requires the Admin role.
// @Tags Administradores
// @Accept json
// @Produce json
// @Param administrator body models.AdministratorDTO true "Administrator"
// @Success 201 {object} models.AdministratorView
// @Failure 400 {object} models.ValidationErrors
// @Failure 401 {object} models.BearerError
// @Failure 403 {object} models.APIError
// @Security BearerAuth
// @Router /administradores [post]
func (c *administratorController) CreateAdministrator(ctx *gin.Context) {
	var dto models.AdministratorDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	admin, err := c.service.Create(ctx.Request.Context(), dto)
	if err != nil {
		respondError(ctx, err, models.ErrAdministratorNotFound, "Administrator not found")
		return
	}

	ctx.Header("Location", fmt.Sprintf("/administradores/%d", admin.ID))
	ctx.JSON(http.StatusCreated, models.NewAdministratorView(*admin))
}

// ListAdministrators godoc
// @Summary List administrators
// @Description Get one page of administrators. Requires the Admin role.
// @Tags Administradores
// @Produce json
// @Param page query int false "1-based page number"
// @Success 200 {array} models.AdministratorView
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /administradores [get]
func (c *administratorController) ListAdministrators(ctx *gin.Context) {
	page, ok := parsePage(ctx)
	if !ok {
		return
	}

	admins, err := c.service.ListPage(ctx.Request.Context(), page)
	if err != nil {
		respondError(ctx, err, models.ErrAdministratorNotFound, "Administrator not found")
		return
	}

	views := make([]models.AdministratorView, 0, len(admins))
	for _, admin := range admins {
		views = append(views, models.NewAdministratorView(admin))
	}
	ctx.JSON(http.StatusOK, views)
}

// GetAdministratorByID godoc
// @Summary Get administrator by ID
// @Description Get a single administrator. Requires the Admin role.
// @Tags Administradores
// @Produce json
// @Param id path int true "Administrator ID"
// @Success 200 {object} models.AdministratorView
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /administradores/{id} [get]
func (c *administratorController) GetAdministratorByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	admin, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, err, models.ErrAdministratorNotFound, "Administrator not found")
		return
	}
	ctx.JSON(http.StatusOK, models.NewAdministratorView(*admin))
}
