package routes

import (
	"github.com/franciscosanchezn/gin-vehicle-api/internal/controllers"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/middleware"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies holds everything the routes dispatch to
type Dependencies struct {
	Tokens         middleware.TokenParser
	Administrators controllers.AdministratorController
	Vehicles       controllers.VehicleController
}

// NewRouter creates a gin engine with the request logger, recovery and every route registered
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestLogger(), gin.Recovery())
	SetupRoutes(router, deps)
	return router
}

// SetupRoutes defines the routes for the Gin router
func SetupRoutes(router *gin.Engine, deps Dependencies) {
	// Anonymous routes
	router.GET("/", controllers.Home)
	router.GET("/health", controllers.HealthCheck)
	router.POST("/administradores/login", deps.Administrators.Login)

	// Every other route requires a valid bearer token
	protected := router.Group("/")
	protected.Use(middleware.JWTAuth(deps.Tokens))

	adminOnly := middleware.RequireRole(models.RoleAdmin)
	adminOrEditor := middleware.RequireRole(models.RoleAdmin, models.RoleEditor)

	administrators := protected.Group("/administradores")
	administrators.Use(adminOnly)
	{
		administrators.POST("", deps.Administrators.CreateAdministrator)
		administrators.GET("", deps.Administrators.ListAdministrators)
		administrators.GET("/:id", deps.Administrators.GetAdministratorByID)
	}

	vehicles := protected.Group("/veiculos")
	{
		vehicles.POST("", adminOrEditor, deps.Vehicles.CreateVehicle)
		vehicles.GET("", adminOrEditor, deps.Vehicles.ListVehicles)
		vehicles.GET("/:id", adminOrEditor, deps.Vehicles.GetVehicleByID)
		vehicles.PUT("/:id", adminOnly, deps.Vehicles.UpdateVehicle)
		vehicles.DELETE("/:id", adminOnly, deps.Vehicles.DeleteVehicle)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
