package main

import (
	"context"
	"fmt"

	_ "github.com/franciscosanchezn/gin-vehicle-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-vehicle-api/internal/auth"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/config"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/controllers"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/database"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/middleware"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/routes"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/services"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

var configuration *config.Config

// @title Vehicle API
// @version 1.0
// @description Administrators and vehicles registry with bearer token authentication
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()
	setModuleLogLevels(configuration.LogrusLevel())

	// Initialize persistence
	administratorStore, vehicleStore := setupStores(configuration)

	// Initialize services and controllers
	tokens, err := auth.NewTokenService(configuration.JWTSecret, configuration.TokenTTL)
	checkPanicErr(err)

	administratorService := services.NewAdministratorService(administratorStore, configuration.PageSize)
	vehicleService := services.NewVehicleService(vehicleStore, configuration.PageSize)

	// Create the default administrator on an empty database
	err = administratorService.EnsureSeed(context.Background(), configuration.SeedAdminEmail, configuration.SeedAdminPassword)
	checkPanicErr(err)

	if configuration.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := routes.NewRouter(routes.Dependencies{
		Tokens:         tokens,
		Administrators: controllers.NewAdministratorController(administratorService, tokens),
		Vehicles:       controllers.NewVehicleController(vehicleService),
	})

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	checkPanicErr(router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetLevel(config.EnvironmentLogLevel(config.GetEnvWithDefault("APP_ENV", "development")))
}

// setModuleLogLevels applies the configured level to every package logger
func setModuleLogLevels(level log.Level) {
	log.SetLevel(level)
	controllers.SetLogLevel(level)
	database.SetLogLevel(level)
	middleware.SetLogLevel(level)
	services.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupStores opens the configured database and returns the administrator and vehicle stores.
// DB_DRIVER=memory keeps everything in process.
func setupStores(conf *config.Config) (store.Store[models.Administrator], store.Store[models.Vehicle]) {
	if conf.DBDriver == "memory" {
		log.Warn("Using in-memory stores, data is lost on restart")
		return store.NewMemoryStore[models.Administrator](), store.NewMemoryStore[models.Vehicle]()
	}

	db, err := database.InitDatabase(database.NewDatabaseConfig(conf))
	checkPanicErr(err)
	checkPanicErr(database.Migrate(db))

	return store.NewGormStore[models.Administrator](db), store.NewGormStore[models.Vehicle](db)
}
