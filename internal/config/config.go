package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(EnvironmentLogLevel(GetEnvWithDefault("APP_ENV", "development")))
}

// EnvironmentLogLevel returns the default log level of an APP_ENV value
func EnvironmentLogLevel(environment string) logrus.Level {
	switch environment {
	case "development":
		return logrus.DebugLevel
	case "production":
		return logrus.ErrorLevel
	default:
		// Default to info level for other environments
		return logrus.InfoLevel
	}
}

// Supported values of DB_DRIVER
var supportedDrivers = []string{"sqlite", "postgres", "mysql", "memory"}

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	DBDriver   string `json:"db_driver"`
	DBHost     string `json:"db_host"`
	DBPort     string `json:"db_port"`
	DBName     string `json:"db_name"`
	DBUser     string `json:"db_user"`
	DBPassword string `json:"db_password"`
	DBSSLMode  string `json:"db_sslmode"`
	DBPath     string `json:"db_path"`

	// Logging configuration, empty means the APP_ENV default
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret string        `json:"jwt_secret"`
	TokenTTL  time.Duration `json:"token_ttl"`

	// Listing configuration
	PageSize int `json:"page_size"`

	// Default administrator created on an empty database
	SeedAdminEmail    string `json:"seed_admin_email"`
	SeedAdminPassword string `json:"seed_admin_password"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, LogLevel: %s, JWTSecret: [REDACTED], TokenTTL: %s, PageSize: %d, SeedAdminEmail: %s, SeedAdminPassword: [REDACTED]}",
		c.Environment, c.Port, c.Host, c.DBDriver, c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPath, c.LogLevel, c.TokenTTL, c.PageSize, c.SeedAdminEmail)
}

// LogrusLevel returns LogLevel when set, otherwise the level of the environment
func (c *Config) LogrusLevel() logrus.Level {
	if c.LogLevel == "" {
		return EnvironmentLogLevel(c.Environment)
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		log.Warnf("Invalid LOG_LEVEL %q, using the %s default", c.LogLevel, c.Environment)
		return EnvironmentLogLevel(c.Environment)
	}
	return level
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// Returns an error if any environment variable is present but invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	driver := strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite"))
	if !isSupportedDriver(driver) {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (supported: %s)", driver, strings.Join(supportedDrivers, ", "))
	}

	pageSize := GetEnvAsType("PAGE_SIZE", 10)
	if pageSize <= 0 {
		return nil, errors.New("PAGE_SIZE must be positive")
	}

	ttlHours := GetEnvAsType("JWT_TTL_HOURS", 24)
	if ttlHours <= 0 {
		return nil, errors.New("JWT_TTL_HOURS must be positive")
	}

	jwtSecret := GetEnvWithDefault("JWT_SECRET", "secret")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET must not be empty")
	}

	config := &Config{
		Environment:       GetEnvWithDefault("APP_ENV", "development"),
		Port:              port,
		Host:              GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:          driver,
		DBHost:            GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:            GetEnvWithDefault("DB_PORT", defaultDBPort(driver)),
		DBName:            GetEnvWithDefault("DB_NAME", "minimal_api"),
		DBUser:            GetEnvWithDefault("DB_USER", "user"),
		DBPassword:        GetEnvWithDefault("DB_PASSWORD", "password"),
		DBSSLMode:         GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:            GetEnvWithDefault("DB_PATH", "vehicles.sqlite"),
		LogLevel:          GetEnvWithDefault("LOG_LEVEL", ""),
		JWTSecret:         jwtSecret,
		TokenTTL:          time.Duration(ttlHours) * time.Hour,
		PageSize:          pageSize,
		SeedAdminEmail:    GetEnvWithDefault("SEED_ADMIN_EMAIL", "administrador@teste.com"),
		SeedAdminPassword: GetEnvWithDefault("SEED_ADMIN_PASSWORD", "123456"),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

func isSupportedDriver(driver string) bool {
	for _, d := range supportedDrivers {
		if d == driver {
			return true
		}
	}
	return false
}

func defaultDBPort(driver string) string {
	switch driver {
	case "postgres":
		return "5432"
	case "mysql":
		return "3306"
	default:
		return ""
	}
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			log.Warnf("Environment variable %s is not an integer, using default value", key)
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			log.Warnf("Environment variable %s is not a boolean, using default value", key)
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
