package database

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/config"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Canonical driver names
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, mysql, sqlite)
	Driver string

	// Network configuration shared by PostgreSQL and MySQL
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	// SSLMode only applies to PostgreSQL
	SSLMode string

	// SQLite file, ":memory:" for a private in-memory database
	Path string
}

// NewDatabaseConfig extracts the database settings of the application configuration
func NewDatabaseConfig(conf *config.Config) DatabaseConfig {
	return DatabaseConfig{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.DBPath,
	}
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// NormalizedDriver maps driver aliases to their canonical name; empty is SQLite
func (c *DatabaseConfig) NormalizedDriver() string {
	driver := strings.ToLower(strings.TrimSpace(c.Driver))
	switch driver {
	case "", "sqlite3":
		return DriverSQLite
	case "postgresql", "pg":
		return DriverPostgres
	case "mariadb":
		return DriverMySQL
	default:
		return driver
	}
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.NormalizedDriver() {
	case DriverPostgres:
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
	case DriverMySQL:
		return c.mysqlConfig().FormatDSN()
	case DriverSQLite:
		return c.Path
	default:
		return ""
	}
}

// mysqlConfig mirrors the connection string of the original MySQL deployment:
// utf8mb4, parsed DATETIME columns and local timestamps
func (c *DatabaseConfig) mysqlConfig() *mysqldriver.Config {
	cfg := mysqldriver.NewConfig()
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, c.Port)
	cfg.DBName = c.Name
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg
}

// Dialector returns the gorm dialector of the configured driver
func (c *DatabaseConfig) Dialector() (gorm.Dialector, error) {
	switch c.NormalizedDriver() {
	case DriverPostgres:
		log.WithField("dsn_host", c.Host).Debug("Connecting to PostgreSQL")
		return postgres.Open(c.DSN()), nil
	case DriverMySQL:
		log.WithField("dsn_host", c.Host).Debug("Connecting to MySQL")
		return mysql.Open(c.DSN()), nil
	case DriverSQLite:
		log.WithField("db_path", c.Path).Debug("Connecting to SQLite")
		return sqlite.Open(c.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, mysql, sqlite)", c.Driver)
	}
}
