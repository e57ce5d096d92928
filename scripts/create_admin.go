package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/config"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/database"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/services"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/store"
	"github.com/joho/godotenv"
)

var errNotCreated = errors.New("administrator not created")

func main() {
	_ = godotenv.Load()
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run creates one administrator in the configured database and prints how to log in with it
func run(args []string, out io.Writer) error {
	// Parse command line flags
	flags := flag.NewFlagSet("create_admin", flag.ContinueOnError)
	flags.SetOutput(out)
	email := flags.String("email", "", "Administrator email")
	password := flags.String("password", "", "Administrator password")
	role := flags.String("role", "Editor", "Administrator role (Admin or Editor)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	conf, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if conf.DBDriver == "memory" {
		return errors.New("DB_DRIVER=memory has nothing to persist to")
	}

	db, err := database.InitDatabase(database.NewDatabaseConfig(conf))
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := database.Migrate(db); err != nil {
		return err
	}

	service := services.NewAdministratorService(store.NewGormStore[models.Administrator](db), conf.PageSize)
	admin, err := service.Create(context.Background(), models.AdministratorDTO{
		Email:    *email,
		Password: *password,
		Role:     *role,
	})
	var validation *models.ValidationErrors
	if errors.As(err, &validation) {
		for _, msg := range validation.Messages {
			fmt.Fprintln(out, "  -", msg)
		}
		return errNotCreated
	}
	if err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}

	fmt.Fprintf(out, "✓ Administrator created (ID: %d, Email: %s, Role: %s)\n", admin.ID, admin.Email, admin.Role)
	fmt.Fprintln(out, "\nLog in with:")
	fmt.Fprintf(out, "curl -X POST http://%s:%d/administradores/login \\\n", conf.Host, conf.Port)
	fmt.Fprintf(out, "  -H 'Content-Type: application/json' \\\n")
	fmt.Fprintf(out, "  -d '{\"email\":\"%s\",\"password\":\"<password>\"}'\n", admin.Email)
	return nil
}
