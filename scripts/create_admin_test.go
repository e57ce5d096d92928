package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/database"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useSQLiteFile points the configuration at a fresh database file
func useSQLiteFile(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "admins.sqlite")
	t.Setenv("APP_ENV", "test")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)
	return path
}

func storedAdministrators(t *testing.T, path string) []models.Administrator {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: path})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()

	admins, err := store.NewGormStore[models.Administrator](db).List(context.Background(), store.All)
	require.NoError(t, err)
	return admins
}

func TestRunCreatesAdministrator(t *testing.T) {
	path := useSQLiteFile(t)
	var out bytes.Buffer

	err := run([]string{"-email", "editor@teste.com", "-password", "123456", "-role", "editor"}, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Administrator created (ID: 1, Email: editor@teste.com, Role: Editor)")
	assert.Contains(t, out.String(), "/administradores/login")

	admins := storedAdministrators(t, path)
	require.Len(t, admins, 1)
	assert.Equal(t, models.RoleEditor, admins[0].Role)
	assert.NotEqual(t, "123456", admins[0].PasswordHash)
}

func TestRunReportsValidationMessages(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "missing email and password",
			args:     []string{},
			expected: []string{models.MsgEmailRequired, models.MsgPasswordRequired},
		},
		{
			name:     "unknown role",
			args:     []string{"-email", "x@teste.com", "-password", "123456", "-role", "Owner"},
			expected: []string{models.MsgRoleInvalid},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			path := useSQLiteFile(t)
			var out bytes.Buffer

			err := run(tt.args, &out)

			assert.ErrorIs(t, err, errNotCreated)
			for _, msg := range tt.expected {
				assert.Contains(t, out.String(), "  - "+msg)
			}
			assert.Empty(t, storedAdministrators(t, path))
		})
	}
}

func TestRunErrors(t *testing.T) {
	t.Run("unknown flag", func(t *testing.T) {
		useSQLiteFile(t)
		var out bytes.Buffer

		assert.Error(t, run([]string{"-unknown"}, &out))
	})

	t.Run("memory driver", func(t *testing.T) {
		t.Setenv("DB_DRIVER", "memory")

		err := run([]string{"-email", "x@teste.com", "-password", "123456"}, &bytes.Buffer{})

		assert.ErrorContains(t, err, "nothing to persist")
	})

	t.Run("invalid configuration", func(t *testing.T) {
		t.Setenv("APP_PORT", "not_a_number")

		err := run([]string{"-email", "x@teste.com", "-password", "123456"}, &bytes.Buffer{})

		assert.ErrorContains(t, err, "failed to load configuration")
	})
}
