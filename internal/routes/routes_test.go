package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-vehicle-api/internal/auth"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/controllers"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/models"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/services"
	"github.com/franciscosanchezn/gin-vehicle-api/internal/store"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testAPI struct {
	router *gin.Engine
	tokens *auth.TokenService
}

func setupAPI(t *testing.T) *testAPI {
	gin.SetMode(gin.TestMode)

	tokens, err := auth.NewTokenService("test-jwt-secret-key-32-characters", 0)
	require.NoError(t, err)

	adminService := services.NewAdministratorService(store.NewMemoryStore[models.Administrator](), 10, services.WithHashCost(bcrypt.MinCost))
	vehicleService := services.NewVehicleService(store.NewMemoryStore[models.Vehicle](), 10)

	ctx := context.Background()
	_, err = adminService.Create(ctx, models.AdministratorDTO{Email: "adm@teste.com", Password: "123456", Role: "Admin"})
	require.NoError(t, err)
	_, err = adminService.Create(ctx, models.AdministratorDTO{Email: "editor@teste.com", Password: "123456", Role: "Editor"})
	require.NoError(t, err)

	router := NewRouter(Dependencies{
		Tokens:         tokens,
		Administrators: controllers.NewAdministratorController(adminService, tokens),
		Vehicles:       controllers.NewVehicleController(vehicleService),
	})
	return &testAPI{router: router, tokens: tokens}
}

func (a *testAPI) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var payload bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&payload).Encode(body))
	}
	req := httptest.NewRequest(method, path, &payload)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *testAPI) login(t *testing.T, email, password string) models.LoggedAdministrator {
	t.Helper()
	w := a.do(t, http.MethodPost, "/administradores/login", "", models.LoginDTO{Email: email, Password: password})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var logged models.LoggedAdministrator
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &logged))
	return logged
}

func TestHome(t *testing.T) {
	api := setupAPI(t)

	w := api.do(t, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var home models.Home
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &home))
	assert.Equal(t, models.NewHome(), home)
}

func TestLogin(t *testing.T) {
	api := setupAPI(t)

	logged := api.login(t, "editor@teste.com", "123456")
	assert.Equal(t, "editor@teste.com", logged.Email)
	assert.Equal(t, models.RoleEditor, logged.Role)

	claims, err := api.tokens.Parse(logged.Token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleEditor, claims.Role)
	assert.Equal(t, "editor@teste.com", claims.Email)

	testCases := []struct {
		name  string
		creds models.LoginDTO
	}{
		{name: "wrong password", creds: models.LoginDTO{Email: "adm@teste.com", Password: "wrong"}},
		{name: "unknown email", creds: models.LoginDTO{Email: "nobody@teste.com", Password: "123456"}},
		{name: "empty credentials", creds: models.LoginDTO{}},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(t, http.MethodPost, "/administradores/login", "", tt.creds)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestLoginMalformedBody(t *testing.T) {
	api := setupAPI(t)

	req := httptest.NewRequest(http.MethodPost, "/administradores/login", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	api.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := setupAPI(t)

	for _, path := range []string{"/administradores", "/administradores/1", "/veiculos", "/veiculos/1"} {
		w := api.do(t, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestRoleGating(t *testing.T) {
	api := setupAPI(t)
	admin := api.login(t, "adm@teste.com", "123456").Token
	editor := api.login(t, "editor@teste.com", "123456").Token

	// a vehicle to address by id
	w := api.do(t, http.MethodPost, "/veiculos", admin, models.VehicleDTO{Name: "Gol", Brand: "VW", Year: 1990})
	require.Equal(t, http.StatusCreated, w.Code)
	var vehicle models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicle))
	vehiclePath := fmt.Sprintf("/veiculos/%d", vehicle.ID)

	newAdmin := models.AdministratorDTO{Email: "novo@teste.com", Password: "123456", Role: "Editor"}
	newVehicle := models.VehicleDTO{Name: "Uno", Brand: "Fiat", Year: 1995}

	testCases := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		editorWant int
		adminWant  int
	}{
		{name: "create administrator", method: http.MethodPost, path: "/administradores", body: newAdmin, editorWant: http.StatusForbidden, adminWant: http.StatusCreated},
		{name: "list administrators", method: http.MethodGet, path: "/administradores", editorWant: http.StatusForbidden, adminWant: http.StatusOK},
		{name: "get administrator", method: http.MethodGet, path: "/administradores/1", editorWant: http.StatusForbidden, adminWant: http.StatusOK},
		{name: "create vehicle", method: http.MethodPost, path: "/veiculos", body: newVehicle, editorWant: http.StatusCreated, adminWant: http.StatusCreated},
		{name: "list vehicles", method: http.MethodGet, path: "/veiculos", editorWant: http.StatusOK, adminWant: http.StatusOK},
		{name: "get vehicle", method: http.MethodGet, path: vehiclePath, editorWant: http.StatusOK, adminWant: http.StatusOK},
		{name: "update vehicle", method: http.MethodPut, path: vehiclePath, body: newVehicle, editorWant: http.StatusForbidden, adminWant: http.StatusOK},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := api.do(t, tt.method, tt.path, editor, tt.body)
			assert.Equal(t, tt.editorWant, w.Code, "editor: %s", w.Body.String())

			w = api.do(t, tt.method, tt.path, admin, tt.body)
			assert.Equal(t, tt.adminWant, w.Code, "admin: %s", w.Body.String())
		})
	}

	// delete last so the other cases still find the vehicle
	w = api.do(t, http.MethodDelete, vehiclePath, editor, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	w = api.do(t, http.MethodDelete, vehiclePath, admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAdministratorEndpoints(t *testing.T) {
	api := setupAPI(t)
	admin := api.login(t, "adm@teste.com", "123456").Token

	w := api.do(t, http.MethodPost, "/administradores", admin, models.AdministratorDTO{})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var verrs models.ValidationErrors
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verrs))
	assert.Equal(t, []string{models.MsgEmailRequired, models.MsgPasswordRequired, models.MsgRoleRequired}, verrs.Messages)

	w = api.do(t, http.MethodPost, "/administradores", admin, models.AdministratorDTO{Email: "novo@teste.com", Password: "segredo", Role: "Editor"})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.AdministratorView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, uint(3), created.ID)
	assert.Equal(t, models.PasswordMask, created.Password)
	assert.Equal(t, models.RoleEditor, created.Role)
	assert.Equal(t, "/administradores/3", w.Header().Get("Location"))
	assert.NotContains(t, w.Body.String(), "segredo")

	// the new administrator can log in with its own password
	assert.Equal(t, models.RoleEditor, api.login(t, "novo@teste.com", "segredo").Role)

	w = api.do(t, http.MethodGet, "/administradores?page=1", admin, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var views []models.AdministratorView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &views))
	assert.Len(t, views, 3)
	for _, v := range views {
		assert.Equal(t, models.PasswordMask, v.Password)
	}

	w = api.do(t, http.MethodGet, "/administradores?page=abc", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = api.do(t, http.MethodGet, "/administradores/999", admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodGet, "/administradores/abc", admin, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVehicleLifecycle(t *testing.T) {
	api := setupAPI(t)
	admin := api.login(t, "adm@teste.com", "123456").Token

	w := api.do(t, http.MethodPost, "/veiculos", admin, models.VehicleDTO{Name: "Fusca", Brand: "VW", Year: 1970})
	require.Equal(t, http.StatusCreated, w.Code)
	var fusca models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fusca))
	assert.NotZero(t, fusca.ID)
	path := fmt.Sprintf("/veiculos/%d", fusca.ID)
	assert.Equal(t, path, w.Header().Get("Location"))

	w = api.do(t, http.MethodPut, path, admin, models.VehicleDTO{Name: "Fusca", Brand: "VW", Year: 1940})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var verrs models.ValidationErrors
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verrs))
	assert.Contains(t, verrs.Messages, "Veículo muito antigo.")

	w = api.do(t, http.MethodPut, path, admin, models.VehicleDTO{Name: "Fusca 1600", Brand: "VW", Year: 1980})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Vehicle
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, fusca.ID, updated.ID)
	assert.Equal(t, "Fusca 1600", updated.Name)

	w = api.do(t, http.MethodPut, "/veiculos/999", admin, models.VehicleDTO{Name: "Uno", Brand: "Fiat", Year: 1990})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodDelete, path, admin, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = api.do(t, http.MethodGet, path, admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = api.do(t, http.MethodDelete, path, admin, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVehicleValidationAndListing(t *testing.T) {
	api := setupAPI(t)
	editor := api.login(t, "editor@teste.com", "123456").Token

	w := api.do(t, http.MethodPost, "/veiculos", editor, models.VehicleDTO{Year: 1950})
	require.Equal(t, http.StatusBadRequest, w.Code)
	var verrs models.ValidationErrors
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &verrs))
	assert.Len(t, verrs.Messages, 3)

	for i := 0; i < 12; i++ {
		brand := "VW"
		if i%2 == 1 {
			brand = "Fiat"
		}
		w = api.do(t, http.MethodPost, "/veiculos", editor, models.VehicleDTO{Name: fmt.Sprintf("Carro %02d", i), Brand: brand, Year: 1980 + i})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	list := func(query string) []models.Vehicle {
		w := api.do(t, http.MethodGet, "/veiculos"+query, editor, nil)
		require.Equal(t, http.StatusOK, w.Code)
		var vehicles []models.Vehicle
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &vehicles))
		return vehicles
	}

	assert.Len(t, list(""), 10)
	assert.Len(t, list("?page=2"), 2)
	assert.Empty(t, list("?page=3"))
	assert.Empty(t, list("?page=922337203685477582"))
	assert.Len(t, list("?brand=fiat"), 6)
	assert.Len(t, list("?name=Carro%2001"), 1)

	w = api.do(t, http.MethodGet, "/veiculos/abc", editor, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
