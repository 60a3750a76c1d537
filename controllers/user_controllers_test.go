package controllers_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/enapu/yard-backend/config"
	"github.com/enapu/yard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestLogin(t *testing.T) {
	r, db := newAPI(t, true)

	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "carmen.vega@freight.com").
		Update("activo", false).Error)

	cases := []struct {
		name    string
		body    interface{}
		status  int
		message string
	}{
		{"valid credentials", map[string]string{"email": "admin@enapu.com", "password": "admin123"}, http.StatusOK, ""},
		{"wrong password", map[string]string{"email": "admin@enapu.com", "password": "nope"}, http.StatusUnauthorized, "Credenciales inválidas"},
		{"unknown email", map[string]string{"email": "nadie@enapu.com", "password": "admin123"}, http.StatusNotFound, "Usuario no encontrado"},
		{"inactive user", map[string]string{"email": "carmen.vega@freight.com", "password": "cliente123"}, http.StatusNotFound, "Usuario no encontrado"},
		{"missing password", map[string]string{"email": "admin@enapu.com"}, http.StatusBadRequest, "Email y contraseña son requeridos"},
		{"missing email", map[string]string{"password": "admin123"}, http.StatusBadRequest, "Email y contraseña son requeridos"},
		{"malformed body", "{", http.StatusBadRequest, "Email y contraseña son requeridos"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/usuarios/login", tc.body)
			require.Equal(t, tc.status, w.Code, w.Body.String())
			if tc.message != "" {
				assert.Equal(t, tc.message, gjson.Get(w.Body.String(), "error").String())
			}
		})
	}
}

func TestLoginReturnsUserView(t *testing.T) {
	r, _ := newAPI(t, true)

	w := doJSON(t, r, http.MethodPost, "/api/usuarios/login",
		map[string]string{"email": "operario@enapu.com", "password": "operario123"})
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Equal(t, "Login exitoso", gjson.Get(body, "message").String())
	assert.Equal(t, "operario@enapu.com", gjson.Get(body, "user.email").String())
	assert.Equal(t, "OPERARIO", gjson.Get(body, "user.rol_nombre").String())
	assert.Equal(t, "Operativo", gjson.Get(body, "user.nivel_nombre").String())
	assert.True(t, gjson.Get(body, "user.activo").Bool())
	assert.False(t, gjson.Get(body, "user.password").Exists())
	assert.NotContains(t, body, "pbkdf2_sha256$")
}

func TestUsersByRole(t *testing.T) {
	r, db := newAPI(t, true)

	w := doJSON(t, r, http.MethodGet, "/api/usuarios/by_role?role=CLIENTE", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := gjson.Get(w.Body.String(), "@this").Array()
	require.Len(t, users, 7)
	for _, u := range users {
		assert.Equal(t, "CLIENTE", u.Get("rol_nombre").String())
	}
	assert.Equal(t, "cliente@empresa.com", users[0].Get("email").String())

	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "cliente@empresa.com").
		Update("activo", false).Error)
	w = doJSON(t, r, http.MethodGet, "/api/usuarios/by_role?role=CLIENTE", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, gjson.Get(w.Body.String(), "@this").Array(), 6)
	assert.NotContains(t, w.Body.String(), "cliente@empresa.com")

	w = doJSON(t, r, http.MethodGet, "/api/usuarios/by_role?role=CAPITAN", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/usuarios/by_role?role=%20", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/usuarios/by_role?role=", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/usuarios/by_role", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Rol no especificado", gjson.Get(w.Body.String(), "error").String())
}

func TestCreateUserWithNewRoleAndLevel(t *testing.T) {
	r, db := newAPI(t, false)

	w := doJSON(t, r, http.MethodPost, "/api/roles", map[string]string{"rol": "Cliente"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	roleID := gjson.Get(w.Body.String(), "id").Uint()

	w = doJSON(t, r, http.MethodPost, "/api/niveles", map[string]string{"nivel": "Nivel 1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	levelID := gjson.Get(w.Body.String(), "id").Uint()

	w = doJSON(t, r, http.MethodPost, "/api/usuarios", map[string]interface{}{
		"nombre":          "Juan Perez",
		"email":           "juan.perez@example.com",
		"password":        "secreto123",
		"id_rol":          roleID,
		"id_nivel_acceso": levelID,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	body := w.Body.String()
	assert.True(t, gjson.Get(body, "activo").Bool())
	assert.NotEmpty(t, gjson.Get(body, "fecha_creacion").String())
	assert.False(t, strings.HasPrefix(gjson.Get(body, "fecha_creacion").String(), "0001-01-01"))
	assert.Equal(t, "Cliente", gjson.Get(body, "rol_nombre").String())
	assert.Equal(t, "Nivel 1", gjson.Get(body, "nivel_nombre").String())
	assert.False(t, gjson.Get(body, "password").Exists())

	var stored models.User
	require.NoError(t, db.First(&stored, gjson.Get(body, "id").Uint()).Error)
	assert.True(t, strings.HasPrefix(stored.Password, "pbkdf2_sha256$1000$"))

	w = doJSON(t, r, http.MethodPost, "/api/usuarios/login",
		map[string]string{"email": "juan.perez@example.com", "password": "secreto123"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateUserValidation(t *testing.T) {
	r, _ := newAPI(t, true)

	valid := func() map[string]interface{} {
		return map[string]interface{}{
			"nombre":          "Nuevo Cliente",
			"email":           "nuevo@cliente.com",
			"password":        "clave123",
			"id_rol":          3,
			"id_nivel_acceso": 3,
		}
	}

	missingName := valid()
	delete(missingName, "nombre")
	w := doJSON(t, r, http.MethodPost, "/api/usuarios", missingName)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	blankName := valid()
	blankName["nombre"] = "   "
	w = doJSON(t, r, http.MethodPost, "/api/usuarios", blankName)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	noPassword := valid()
	delete(noPassword, "password")
	w = doJSON(t, r, http.MethodPost, "/api/usuarios", noPassword)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	badRole := valid()
	badRole["id_rol"] = 999
	w = doJSON(t, r, http.MethodPost, "/api/usuarios", badRole)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, gjson.Get(w.Body.String(), "error").String(), "id_rol")

	duplicate := valid()
	duplicate["email"] = "admin@enapu.com"
	w = doJSON(t, r, http.MethodPost, "/api/usuarios", duplicate)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.True(t, gjson.Get(w.Body.String(), "error").Exists())

	inactive := valid()
	inactive["activo"] = false
	w = doJSON(t, r, http.MethodPost, "/api/usuarios", inactive)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.False(t, gjson.Get(w.Body.String(), "activo").Bool())
}

func TestUpdateUser(t *testing.T) {
	r, _ := newAPI(t, true)

	w := doJSON(t, r, http.MethodPatch, "/api/usuarios/3", map[string]interface{}{
		"telefono": "911222333",
		"password": "nueva456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "911222333", gjson.Get(w.Body.String(), "telefono").String())
	assert.Equal(t, "María García", gjson.Get(w.Body.String(), "nombre").String())

	w = doJSON(t, r, http.MethodPost, "/api/usuarios/login",
		map[string]string{"email": "cliente@empresa.com", "password": "cliente123"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/usuarios/login",
		map[string]string{"email": "cliente@empresa.com", "password": "nueva456"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/usuarios/3", map[string]interface{}{"activo": false})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/usuarios/login",
		map[string]string{"email": "cliente@empresa.com", "password": "nueva456"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/usuarios/3", map[string]interface{}{"id_nivel_acceso": 42})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPatch, "/api/usuarios/999", map[string]interface{}{"nombre": "X"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBcryptPasswordTooLong(t *testing.T) {
	r, _ := newAPIWithConfig(t, true, func(cfg *config.Config) { cfg.PasswordHasher = "bcrypt" })
	long := strings.Repeat("x", 73)

	w := doJSON(t, r, http.MethodPost, "/api/usuarios", map[string]interface{}{
		"nombre": "Ana Torres", "email": "ana@naviera.com", "password": long,
		"id_rol": 3, "id_nivel_acceso": 3,
	})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	assert.Contains(t, gjson.Get(w.Body.String(), "error").String(), "password")

	w = doJSON(t, r, http.MethodPatch, "/api/usuarios/3", map[string]interface{}{"password": long})
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodPost, "/api/usuarios", map[string]interface{}{
		"nombre": "Ana Torres", "email": "ana@naviera.com", "password": strings.Repeat("x", 72),
		"id_rol": 3, "id_nivel_acceso": 3,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	w = doJSON(t, r, http.MethodPost, "/api/usuarios/login",
		map[string]string{"email": "ana@naviera.com", "password": strings.Repeat("x", 72)})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestListAndDeleteUsers(t *testing.T) {
	r, _ := newAPI(t, true)

	w := doJSON(t, r, http.MethodGet, "/api/usuarios", nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := gjson.Get(w.Body.String(), "@this").Array()
	require.Len(t, users, 9)
	assert.Equal(t, uint64(1), users[0].Get("id").Uint())
	assert.NotContains(t, w.Body.String(), "password")

	w = doJSON(t, r, http.MethodGet, "/api/usuarios/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ADMINISTRADOR", gjson.Get(w.Body.String(), "rol_nombre").String())

	w = doJSON(t, r, http.MethodDelete, "/api/usuarios/9", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = doJSON(t, r, http.MethodGet, "/api/usuarios/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, http.MethodDelete, "/api/usuarios/9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
