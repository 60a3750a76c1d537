package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/enapu/yard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func marshal(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func TestUserViewOmitsPassword(t *testing.T) {
	user := models.User{
		ID:            7,
		Name:          "María García",
		Email:         "cliente@empresa.com",
		Password:      "pbkdf2_sha256$1000$salt$hash",
		RoleID:        3,
		Role:          &models.Role{ID: 3, Name: "CLIENTE"},
		AccessLevelID: 3,
		AccessLevel:   &models.AccessLevel{ID: 3, Name: "Básico"},
		Active:        true,
	}

	body := marshal(t, NewUserView(user))

	assert.False(t, gjson.Get(body, "password").Exists())
	assert.NotContains(t, body, "pbkdf2")
	assert.Equal(t, "CLIENTE", gjson.Get(body, "rol_nombre").String())
	assert.Equal(t, "Básico", gjson.Get(body, "nivel_nombre").String())
	assert.Equal(t, int64(3), gjson.Get(body, "id_rol").Int())
	assert.True(t, gjson.Get(body, "activo").Bool())
	assert.Equal(t, gjson.Null, gjson.Get(body, "telefono").Type)
}

func TestUserViewWithoutRelations(t *testing.T) {
	body := marshal(t, NewUserView(models.User{ID: 1, RoleID: 2, AccessLevelID: 2}))

	assert.Equal(t, gjson.Null, gjson.Get(body, "rol_nombre").Type)
	assert.Equal(t, gjson.Null, gjson.Get(body, "nivel_nombre").Type)
}

func TestContainerViewAppointmentInfo(t *testing.T) {
	barcode := "CONT-2024-001"
	send := models.NewDate(time.Date(2024, 5, 2, 15, 0, 0, 0, time.UTC))
	apptID := uint(4)
	container := models.Container{
		ID:            1,
		Barcode:       &barcode,
		Dimensions:    "20x8x8",
		Type:          "20FT",
		Weight:        15000,
		ShipID:        2,
		Ship:          &models.Ship{ID: 2, Name: "MSC MAYA"},
		AppointmentID: &apptID,
		Appointment: &models.PickupAppointment{
			ID:       apptID,
			SendDate: &send,
			Status:   "reservada",
			Client:   &models.User{Name: "Carlos Rodríguez"},
		},
	}

	body := marshal(t, NewContainerView(container))

	assert.Equal(t, "MSC MAYA", gjson.Get(body, "buque_nombre").String())
	assert.Equal(t, "2024-05-02", gjson.Get(body, "cita_info.fecha_envio").String())
	assert.Equal(t, gjson.Null, gjson.Get(body, "cita_info.fecha_recojo").Type)
	assert.Equal(t, "Carlos Rodríguez", gjson.Get(body, "cita_info.cliente").String())
	assert.Equal(t, "reservada", gjson.Get(body, "cita_info.estado").String())
}

func TestContainerViewWithoutAppointment(t *testing.T) {
	body := marshal(t, NewContainerView(models.Container{ID: 1, ShipID: 1}))

	assert.True(t, gjson.Get(body, "cita_info").Exists())
	assert.Equal(t, gjson.Null, gjson.Get(body, "cita_info").Type)
	assert.Equal(t, gjson.Null, gjson.Get(body, "codigo_barras").Type)
}

func TestTicketViewNestedInfo(t *testing.T) {
	number := "ABCD0000001"
	ticket := models.Ticket{
		ID:        9,
		EntryTime: time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC),
		Status:    models.TicketStatusQueued,
		SlotID:    3,
		Slot: &models.Slot{
			ID: 3, Row: 2, Column: 5, Level: 1,
			Zone: &models.Zone{ID: 1, Name: "Zona A"},
		},
		UserID:      5,
		User:        &models.User{Name: "Carlos López"},
		ContainerID: 11,
		Container:   &models.Container{Number: &number, Type: "40HC", Dimensions: "40x8x9", Weight: 18500},
	}

	body := marshal(t, NewTicketView(ticket))

	assert.Equal(t, "En Cola", gjson.Get(body, "estado").String())
	assert.Equal(t, gjson.Null, gjson.Get(body, "fecha_hora_salida").Type)
	assert.Equal(t, int64(2), gjson.Get(body, "ubicacion_info.fila").Int())
	assert.Equal(t, "Zona A", gjson.Get(body, "ubicacion_info.zona_nombre").String())
	assert.Equal(t, int64(1), gjson.Get(body, "ubicacion_info.zona_id").Int())
	assert.Equal(t, "Carlos López", gjson.Get(body, "usuario_nombre").String())
	assert.Equal(t, "ABCD0000001", gjson.Get(body, "contenedor_info.numero_contenedor").String())
	assert.Equal(t, 18500.0, gjson.Get(body, "contenedor_info.peso").Float())
}

func TestViewListsAreNeverNull(t *testing.T) {
	assert.Equal(t, "[]", marshal(t, NewTicketViews(nil)))
	assert.Equal(t, "[]", marshal(t, NewUserViews(nil)))
}
