package models_test

import (
	"testing"
	"time"

	"github.com/enapu/yard-backend/database"
	"github.com/enapu/yard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, _, err := database.OpenMemory()
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	role := models.Role{Name: "Cliente"}
	require.NoError(t, db.Create(&role).Error)
	level := models.AccessLevel{Name: "Nivel 1"}
	require.NoError(t, db.Create(&level).Error)
	user := models.User{
		Name:          "Juan Perez",
		Email:         email,
		Password:      "x",
		RoleID:        role.ID,
		AccessLevelID: level.ID,
		Active:        true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedContainer(t *testing.T, db *gorm.DB, barcode *string) models.Container {
	t.Helper()
	ship := models.Ship{Name: "MSC MAYA", ShippingLine: "MSC"}
	require.NoError(t, db.Create(&ship).Error)
	c := models.Container{Barcode: barcode, Dimensions: "20x8x8", Type: "20FT", Weight: 15000, ShipID: ship.ID}
	require.NoError(t, db.Create(&c).Error)
	return c
}

func strPtr(s string) *string { return &s }

func TestUserCreation(t *testing.T) {
	db := openDB(t)
	user := seedUser(t, db, "juan@example.com")

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, "Juan Perez", stored.Name)
	assert.True(t, stored.Active)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.False(t, stored.UpdatedAt.IsZero())
}

func TestUserEmailIsUnique(t *testing.T) {
	db := openDB(t)
	first := seedUser(t, db, "dup@example.com")

	dup := models.User{
		Name:          "Otro",
		Email:         "dup@example.com",
		Password:      "y",
		RoleID:        first.RoleID,
		AccessLevelID: first.AccessLevelID,
		Active:        true,
	}
	assert.Error(t, db.Create(&dup).Error)
}

func TestContainerBarcodeUniqueWhenPresent(t *testing.T) {
	db := openDB(t)
	first := seedContainer(t, db, strPtr("CONT-2024-001"))

	dup := models.Container{Barcode: strPtr("CONT-2024-001"), Dimensions: "20x8x8", Type: "20FT", Weight: 1, ShipID: first.ShipID}
	assert.Error(t, db.Create(&dup).Error)
}

func TestContainerWithoutBarcodeAllowedManyTimes(t *testing.T) {
	db := openDB(t)
	first := seedContainer(t, db, nil)

	second := models.Container{Dimensions: "40x8x9", Type: "40FT", Weight: 2, ShipID: first.ShipID}
	require.NoError(t, db.Create(&second).Error)

	blank := models.Container{Barcode: strPtr("  "), Dimensions: "40x8x9", Type: "40HC", Weight: 3, ShipID: first.ShipID}
	require.NoError(t, db.Create(&blank).Error)
	assert.Nil(t, blank.Barcode)

	var nulls int64
	require.NoError(t, db.Model(&models.Container{}).Where("codigo_barras IS NULL").Count(&nulls).Error)
	assert.Equal(t, int64(3), nulls)
}

func TestDeletingShipCascades(t *testing.T) {
	db := openDB(t)
	user := seedUser(t, db, "op@example.com")
	container := seedContainer(t, db, strPtr("CONT-2024-002"))
	zone := models.Zone{Name: "Zona A", Capacity: 100}
	require.NoError(t, db.Create(&zone).Error)
	slot := models.Slot{Row: 1, Column: 1, Level: 1, Status: models.SlotStatusFree, ZoneID: zone.ID}
	require.NoError(t, db.Create(&slot).Error)
	ticket := models.Ticket{EntryTime: time.Now(), Status: models.TicketStatusPending, SlotID: slot.ID, UserID: user.ID, ContainerID: container.ID}
	require.NoError(t, db.Create(&ticket).Error)
	invoice := models.Invoice{IssueDate: models.Today(), Amount: 150.5, Status: "Pendiente", TicketID: ticket.ID}
	require.NoError(t, db.Create(&invoice).Error)

	require.NoError(t, db.Delete(&models.Ship{}, container.ShipID).Error)

	var count int64
	require.NoError(t, db.Model(&models.Container{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Ticket{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Invoice{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Slot{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestForeignKeysEnforced(t *testing.T) {
	db := openDB(t)
	slot := models.Slot{Row: 1, Column: 1, Level: 1, Status: models.SlotStatusFree, ZoneID: 999}
	assert.Error(t, db.Create(&slot).Error)
}

func TestAppointmentDefaults(t *testing.T) {
	db := openDB(t)
	appt := models.PickupAppointment{}
	require.NoError(t, db.Create(&appt).Error)

	var stored models.PickupAppointment
	require.NoError(t, db.First(&stored, appt.ID).Error)
	assert.Equal(t, models.AppointmentStatusReserved, stored.Status)
	assert.Zero(t, stored.TripDays)
	assert.Nil(t, stored.SendDate)
	assert.Nil(t, stored.ClientID)
}

func TestDateColumnRoundTrip(t *testing.T) {
	db := openDB(t)
	day := models.NewDate(time.Date(2024, 3, 15, 22, 45, 0, 0, time.UTC))
	report := models.Report{Type: "tickets", GeneratedOn: day, Parameters: "tipo=tickets"}
	require.NoError(t, db.Create(&report).Error)

	var stored models.Report
	require.NoError(t, db.First(&stored, report.ID).Error)
	assert.Equal(t, "2024-03-15", stored.GeneratedOn.String())
}
