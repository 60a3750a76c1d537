package database

import (
	"path/filepath"
	"testing"

	"github.com/enapu/yard-backend/config"
	"github.com/enapu/yard-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenMemoryCreatesSchema(t *testing.T) {
	db, cfg, err := OpenMemory()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)

	for _, table := range []string{
		"Rol", "Nivel_acceso", "Usuario", "Zona", "Ubicacion_slot", "Buque",
		"Cita_recojo", "Contenedor", "Ticket", "Factura", "Pago", "Reporte",
	} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.True(t, db.Migrator().HasColumn(&models.Ticket{}, "fecha_hora_salida"))
	assert.True(t, db.Migrator().HasColumn(&models.User{}, "id_nivel_acceso"))
}

func TestOpenMemoryIsolated(t *testing.T) {
	first, _, err := OpenMemory()
	require.NoError(t, err)
	second, _, err := OpenMemory()
	require.NoError(t, err)

	require.NoError(t, first.Create(&models.Role{Name: "ADMINISTRADOR"}).Error)

	var count int64
	require.NoError(t, second.Model(&models.Role{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	cfg := config.Testing(MemoryDSN())
	cfg.DBDriver = "oracle"

	_, err := Open(cfg)
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestSQLiteDSNEnablesForeignKeys(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{"patio.db", "patio.db?_foreign_keys=1"},
		{"file:patio.db?cache=shared", "file:patio.db?cache=shared&_foreign_keys=1"},
		{"patio.db?_foreign_keys=0", "patio.db?_foreign_keys=0"},
		{"patio.db?_fk=1", "patio.db?_fk=1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, sqliteDSN(tt.dsn), tt.dsn)
	}
}

func TestOpenSQLiteCascadesOnEveryPooledConnection(t *testing.T) {
	cfg := config.Testing(filepath.Join(t.TempDir(), "patio.db"))
	cfg.DBMaxIdleConns = 5
	cfg.DBMaxOpenConns = 5

	db, err := Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	require.NoError(t, AutoMigrate(db))

	// keep one connection busy so the statements below use another one
	tx := db.Begin()
	require.NoError(t, tx.Error)
	defer tx.Rollback()

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)

	ship := models.Ship{Name: "MSC MAYA", ShippingLine: "MSC"}
	require.NoError(t, db.Create(&ship).Error)
	container := models.Container{Dimensions: "20x8x8", Type: "20FT", Weight: 12000, ShipID: ship.ID}
	require.NoError(t, db.Create(&container).Error)

	require.NoError(t, db.Delete(&models.Ship{}, ship.ID).Error)

	var left int64
	require.NoError(t, db.Model(&models.Container{}).Count(&left).Error)
	assert.Zero(t, left)
}
