package models

import (
	"strings"

	"gorm.io/gorm"
)

// Container is a shipping container carried by a ship. Barcode is unique
// when present; several containers may have no barcode at all.
type Container struct {
	ID            uint               `gorm:"column:id;primaryKey" json:"id"`
	Barcode       *string            `gorm:"column:codigo_barras;type:varchar(50);uniqueIndex" json:"codigo_barras"`
	Number        *string            `gorm:"column:numero_contenedor;type:varchar(50)" json:"numero_contenedor"`
	Dimensions    string             `gorm:"column:dimensiones;type:varchar(50);not null" json:"dimensiones"`
	Type          string             `gorm:"column:tipo;type:varchar(20);not null" json:"tipo"`
	Weight        float64            `gorm:"column:peso;not null" json:"peso"`
	ShipID        uint               `gorm:"column:id_buque;not null;index" json:"id_buque"`
	Ship          *Ship              `gorm:"foreignKey:ShipID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	AppointmentID *uint              `gorm:"column:id_cita_recojo;index" json:"id_cita_recojo"`
	Appointment   *PickupAppointment `gorm:"foreignKey:AppointmentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Container) TableName() string { return "Contenedor" }

// BeforeSave stores a blank barcode as NULL so it does not collide with
// other containers that have none.
func (c *Container) BeforeSave(tx *gorm.DB) error {
	if c.Barcode != nil && strings.TrimSpace(*c.Barcode) == "" {
		c.Barcode = nil
	}
	return nil
}
