package models

const (
	SlotStatusFree     = "Disponible"
	SlotStatusOccupied = "Ocupado"
)

type Zone struct {
	ID       uint   `gorm:"column:id;primaryKey" json:"id"`
	Name     string `gorm:"column:nombre;type:varchar(25);not null" json:"nombre"`
	Capacity int    `gorm:"column:capacidad;not null" json:"capacidad"`
}

func (Zone) TableName() string { return "Zona" }

// Slot is one addressable storage position inside a zone. The
// (zone, row, column, level) tuple is unique by convention only; the
// seeder keeps it that way but the schema does not enforce it.
type Slot struct {
	ID     uint   `gorm:"column:id;primaryKey" json:"id"`
	Row    int    `gorm:"column:fila;not null" json:"fila"`
	Column int    `gorm:"column:columna;not null" json:"columna"`
	Level  int    `gorm:"column:nivel;not null" json:"nivel"`
	Status string `gorm:"column:estado;type:varchar(20);not null" json:"estado"`
	ZoneID uint   `gorm:"column:id_zona;not null;index" json:"id_zona"`
	Zone   *Zone  `gorm:"foreignKey:ZoneID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Slot) TableName() string { return "Ubicacion_slot" }
