package models

import "time"

type Ship struct {
	ID           uint   `gorm:"column:id;primaryKey" json:"id"`
	Name         string `gorm:"column:nombre;type:varchar(50);not null" json:"nombre"`
	ShippingLine string `gorm:"column:linea_naviera;type:varchar(50);not null" json:"linea_naviera"`
}

func (Ship) TableName() string { return "Buque" }

const AppointmentStatusReserved = "reservada"

// PickupAppointment is the window in which a client expects to collect
// its containers. ScheduleStart and ScheduleEnd are legacy columns kept
// for rows written before SendDate/PickupDate existed.
type PickupAppointment struct {
	ID            uint      `gorm:"column:id;primaryKey" json:"id"`
	SendDate      *Date     `gorm:"column:fecha_envio;type:date" json:"fecha_envio"`
	PickupDate    *Date     `gorm:"column:fecha_recojo;type:date" json:"fecha_recojo"`
	TripDays      int       `gorm:"column:duracion_viaje_dias;not null;default:0" json:"duracion_viaje_dias"`
	Status        string    `gorm:"column:estado;type:varchar(50);not null;default:'reservada'" json:"estado"`
	ClientID      *uint     `gorm:"column:id_cliente;index" json:"id_cliente"`
	Client        *User     `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CreatedAt     time.Time `gorm:"column:fecha_creacion;autoCreateTime" json:"fecha_creacion"`
	ScheduleStart *Date     `gorm:"column:fecha_inicio_horario;type:date" json:"fecha_inicio_horario"`
	ScheduleEnd   *Date     `gorm:"column:fecha_salida_horario;type:date" json:"fecha_salida_horario"`
}

func (PickupAppointment) TableName() string { return "Cita_recojo" }
