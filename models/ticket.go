package models

import (
	"strings"
	"time"
)

// Known ticket statuses. The column is free text; these are the values the
// yard operators use.
const (
	TicketStatusPending    = "Pendiente"
	TicketStatusValidated  = "Validado"
	TicketStatusQueued     = "En Cola"
	TicketStatusInProgress = "En Proceso"
	TicketStatusCompleted  = "Completado"
)

var KnownTicketStatuses = []string{
	TicketStatusPending,
	TicketStatusValidated,
	TicketStatusQueued,
	TicketStatusInProgress,
	TicketStatusCompleted,
}

// Ticket records a container's stay in a yard slot.
type Ticket struct {
	ID          uint       `gorm:"column:id;primaryKey" json:"id"`
	EntryTime   time.Time  `gorm:"column:fecha_hora_entrada;not null" json:"fecha_hora_entrada"`
	ExitTime    *time.Time `gorm:"column:fecha_hora_salida" json:"fecha_hora_salida"`
	Status      string     `gorm:"column:estado;type:varchar(50);not null;index" json:"estado"`
	SlotID      uint       `gorm:"column:id_ubicacion;not null;index" json:"id_ubicacion"`
	Slot        *Slot      `gorm:"foreignKey:SlotID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	UserID      uint       `gorm:"column:id_usuario;not null;index" json:"id_usuario"`
	User        *User      `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ContainerID uint       `gorm:"column:id_contenedor;not null;index" json:"id_contenedor"`
	Container   *Container `gorm:"foreignKey:ContainerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ModifiedAt  *time.Time `gorm:"column:fecha_modificacion" json:"fecha_modificacion"`
}

func (Ticket) TableName() string { return "Ticket" }

// ChangeStatus sets the status unconditionally. Only the exact value
// "Completado" stamps the exit time; a repeated completion re-stamps it.
func (t *Ticket) ChangeStatus(status string, now time.Time) {
	t.Status = status
	if status == TicketStatusCompleted {
		t.ExitTime = &now
	}
	t.ModifiedAt = &now
}

// NormalizeTicketStatus maps case and underscore variants of a known status
// ("EN_PROCESO", "completado") to its canonical spelling. Unknown values are
// returned unchanged.
func NormalizeTicketStatus(status string) string {
	key := strings.ToLower(strings.TrimSpace(strings.ReplaceAll(status, "_", " ")))
	for _, known := range KnownTicketStatuses {
		if strings.ToLower(known) == key {
			return known
		}
	}
	return status
}
