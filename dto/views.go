// Package dto holds the JSON views returned by the API. Each view selects
// its fields explicitly so stored secrets such as the password hash are
// never serialized.
package dto

import (
	"time"

	"github.com/enapu/yard-backend/models"
)

type UserView struct {
	ID            uint      `json:"id"`
	Name          string    `json:"nombre"`
	Email         string    `json:"email"`
	Phone         *string   `json:"telefono"`
	Company       *string   `json:"empresa"`
	RoleID        uint      `json:"id_rol"`
	RoleName      *string   `json:"rol_nombre"`
	AccessLevelID uint      `json:"id_nivel_acceso"`
	LevelName     *string   `json:"nivel_nombre"`
	UpdatedAt     time.Time `json:"fecha_modificacion"`
	CreatedAt     time.Time `json:"fecha_creacion"`
	Active        bool      `json:"activo"`
}

var UserPreloads = []string{"Role", "AccessLevel"}

// NewUserView reads the UserPreloads relations; missing ones serialize as
// null names.
func NewUserView(u models.User) UserView {
	v := UserView{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Company:       u.Company,
		RoleID:        u.RoleID,
		AccessLevelID: u.AccessLevelID,
		UpdatedAt:     u.UpdatedAt,
		CreatedAt:     u.CreatedAt,
		Active:        u.Active,
	}
	if u.Role != nil {
		v.RoleName = &u.Role.Name
	}
	if u.AccessLevel != nil {
		v.LevelName = &u.AccessLevel.Name
	}
	return v
}

func NewUserViews(users []models.User) []UserView {
	views := make([]UserView, 0, len(users))
	for _, u := range users {
		views = append(views, NewUserView(u))
	}
	return views
}

type AppointmentView struct {
	ID            uint         `json:"id"`
	SendDate      *models.Date `json:"fecha_envio"`
	PickupDate    *models.Date `json:"fecha_recojo"`
	TripDays      int          `json:"duracion_viaje_dias"`
	Status        string       `json:"estado"`
	ClientID      *uint        `json:"id_cliente"`
	ClientName    *string      `json:"cliente_nombre"`
	ClientEmail   *string      `json:"cliente_email"`
	CreatedAt     time.Time    `json:"fecha_creacion"`
	ScheduleStart *models.Date `json:"fecha_inicio_horario"`
	ScheduleEnd   *models.Date `json:"fecha_salida_horario"`
}

var AppointmentPreloads = []string{"Client"}

func NewAppointmentView(a models.PickupAppointment) AppointmentView {
	v := AppointmentView{
		ID:            a.ID,
		SendDate:      a.SendDate,
		PickupDate:    a.PickupDate,
		TripDays:      a.TripDays,
		Status:        a.Status,
		ClientID:      a.ClientID,
		CreatedAt:     a.CreatedAt,
		ScheduleStart: a.ScheduleStart,
		ScheduleEnd:   a.ScheduleEnd,
	}
	if a.Client != nil {
		v.ClientName = &a.Client.Name
		v.ClientEmail = &a.Client.Email
	}
	return v
}

func NewAppointmentViews(items []models.PickupAppointment) []AppointmentView {
	views := make([]AppointmentView, 0, len(items))
	for _, a := range items {
		views = append(views, NewAppointmentView(a))
	}
	return views
}

type AppointmentInfo struct {
	SendDate   *models.Date `json:"fecha_envio"`
	PickupDate *models.Date `json:"fecha_recojo"`
	Client     *string      `json:"cliente"`
	Status     string       `json:"estado"`
}

type ContainerView struct {
	ID              uint             `json:"id"`
	Barcode         *string          `json:"codigo_barras"`
	Number          *string          `json:"numero_contenedor"`
	Dimensions      string           `json:"dimensiones"`
	Type            string           `json:"tipo"`
	Weight          float64          `json:"peso"`
	ShipID          uint             `json:"id_buque"`
	ShipName        *string          `json:"buque_nombre"`
	AppointmentID   *uint            `json:"id_cita_recojo"`
	AppointmentInfo *AppointmentInfo `json:"cita_info"`
}

var ContainerPreloads = []string{"Ship", "Appointment", "Appointment.Client"}

func NewContainerView(c models.Container) ContainerView {
	v := ContainerView{
		ID:            c.ID,
		Barcode:       c.Barcode,
		Number:        c.Number,
		Dimensions:    c.Dimensions,
		Type:          c.Type,
		Weight:        c.Weight,
		ShipID:        c.ShipID,
		AppointmentID: c.AppointmentID,
	}
	if c.Ship != nil {
		v.ShipName = &c.Ship.Name
	}
	if c.Appointment != nil {
		info := &AppointmentInfo{
			SendDate:   c.Appointment.SendDate,
			PickupDate: c.Appointment.PickupDate,
			Status:     c.Appointment.Status,
		}
		if c.Appointment.Client != nil {
			info.Client = &c.Appointment.Client.Name
		}
		v.AppointmentInfo = info
	}
	return v
}

func NewContainerViews(items []models.Container) []ContainerView {
	views := make([]ContainerView, 0, len(items))
	for _, c := range items {
		views = append(views, NewContainerView(c))
	}
	return views
}

type SlotInfo struct {
	Row      int     `json:"fila"`
	Column   int     `json:"columna"`
	Level    int     `json:"nivel"`
	ZoneName *string `json:"zona_nombre"`
	ZoneID   *uint   `json:"zona_id"`
}

type ContainerInfo struct {
	Barcode    *string `json:"codigo_barras"`
	Number     *string `json:"numero_contenedor"`
	Type       string  `json:"tipo"`
	Dimensions string  `json:"dimensiones"`
	Weight     float64 `json:"peso"`
}

type TicketView struct {
	ID            uint           `json:"id"`
	EntryTime     time.Time      `json:"fecha_hora_entrada"`
	ExitTime      *time.Time     `json:"fecha_hora_salida"`
	Status        string         `json:"estado"`
	SlotID        uint           `json:"id_ubicacion"`
	SlotInfo      *SlotInfo      `json:"ubicacion_info"`
	UserID        uint           `json:"id_usuario"`
	UserName      *string        `json:"usuario_nombre"`
	ContainerID   uint           `json:"id_contenedor"`
	ContainerInfo *ContainerInfo `json:"contenedor_info"`
	ModifiedAt    *time.Time     `json:"fecha_modificacion"`
}

var TicketPreloads = []string{"Slot", "Slot.Zone", "User", "Container"}

func NewTicketView(t models.Ticket) TicketView {
	v := TicketView{
		ID:          t.ID,
		EntryTime:   t.EntryTime,
		ExitTime:    t.ExitTime,
		Status:      t.Status,
		SlotID:      t.SlotID,
		UserID:      t.UserID,
		ContainerID: t.ContainerID,
		ModifiedAt:  t.ModifiedAt,
	}
	if t.Slot != nil {
		info := &SlotInfo{Row: t.Slot.Row, Column: t.Slot.Column, Level: t.Slot.Level}
		if t.Slot.Zone != nil {
			info.ZoneName = &t.Slot.Zone.Name
			info.ZoneID = &t.Slot.Zone.ID
		}
		v.SlotInfo = info
	}
	if t.User != nil {
		v.UserName = &t.User.Name
	}
	if t.Container != nil {
		v.ContainerInfo = &ContainerInfo{
			Barcode:    t.Container.Barcode,
			Number:     t.Container.Number,
			Type:       t.Container.Type,
			Dimensions: t.Container.Dimensions,
			Weight:     t.Container.Weight,
		}
	}
	return v
}

func NewTicketViews(items []models.Ticket) []TicketView {
	views := make([]TicketView, 0, len(items))
	for _, t := range items {
		views = append(views, NewTicketView(t))
	}
	return views
}
