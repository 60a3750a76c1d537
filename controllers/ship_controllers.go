package controllers

import (
	"net/http"

	"github.com/enapu/yard-backend/dto"
	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ShipController struct {
	DB *gorm.DB
}

func NewShipController(db *gorm.DB) *ShipController {
	return &ShipController{DB: db}
}

func (sc *ShipController) GetAllShips(c *gin.Context) {
	var ships []models.Ship
	if !list(c, sc.DB, &ships) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, ships)
}

func (sc *ShipController) CreateShip(c *gin.Context) {
	var body struct {
		Name         string `json:"nombre" binding:"required,notblank,max=50"`
		ShippingLine string `json:"linea_naviera" binding:"required,notblank,max=50"`
	}
	if !bindJSON(c, &body) {
		return
	}
	ship := models.Ship{Name: body.Name, ShippingLine: body.ShippingLine}
	if !create(c, sc.DB, &ship) {
		return
	}
	utils.RespondJSON(c, http.StatusCreated, ship)
}

func (sc *ShipController) GetShipByID(c *gin.Context) {
	var ship models.Ship
	if !findByID(c, sc.DB, &ship) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, ship)
}

func (sc *ShipController) UpdateShip(c *gin.Context) {
	var ship models.Ship
	if !findByID(c, sc.DB, &ship) {
		return
	}
	var body struct {
		Name         *string `json:"nombre" binding:"omitempty,notblank,max=50"`
		ShippingLine *string `json:"linea_naviera" binding:"omitempty,notblank,max=50"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if body.Name != nil {
		ship.Name = *body.Name
	}
	if body.ShippingLine != nil {
		ship.ShippingLine = *body.ShippingLine
	}
	if !save(c, sc.DB, &ship) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, ship)
}

func (sc *ShipController) DeleteShip(c *gin.Context) {
	destroy(c, sc.DB, &models.Ship{})
}

type AppointmentController struct {
	DB *gorm.DB
}

func NewAppointmentController(db *gorm.DB) *AppointmentController {
	return &AppointmentController{DB: db}
}

// appointmentPayload serves both create and update; every field is
// optional because the table has defaults or nullable columns throughout.
type appointmentPayload struct {
	SendDate      *models.Date `json:"fecha_envio"`
	PickupDate    *models.Date `json:"fecha_recojo"`
	TripDays      *int         `json:"duracion_viaje_dias"`
	Status        *string      `json:"estado" binding:"omitempty,notblank,max=50"`
	ClientID      *uint        `json:"id_cliente" binding:"omitempty,min=1"`
	ScheduleStart *models.Date `json:"fecha_inicio_horario"`
	ScheduleEnd   *models.Date `json:"fecha_salida_horario"`
}

func (p appointmentPayload) apply(a *models.PickupAppointment) {
	if p.SendDate != nil {
		a.SendDate = p.SendDate
	}
	if p.PickupDate != nil {
		a.PickupDate = p.PickupDate
	}
	if p.TripDays != nil {
		a.TripDays = *p.TripDays
	}
	if p.Status != nil {
		a.Status = *p.Status
	}
	if p.ClientID != nil {
		a.ClientID = p.ClientID
	}
	if p.ScheduleStart != nil {
		a.ScheduleStart = p.ScheduleStart
	}
	if p.ScheduleEnd != nil {
		a.ScheduleEnd = p.ScheduleEnd
	}
}

func (ac *AppointmentController) respondAppointment(c *gin.Context, code int, id uint) {
	var appt models.PickupAppointment
	err := preload(ac.DB, dto.AppointmentPreloads).WithContext(c.Request.Context()).First(&appt, id).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, code, dto.NewAppointmentView(appt))
}

func (ac *AppointmentController) GetAllAppointments(c *gin.Context) {
	var appts []models.PickupAppointment
	if !list(c, preload(ac.DB, dto.AppointmentPreloads), &appts) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewAppointmentViews(appts))
}

func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var body appointmentPayload
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, ac.DB, ref("id_cliente", &models.User{}, body.ClientID)) {
		return
	}
	appt := models.PickupAppointment{Status: models.AppointmentStatusReserved}
	body.apply(&appt)
	if !create(c, ac.DB, &appt) {
		return
	}
	ac.respondAppointment(c, http.StatusCreated, appt.ID)
}

func (ac *AppointmentController) GetAppointmentByID(c *gin.Context) {
	var appt models.PickupAppointment
	if !findByID(c, preload(ac.DB, dto.AppointmentPreloads), &appt) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewAppointmentView(appt))
}

func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	var appt models.PickupAppointment
	if !findByID(c, ac.DB, &appt) {
		return
	}
	var body appointmentPayload
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, ac.DB, ref("id_cliente", &models.User{}, body.ClientID)) {
		return
	}
	body.apply(&appt)
	if !save(c, ac.DB, &appt) {
		return
	}
	ac.respondAppointment(c, http.StatusOK, appt.ID)
}

func (ac *AppointmentController) DeleteAppointment(c *gin.Context) {
	destroy(c, ac.DB, &models.PickupAppointment{})
}
