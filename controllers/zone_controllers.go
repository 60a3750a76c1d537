package controllers

import (
	"net/http"

	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ZoneController struct {
	DB *gorm.DB
}

func NewZoneController(db *gorm.DB) *ZoneController {
	return &ZoneController{DB: db}
}

func (zc *ZoneController) GetAllZones(c *gin.Context) {
	var zones []models.Zone
	if !list(c, zc.DB, &zones) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, zones)
}

func (zc *ZoneController) CreateZone(c *gin.Context) {
	var body struct {
		Name     string `json:"nombre" binding:"required,notblank,max=25"`
		Capacity *int   `json:"capacidad" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	zone := models.Zone{Name: body.Name, Capacity: *body.Capacity}
	if !create(c, zc.DB, &zone) {
		return
	}
	utils.RespondJSON(c, http.StatusCreated, zone)
}

func (zc *ZoneController) GetZoneByID(c *gin.Context) {
	var zone models.Zone
	if !findByID(c, zc.DB, &zone) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, zone)
}

func (zc *ZoneController) UpdateZone(c *gin.Context) {
	var zone models.Zone
	if !findByID(c, zc.DB, &zone) {
		return
	}
	var body struct {
		Name     *string `json:"nombre" binding:"omitempty,notblank,max=25"`
		Capacity *int    `json:"capacidad"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if body.Name != nil {
		zone.Name = *body.Name
	}
	if body.Capacity != nil {
		zone.Capacity = *body.Capacity
	}
	if !save(c, zc.DB, &zone) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, zone)
}

func (zc *ZoneController) DeleteZone(c *gin.Context) {
	destroy(c, zc.DB, &models.Zone{})
}

type SlotController struct {
	DB *gorm.DB
}

func NewSlotController(db *gorm.DB) *SlotController {
	return &SlotController{DB: db}
}

func (sc *SlotController) GetAllSlots(c *gin.Context) {
	var slots []models.Slot
	if !list(c, sc.DB, &slots) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, slots)
}

func (sc *SlotController) CreateSlot(c *gin.Context) {
	var body struct {
		Row    *int   `json:"fila" binding:"required"`
		Column *int   `json:"columna" binding:"required"`
		Level  *int   `json:"nivel" binding:"required"`
		Status string `json:"estado" binding:"required,notblank,max=20"`
		ZoneID uint   `json:"id_zona" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, sc.DB, ref("id_zona", &models.Zone{}, &body.ZoneID)) {
		return
	}
	slot := models.Slot{
		Row:    *body.Row,
		Column: *body.Column,
		Level:  *body.Level,
		Status: body.Status,
		ZoneID: body.ZoneID,
	}
	if !create(c, sc.DB, &slot) {
		return
	}
	utils.RespondJSON(c, http.StatusCreated, slot)
}

func (sc *SlotController) GetSlotByID(c *gin.Context) {
	var slot models.Slot
	if !findByID(c, sc.DB, &slot) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, slot)
}

func (sc *SlotController) UpdateSlot(c *gin.Context) {
	var slot models.Slot
	if !findByID(c, sc.DB, &slot) {
		return
	}
	var body struct {
		Row    *int    `json:"fila"`
		Column *int    `json:"columna"`
		Level  *int    `json:"nivel"`
		Status *string `json:"estado" binding:"omitempty,notblank,max=20"`
		ZoneID *uint   `json:"id_zona" binding:"omitempty,min=1"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, sc.DB, ref("id_zona", &models.Zone{}, body.ZoneID)) {
		return
	}
	if body.Row != nil {
		slot.Row = *body.Row
	}
	if body.Column != nil {
		slot.Column = *body.Column
	}
	if body.Level != nil {
		slot.Level = *body.Level
	}
	if body.Status != nil {
		slot.Status = *body.Status
	}
	if body.ZoneID != nil {
		slot.ZoneID = *body.ZoneID
	}
	if !save(c, sc.DB, &slot) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, slot)
}

func (sc *SlotController) DeleteSlot(c *gin.Context) {
	destroy(c, sc.DB, &models.Slot{})
}
