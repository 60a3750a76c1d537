package controllers

import (
	"net/http"

	"github.com/enapu/yard-backend/dto"
	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContainerController struct {
	DB *gorm.DB
}

func NewContainerController(db *gorm.DB) *ContainerController {
	return &ContainerController{DB: db}
}

func (cc *ContainerController) respondContainer(c *gin.Context, code int, id uint) {
	var container models.Container
	err := preload(cc.DB, dto.ContainerPreloads).WithContext(c.Request.Context()).First(&container, id).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, code, dto.NewContainerView(container))
}

func (cc *ContainerController) GetAllContainers(c *gin.Context) {
	var containers []models.Container
	if !list(c, preload(cc.DB, dto.ContainerPreloads), &containers) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewContainerViews(containers))
}

// CreateContainer accepts an empty barcode and stores it as NULL.
func (cc *ContainerController) CreateContainer(c *gin.Context) {
	var body struct {
		Barcode       *string  `json:"codigo_barras" binding:"omitempty,max=50"`
		Number        *string  `json:"numero_contenedor" binding:"omitempty,max=50"`
		Dimensions    string   `json:"dimensiones" binding:"required,notblank,max=50"`
		Type          string   `json:"tipo" binding:"required,notblank,max=20"`
		Weight        *float64 `json:"peso" binding:"required"`
		ShipID        uint     `json:"id_buque" binding:"required"`
		AppointmentID *uint    `json:"id_cita_recojo" binding:"omitempty,min=1"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, cc.DB,
		ref("id_buque", &models.Ship{}, &body.ShipID),
		ref("id_cita_recojo", &models.PickupAppointment{}, body.AppointmentID),
	) {
		return
	}
	container := models.Container{
		Barcode:       body.Barcode,
		Number:        body.Number,
		Dimensions:    body.Dimensions,
		Type:          body.Type,
		Weight:        *body.Weight,
		ShipID:        body.ShipID,
		AppointmentID: body.AppointmentID,
	}
	if !create(c, cc.DB, &container) {
		return
	}
	cc.respondContainer(c, http.StatusCreated, container.ID)
}

func (cc *ContainerController) GetContainerByID(c *gin.Context) {
	var container models.Container
	if !findByID(c, preload(cc.DB, dto.ContainerPreloads), &container) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewContainerView(container))
}

func (cc *ContainerController) UpdateContainer(c *gin.Context) {
	var container models.Container
	if !findByID(c, cc.DB, &container) {
		return
	}
	var body struct {
		Barcode       *string  `json:"codigo_barras" binding:"omitempty,max=50"`
		Number        *string  `json:"numero_contenedor" binding:"omitempty,max=50"`
		Dimensions    *string  `json:"dimensiones" binding:"omitempty,notblank,max=50"`
		Type          *string  `json:"tipo" binding:"omitempty,notblank,max=20"`
		Weight        *float64 `json:"peso"`
		ShipID        *uint    `json:"id_buque" binding:"omitempty,min=1"`
		AppointmentID *uint    `json:"id_cita_recojo" binding:"omitempty,min=1"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, cc.DB,
		ref("id_buque", &models.Ship{}, body.ShipID),
		ref("id_cita_recojo", &models.PickupAppointment{}, body.AppointmentID),
	) {
		return
	}
	if body.Barcode != nil {
		container.Barcode = body.Barcode
	}
	if body.Number != nil {
		container.Number = body.Number
	}
	if body.Dimensions != nil {
		container.Dimensions = *body.Dimensions
	}
	if body.Type != nil {
		container.Type = *body.Type
	}
	if body.Weight != nil {
		container.Weight = *body.Weight
	}
	if body.ShipID != nil {
		container.ShipID = *body.ShipID
	}
	if body.AppointmentID != nil {
		container.AppointmentID = body.AppointmentID
	}
	if !save(c, cc.DB, &container) {
		return
	}
	cc.respondContainer(c, http.StatusOK, container.ID)
}

func (cc *ContainerController) DeleteContainer(c *gin.Context) {
	destroy(c, cc.DB, &models.Container{})
}
