package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/enapu/yard-backend/dto"
	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/services"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type TicketController struct {
	DB      *gorm.DB
	Tickets *services.TicketService
}

func NewTicketController(db *gorm.DB, tickets *services.TicketService) *TicketController {
	return &TicketController{DB: db, Tickets: tickets}
}

func (tc *TicketController) respondTicket(c *gin.Context, code int, id uint) {
	var ticket models.Ticket
	err := preload(tc.DB, dto.TicketPreloads).WithContext(c.Request.Context()).First(&ticket, id).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, code, dto.NewTicketView(ticket))
}

func (tc *TicketController) GetAllTickets(c *gin.Context) {
	var tickets []models.Ticket
	if !list(c, preload(tc.DB, dto.TicketPreloads), &tickets) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewTicketViews(tickets))
}

func (tc *TicketController) CreateTicket(c *gin.Context) {
	var body struct {
		EntryTime   *time.Time `json:"fecha_hora_entrada" binding:"required"`
		ExitTime    *time.Time `json:"fecha_hora_salida"`
		Status      string     `json:"estado" binding:"required,notblank,max=50"`
		SlotID      uint       `json:"id_ubicacion" binding:"required"`
		UserID      uint       `json:"id_usuario" binding:"required"`
		ContainerID uint       `json:"id_contenedor" binding:"required"`
		ModifiedAt  *time.Time `json:"fecha_modificacion"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, tc.DB,
		ref("id_ubicacion", &models.Slot{}, &body.SlotID),
		ref("id_usuario", &models.User{}, &body.UserID),
		ref("id_contenedor", &models.Container{}, &body.ContainerID),
	) {
		return
	}
	ticket := models.Ticket{
		EntryTime:   *body.EntryTime,
		ExitTime:    body.ExitTime,
		Status:      body.Status,
		SlotID:      body.SlotID,
		UserID:      body.UserID,
		ContainerID: body.ContainerID,
		ModifiedAt:  body.ModifiedAt,
	}
	if !create(c, tc.DB, &ticket) {
		return
	}
	tc.respondTicket(c, http.StatusCreated, ticket.ID)
}

func (tc *TicketController) GetTicketByID(c *gin.Context) {
	var ticket models.Ticket
	if !findByID(c, preload(tc.DB, dto.TicketPreloads), &ticket) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewTicketView(ticket))
}

// UpdateTicket is a plain field update; it never stamps the exit time.
// Use ChangeStatus for the status lifecycle.
func (tc *TicketController) UpdateTicket(c *gin.Context) {
	var ticket models.Ticket
	if !findByID(c, tc.DB, &ticket) {
		return
	}
	var body struct {
		EntryTime   *time.Time `json:"fecha_hora_entrada"`
		ExitTime    *time.Time `json:"fecha_hora_salida"`
		Status      *string    `json:"estado" binding:"omitempty,notblank,max=50"`
		SlotID      *uint      `json:"id_ubicacion" binding:"omitempty,min=1"`
		UserID      *uint      `json:"id_usuario" binding:"omitempty,min=1"`
		ContainerID *uint      `json:"id_contenedor" binding:"omitempty,min=1"`
		ModifiedAt  *time.Time `json:"fecha_modificacion"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, tc.DB,
		ref("id_ubicacion", &models.Slot{}, body.SlotID),
		ref("id_usuario", &models.User{}, body.UserID),
		ref("id_contenedor", &models.Container{}, body.ContainerID),
	) {
		return
	}
	if body.EntryTime != nil {
		ticket.EntryTime = *body.EntryTime
	}
	if body.ExitTime != nil {
		ticket.ExitTime = body.ExitTime
	}
	if body.Status != nil {
		ticket.Status = *body.Status
	}
	if body.SlotID != nil {
		ticket.SlotID = *body.SlotID
	}
	if body.UserID != nil {
		ticket.UserID = *body.UserID
	}
	if body.ContainerID != nil {
		ticket.ContainerID = *body.ContainerID
	}
	if body.ModifiedAt != nil {
		ticket.ModifiedAt = body.ModifiedAt
	}
	if !save(c, tc.DB, &ticket) {
		return
	}
	tc.respondTicket(c, http.StatusOK, ticket.ID)
}

func (tc *TicketController) DeleteTicket(c *gin.Context) {
	destroy(c, tc.DB, &models.Ticket{})
}

// GetTicketsByStatus lists tickets whose estado equals ?estado= exactly.
func (tc *TicketController) GetTicketsByStatus(c *gin.Context) {
	tickets, err := tc.Tickets.ByStatus(c.Request.Context(), c.Query("estado"))
	if errors.Is(err, services.ErrStatusRequired) {
		utils.RespondMessage(c, http.StatusBadRequest, "Estado no especificado")
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewTicketViews(tickets))
}

// GetTicketsByUser lists the tickets of ?usuario_id=.
func (tc *TicketController) GetTicketsByUser(c *gin.Context) {
	raw := c.Query("usuario_id")
	if raw == "" {
		utils.RespondMessage(c, http.StatusBadRequest, "Usuario no especificado")
		return
	}
	userID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		utils.RespondMessage(c, http.StatusBadRequest, "usuario_id debe ser un número entero")
		return
	}
	tickets, err := tc.Tickets.ByUser(c.Request.Context(), uint(userID))
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewTicketViews(tickets))
}

// ChangeStatus sets the ticket status from {"estado": ...}. "Completado"
// also stamps the exit time.
func (tc *TicketController) ChangeStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var body struct {
		Status string `json:"estado"`
	}
	// a malformed body is treated as a missing estado
	_ = c.ShouldBindJSON(&body)

	ticket, err := tc.Tickets.ChangeStatus(c.Request.Context(), id, body.Status)
	switch {
	case errors.Is(err, services.ErrTicketNotFound):
		utils.RespondMessage(c, http.StatusNotFound, msgNotFound)
		return
	case errors.Is(err, services.ErrStatusRequired):
		utils.RespondMessage(c, http.StatusBadRequest, "Estado no especificado")
		return
	case err != nil:
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, dto.NewTicketView(*ticket))
}
