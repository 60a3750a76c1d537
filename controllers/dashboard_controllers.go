package controllers

import (
	"net/http"

	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type statusCount struct {
	Status string `json:"estado"`
	Total  int64  `json:"total"`
}

// GetDashboardStats summarizes yard occupancy, ticket flow and billing.
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	db := dc.DB.WithContext(c.Request.Context())

	var stats struct {
		Tickets struct {
			Total    int64         `json:"total"`
			Open     int64         `json:"abiertos"`
			ByStatus []statusCount `json:"por_estado"`
		} `json:"tickets"`
		Slots struct {
			Total     int64 `json:"total"`
			Occupied  int64 `json:"ocupados"`
			Available int64 `json:"disponibles"`
		} `json:"slots"`
		Users struct {
			Total  int64 `json:"total"`
			Active int64 `json:"activos"`
		} `json:"usuarios"`
		Containers int64 `json:"contenedores"`
		Ships      int64 `json:"buques"`
		Billing    struct {
			Invoiced float64 `json:"facturado"`
			Paid     float64 `json:"pagado"`
		} `json:"facturacion"`
	}

	counts := []struct {
		q    *gorm.DB
		dest *int64
	}{
		{db.Model(&models.Ticket{}), &stats.Tickets.Total},
		{db.Model(&models.Ticket{}).Where("fecha_hora_salida IS NULL"), &stats.Tickets.Open},
		{db.Model(&models.Slot{}), &stats.Slots.Total},
		{db.Model(&models.Slot{}).Where("estado = ?", models.SlotStatusOccupied), &stats.Slots.Occupied},
		{db.Model(&models.Slot{}).Where("estado = ?", models.SlotStatusFree), &stats.Slots.Available},
		{db.Model(&models.User{}), &stats.Users.Total},
		{db.Model(&models.User{}).Where("activo = ?", true), &stats.Users.Active},
		{db.Model(&models.Container{}), &stats.Containers},
		{db.Model(&models.Ship{}), &stats.Ships},
	}
	for _, q := range counts {
		if err := q.q.Count(q.dest).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	err := db.Model(&models.Ticket{}).
		Select("estado AS status, COUNT(*) AS total").
		Group("estado").
		Order("estado").
		Scan(&stats.Tickets.ByStatus).Error
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if stats.Tickets.ByStatus == nil {
		stats.Tickets.ByStatus = []statusCount{}
	}

	if err := db.Model(&models.Invoice{}).Select("COALESCE(SUM(monto), 0)").Row().Scan(&stats.Billing.Invoiced); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := db.Model(&models.Payment{}).Select("COALESCE(SUM(monto), 0)").Row().Scan(&stats.Billing.Paid); err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, stats)
}
