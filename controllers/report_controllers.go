package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/services"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportController struct {
	DB      *gorm.DB
	Reports *services.ReportService
}

func NewReportController(db *gorm.DB, reports *services.ReportService) *ReportController {
	return &ReportController{DB: db, Reports: reports}
}

func (rc *ReportController) GetAllReports(c *gin.Context) {
	var reports []models.Report
	if !list(c, rc.DB, &reports) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, reports)
}

func (rc *ReportController) CreateReport(c *gin.Context) {
	var body struct {
		Type        string       `json:"tipo" binding:"required,notblank,max=50"`
		GeneratedOn *models.Date `json:"fecha_generacion" binding:"required"`
		Parameters  string       `json:"parametros" binding:"required,max=50"`
	}
	if !bindJSON(c, &body) {
		return
	}
	report := models.Report{Type: body.Type, GeneratedOn: *body.GeneratedOn, Parameters: body.Parameters}
	if !create(c, rc.DB, &report) {
		return
	}
	utils.RespondJSON(c, http.StatusCreated, report)
}

func (rc *ReportController) GetReportByID(c *gin.Context) {
	var report models.Report
	if !findByID(c, rc.DB, &report) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, report)
}

func (rc *ReportController) UpdateReport(c *gin.Context) {
	var report models.Report
	if !findByID(c, rc.DB, &report) {
		return
	}
	var body struct {
		Type        *string      `json:"tipo" binding:"omitempty,notblank,max=50"`
		GeneratedOn *models.Date `json:"fecha_generacion"`
		Parameters  *string      `json:"parametros" binding:"omitempty,max=50"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if body.Type != nil {
		report.Type = *body.Type
	}
	if body.GeneratedOn != nil {
		report.GeneratedOn = *body.GeneratedOn
	}
	if body.Parameters != nil {
		report.Parameters = *body.Parameters
	}
	if !save(c, rc.DB, &report) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, report)
}

func (rc *ReportController) DeleteReport(c *gin.Context) {
	destroy(c, rc.DB, &models.Report{})
}

// ExportReport sends ?tipo=tickets|facturas as an XLSX workbook and
// records the export as a Reporte row.
func (rc *ReportController) ExportReport(c *gin.Context) {
	kind := c.Query("tipo")
	if kind == "" {
		utils.RespondMessage(c, http.StatusBadRequest, "Tipo de reporte no especificado")
		return
	}

	body, report, err := rc.Reports.Export(c.Request.Context(), kind, c.Request.URL.Query())
	if errors.Is(err, services.ErrUnknownReportType) {
		utils.RespondMessage(c, http.StatusBadRequest, fmt.Sprintf("Tipo de reporte no soportado: %s", kind))
		return
	}
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	fileName := fmt.Sprintf("reporte_%s_%s.xlsx", kind, report.GeneratedOn.String())
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	c.Header("X-Report-ID", fmt.Sprint(report.ID))
	c.Data(http.StatusOK, xlsxContentType, body)
}
