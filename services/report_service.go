package services

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/utils"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

const (
	ReportTypeTickets  = "tickets"
	ReportTypeInvoices = "facturas"

	maxParametersLength = 50
	dateTimeLayout      = "2006-01-02 15:04"
)

var (
	ticketHeaders = []interface{}{
		"ID", "Entrada", "Salida", "Estado", "Zona", "Fila", "Columna", "Nivel",
		"Código de barras", "Contenedor", "Tipo", "Usuario",
	}
	invoiceHeaders = []interface{}{
		"ID", "Fecha de emisión", "Ticket", "Estado", "Monto", "Pagado", "Saldo",
	}
)

// ReportService builds spreadsheet exports and records each one as a
// Reporte row.
type ReportService struct {
	db       *gorm.DB
	payments *PaymentService
	now      func() time.Time
	render   func(*excelize.File) (*bytes.Buffer, error)
}

func NewReportService(db *gorm.DB, payments *PaymentService) *ReportService {
	return &ReportService{
		db:       db,
		payments: payments,
		now:      time.Now,
		render:   func(f *excelize.File) (*bytes.Buffer, error) { return f.WriteToBuffer() },
	}
}

// Export builds the workbook for kind ("tickets" or "facturas") and
// returns its XLSX bytes. An "estado" entry in params filters rows by
// status. The Reporte row is stored only once the workbook has been
// rendered.
func (s *ReportService) Export(ctx context.Context, kind string, params url.Values) ([]byte, *models.Report, error) {
	var (
		f   *excelize.File
		err error
	)
	status := params.Get("estado")
	switch kind {
	case ReportTypeTickets:
		f, err = s.ticketsWorkbook(ctx, status)
	case ReportTypeInvoices:
		f, err = s.invoicesWorkbook(ctx, status)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownReportType, kind)
	}
	if err != nil {
		return nil, nil, err
	}
	buf, err := s.render(f)
	f.Close()
	if err != nil {
		return nil, nil, fmt.Errorf("rendering %s workbook: %w", kind, err)
	}

	report := models.Report{
		Type:        kind,
		GeneratedOn: models.NewDate(s.now()),
		Parameters:  CanonicalParameters(params),
	}
	if err := s.db.WithContext(ctx).Create(&report).Error; err != nil {
		return nil, nil, err
	}
	utils.InfoLogger.WithField("report_id", report.ID).Infof("report %s exported", kind)
	return buf.Bytes(), &report, nil
}

// CanonicalParameters encodes params with sorted keys, cut to fit the
// parametros column.
func CanonicalParameters(params url.Values) string {
	encoded := params.Encode()
	if len(encoded) > maxParametersLength {
		encoded = encoded[:maxParametersLength]
	}
	return encoded
}

func (s *ReportService) ticketsWorkbook(ctx context.Context, status string) (*excelize.File, error) {
	q := s.db.WithContext(ctx).Preload("Slot.Zone").Preload("User").Preload("Container").Order("id")
	if status != "" {
		q = q.Where("estado = ?", status)
	}
	var tickets []models.Ticket
	if err := q.Find(&tickets).Error; err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(tickets))
	for _, t := range tickets {
		exit := ""
		if t.ExitTime != nil {
			exit = t.ExitTime.Format(dateTimeLayout)
		}
		row := []interface{}{t.ID, t.EntryTime.Format(dateTimeLayout), exit, t.Status, "", "", "", "", "", "", "", ""}
		if t.Slot != nil {
			row[5], row[6], row[7] = t.Slot.Row, t.Slot.Column, t.Slot.Level
			if t.Slot.Zone != nil {
				row[4] = t.Slot.Zone.Name
			}
		}
		if t.Container != nil {
			row[8] = deref(t.Container.Barcode)
			row[9] = deref(t.Container.Number)
			row[10] = t.Container.Type
		}
		if t.User != nil {
			row[11] = t.User.Name
		}
		rows = append(rows, row)
	}
	return buildWorkbook("Tickets", ticketHeaders, rows)
}

func (s *ReportService) invoicesWorkbook(ctx context.Context, status string) (*excelize.File, error) {
	q := s.db.WithContext(ctx).Order("id")
	if status != "" {
		q = q.Where("estado = ?", status)
	}
	var invoices []models.Invoice
	if err := q.Find(&invoices).Error; err != nil {
		return nil, err
	}

	ids := make([]uint, 0, len(invoices))
	for _, inv := range invoices {
		ids = append(ids, inv.ID)
	}
	paid, err := s.payments.PaidTotals(ctx, ids)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []interface{}{
			inv.ID,
			inv.IssueDate.String(),
			inv.TicketID,
			inv.Status,
			utils.FormatCurrencyPEN(inv.Amount),
			utils.FormatCurrencyPEN(paid[inv.ID]),
			utils.FormatCurrencyPEN(inv.Amount - paid[inv.ID]),
		})
	}
	return buildWorkbook("Facturas", invoiceHeaders, rows)
}

func buildWorkbook(sheet string, headers []interface{}, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, err
	}
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return nil, err
	}

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetColWidth(sheet, "B", lastCol, 18); err != nil {
		return nil, err
	}
	return f, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
