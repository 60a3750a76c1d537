package controllers

import (
	"net/http"

	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/services"
	"github.com/enapu/yard-backend/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type InvoiceController struct {
	DB       *gorm.DB
	Payments *services.PaymentService
}

func NewInvoiceController(db *gorm.DB, payments *services.PaymentService) *InvoiceController {
	return &InvoiceController{DB: db, Payments: payments}
}

func (ic *InvoiceController) GetAllInvoices(c *gin.Context) {
	var invoices []models.Invoice
	if !list(c, ic.DB, &invoices) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, invoices)
}

func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var body struct {
		IssueDate *models.Date `json:"fecha_emision" binding:"required"`
		Amount    *float64     `json:"monto" binding:"required"`
		Status    string       `json:"estado" binding:"required,notblank,max=50"`
		TicketID  uint         `json:"id_ticket" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, ic.DB, ref("id_ticket", &models.Ticket{}, &body.TicketID)) {
		return
	}
	invoice := models.Invoice{
		IssueDate: *body.IssueDate,
		Amount:    *body.Amount,
		Status:    body.Status,
		TicketID:  body.TicketID,
	}
	if !create(c, ic.DB, &invoice) {
		return
	}
	utils.RespondJSON(c, http.StatusCreated, invoice)
}

func (ic *InvoiceController) GetInvoiceByID(c *gin.Context) {
	var invoice models.Invoice
	if !findByID(c, ic.DB, &invoice) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, invoice)
}

func (ic *InvoiceController) UpdateInvoice(c *gin.Context) {
	var invoice models.Invoice
	if !findByID(c, ic.DB, &invoice) {
		return
	}
	var body struct {
		IssueDate *models.Date `json:"fecha_emision"`
		Amount    *float64     `json:"monto"`
		Status    *string      `json:"estado" binding:"omitempty,notblank,max=50"`
		TicketID  *uint        `json:"id_ticket" binding:"omitempty,min=1"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, ic.DB, ref("id_ticket", &models.Ticket{}, body.TicketID)) {
		return
	}
	if body.IssueDate != nil {
		invoice.IssueDate = *body.IssueDate
	}
	if body.Amount != nil {
		invoice.Amount = *body.Amount
	}
	if body.Status != nil {
		invoice.Status = *body.Status
	}
	if body.TicketID != nil {
		invoice.TicketID = *body.TicketID
	}
	if !save(c, ic.DB, &invoice) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, invoice)
}

func (ic *InvoiceController) DeleteInvoice(c *gin.Context) {
	destroy(c, ic.DB, &models.Invoice{})
}

// GetInvoicePayments lists the payments of one invoice with the amount
// still owed.
func (ic *InvoiceController) GetInvoicePayments(c *gin.Context) {
	var invoice models.Invoice
	if !findByID(c, ic.DB, &invoice) {
		return
	}
	payments, err := ic.Payments.PaymentsForInvoice(c.Request.Context(), invoice.ID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var paid float64
	for _, p := range payments {
		paid += p.Amount
	}
	utils.RespondJSON(c, http.StatusOK, gin.H{
		"id_factura": invoice.ID,
		"monto":      invoice.Amount,
		"pagado":     paid,
		"saldo":      invoice.Amount - paid,
		"pagos":      payments,
	})
}

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	var payments []models.Payment
	if !list(c, pc.DB, &payments) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, payments)
}

func (pc *PaymentController) CreatePayment(c *gin.Context) {
	var body struct {
		PayDate   *models.Date `json:"fecha_pago" binding:"required"`
		Method    string       `json:"medio_pago" binding:"required,notblank,max=30"`
		Amount    *float64     `json:"monto" binding:"required"`
		InvoiceID uint         `json:"id_factura" binding:"required"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, pc.DB, ref("id_factura", &models.Invoice{}, &body.InvoiceID)) {
		return
	}
	payment := models.Payment{
		PayDate:   *body.PayDate,
		Method:    body.Method,
		Amount:    *body.Amount,
		InvoiceID: body.InvoiceID,
	}
	if !create(c, pc.DB, &payment) {
		return
	}
	utils.InfoLogger.Printf("Payment %d registered for invoice %d", payment.ID, payment.InvoiceID)
	utils.RespondJSON(c, http.StatusCreated, payment)
}

func (pc *PaymentController) GetPaymentByID(c *gin.Context) {
	var payment models.Payment
	if !findByID(c, pc.DB, &payment) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, payment)
}

func (pc *PaymentController) UpdatePayment(c *gin.Context) {
	var payment models.Payment
	if !findByID(c, pc.DB, &payment) {
		return
	}
	var body struct {
		PayDate   *models.Date `json:"fecha_pago"`
		Method    *string      `json:"medio_pago" binding:"omitempty,notblank,max=30"`
		Amount    *float64     `json:"monto"`
		InvoiceID *uint        `json:"id_factura" binding:"omitempty,min=1"`
	}
	if !bindJSON(c, &body) {
		return
	}
	if !checkReferences(c, pc.DB, ref("id_factura", &models.Invoice{}, body.InvoiceID)) {
		return
	}
	if body.PayDate != nil {
		payment.PayDate = *body.PayDate
	}
	if body.Method != nil {
		payment.Method = *body.Method
	}
	if body.Amount != nil {
		payment.Amount = *body.Amount
	}
	if body.InvoiceID != nil {
		payment.InvoiceID = *body.InvoiceID
	}
	if !save(c, pc.DB, &payment) {
		return
	}
	utils.RespondJSON(c, http.StatusOK, payment)
}

func (pc *PaymentController) DeletePayment(c *gin.Context) {
	destroy(c, pc.DB, &models.Payment{})
}
