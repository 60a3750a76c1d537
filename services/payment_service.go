package services

import (
	"context"

	"github.com/enapu/yard-backend/models"
	"gorm.io/gorm"
)

// PaymentService answers billing questions that span invoices and payments.
type PaymentService struct {
	db *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{
		db: db,
	}
}

// PaidTotals sums the payments recorded against each of the given invoices.
// Invoices without payments are absent from the result.
func (s *PaymentService) PaidTotals(ctx context.Context, invoiceIDs []uint) (map[uint]float64, error) {
	totals := make(map[uint]float64, len(invoiceIDs))
	if len(invoiceIDs) == 0 {
		return totals, nil
	}

	var rows []struct {
		InvoiceID uint
		Total     float64
	}
	err := s.db.WithContext(ctx).
		Model(&models.Payment{}).
		Select("id_factura AS invoice_id, SUM(monto) AS total").
		Where("id_factura IN ?", invoiceIDs).
		Group("id_factura").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		totals[r.InvoiceID] = r.Total
	}
	return totals, nil
}

// PaymentsForInvoice lists an invoice's payments, oldest first.
func (s *PaymentService) PaymentsForInvoice(ctx context.Context, invoiceID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := s.db.WithContext(ctx).
		Where("id_factura = ?", invoiceID).
		Order("fecha_pago, id").
		Find(&payments).Error
	return payments, err
}
