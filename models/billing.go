package models

// Invoice bills a ticket.
type Invoice struct {
	ID        uint    `gorm:"column:id;primaryKey" json:"id"`
	IssueDate Date    `gorm:"column:fecha_emision;type:date;not null" json:"fecha_emision"`
	Amount    float64 `gorm:"column:monto;not null" json:"monto"`
	Status    string  `gorm:"column:estado;type:varchar(50);not null" json:"estado"`
	TicketID  uint    `gorm:"column:id_ticket;not null;index" json:"id_ticket"`
	Ticket    *Ticket `gorm:"foreignKey:TicketID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Invoice) TableName() string { return "Factura" }

// Payment settles all or part of an invoice.
type Payment struct {
	ID        uint     `gorm:"column:id;primaryKey" json:"id"`
	PayDate   Date     `gorm:"column:fecha_pago;type:date;not null" json:"fecha_pago"`
	Method    string   `gorm:"column:medio_pago;type:varchar(30);not null" json:"medio_pago"`
	Amount    float64  `gorm:"column:monto;not null" json:"monto"`
	InvoiceID uint     `gorm:"column:id_factura;not null;index" json:"id_factura"`
	Invoice   *Invoice `gorm:"foreignKey:InvoiceID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (Payment) TableName() string { return "Pago" }
