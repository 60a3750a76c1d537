package services

import (
	"context"
	"errors"
	"time"

	"github.com/enapu/yard-backend/models"
	"github.com/enapu/yard-backend/utils"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// TicketService implements the ticket filters and the status transition.
type TicketService struct {
	db       *gorm.DB
	preloads []string
	now      func() time.Time
}

// NewTicketService returns a service that loads the given relations with
// every ticket it returns.
func NewTicketService(db *gorm.DB, preloads ...string) *TicketService {
	return &TicketService{db: db, preloads: preloads, now: time.Now}
}

func (s *TicketService) query(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx)
	for _, p := range s.preloads {
		q = q.Preload(p)
	}
	return q
}

// ByStatus lists tickets whose status equals status exactly.
func (s *TicketService) ByStatus(ctx context.Context, status string) ([]models.Ticket, error) {
	if status == "" {
		return nil, ErrStatusRequired
	}
	var tickets []models.Ticket
	err := s.query(ctx).Where("estado = ?", status).Order("id").Find(&tickets).Error
	return tickets, err
}

func (s *TicketService) ByUser(ctx context.Context, userID uint) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := s.query(ctx).Where("id_usuario = ?", userID).Order("id").Find(&tickets).Error
	return tickets, err
}

// ChangeStatus sets the ticket status and, for "Completado", its exit
// time. There is no transition guard and the slot is left untouched.
func (s *TicketService) ChangeStatus(ctx context.Context, id uint, status string) (*models.Ticket, error) {
	var ticket models.Ticket
	err := s.query(ctx).First(&ticket, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTicketNotFound
	}
	if err != nil {
		return nil, err
	}
	if status == "" {
		return nil, ErrStatusRequired
	}

	previous := ticket.Status
	ticket.ChangeStatus(status, s.now())

	updates := map[string]interface{}{
		"estado":             ticket.Status,
		"fecha_modificacion": ticket.ModifiedAt,
	}
	if status == models.TicketStatusCompleted {
		updates["fecha_hora_salida"] = ticket.ExitTime
	}
	if err := s.db.WithContext(ctx).Model(&models.Ticket{}).Where("id = ?", ticket.ID).Updates(updates).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.WithFields(logrus.Fields{
		"ticket_id": ticket.ID,
		"from":      previous,
		"to":        ticket.Status,
	}).Info("ticket status changed")
	return &ticket, nil
}
