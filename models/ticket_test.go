package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTicketChangeStatus(t *testing.T) {
	now := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		status   string
		wantExit bool
	}{
		{"completed stamps exit", "Completado", true},
		{"in progress leaves exit", "En Proceso", false},
		{"lowercase is not completion", "completado", false},
		{"arbitrary status accepted", "Observado", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ticket := Ticket{Status: "EN_PROCESO"}
			ticket.ChangeStatus(tt.status, now)

			assert.Equal(t, tt.status, ticket.Status)
			assert.Equal(t, &now, ticket.ModifiedAt)
			if tt.wantExit {
				assert.Equal(t, &now, ticket.ExitTime)
			} else {
				assert.Nil(t, ticket.ExitTime)
			}
		})
	}
}

func TestTicketChangeStatusRecompletes(t *testing.T) {
	first := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)
	ticket := Ticket{}

	ticket.ChangeStatus(TicketStatusCompleted, first)
	ticket.ChangeStatus(TicketStatusPending, first.Add(time.Minute))
	assert.Equal(t, &first, ticket.ExitTime)

	ticket.ChangeStatus(TicketStatusCompleted, second)
	assert.Equal(t, &second, ticket.ExitTime)
}

func TestNormalizeTicketStatus(t *testing.T) {
	tests := map[string]string{
		"EN_PROCESO": "En Proceso",
		"en cola":    "En Cola",
		"COMPLETADO": "Completado",
		"Pendiente":  "Pendiente",
		" validado ": "Validado",
		"Observado":  "Observado",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormalizeTicketStatus(in), in)
	}
}
