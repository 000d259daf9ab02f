// File: internal/domain/models/ticket.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы билетов
const (
	TicketStatusPending   = "PENDING"
	TicketStatusPaid      = "PAID"
	TicketStatusCancelled = "CANCELLED"
)

// Ticket represents a ticket order line created at purchase initialization.
// It stays PENDING until the gateway confirms or rejects the linked payment.
type Ticket struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	MatchID   uuid.UUID `json:"match_id" db:"match_id"`
	PaymentID uuid.UUID `json:"payment_id" db:"payment_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	TotalPaid int64     `json:"total_paid" db:"total_paid"` // минорные единицы (центы)
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
