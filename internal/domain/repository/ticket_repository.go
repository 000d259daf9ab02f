// File: internal/domain/repository/ticket_repository.go
package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/Daniell17/football-app/internal/domain/models"
)

// TicketRepository defines persistence operations for ticket orders.
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error)
	FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*models.Ticket, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Ticket, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
}
