// File: internal/domain/repository/payment_repository.go
package repository

import (
	"context"

	"github.com/Daniell17/football-app/internal/domain/models"
)

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.Payment) error
	FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error)

	// TransitionFromPending moves the payment to a terminal status only if it
	// is still PENDING, retaining the gateway payload and signature for audit.
	// It reports false without an error when the payment has already left
	// PENDING, which is how duplicate callbacks are detected.
	TransitionFromPending(ctx context.Context, orderID string, status string, rawData, signature string) (bool, error)
}
