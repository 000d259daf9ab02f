// File: internal/infrastructure/database/payment_postgres_repository.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
	"github.com/Daniell17/football-app/internal/domain/repository"
)

const paymentColumns = `id, order_id, user_id, amount, currency, status,
		raw_data, signature, completed_at, created_at, updated_at`

type pgxPaymentRepository struct {
	pool *pgxpool.Pool
}

// NewPgxPaymentRepository creates a new instance of pgxPaymentRepository.
func NewPgxPaymentRepository(pool *pgxpool.Pool) repository.PaymentRepository {
	return &pgxPaymentRepository{pool: pool}
}

var _ repository.PaymentRepository = (*pgxPaymentRepository)(nil)

func (r *pgxPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (id, order_id, user_id, amount, currency, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := querierFrom(ctx, r.pool).Exec(ctx, query,
		payment.ID, payment.OrderID, payment.UserID, payment.Amount,
		payment.Currency, payment.Status, payment.CreatedAt, payment.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create payment: %w", err)
	}
	return nil
}

func (r *pgxPaymentRepository) FindByOrderID(ctx context.Context, orderID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE order_id = $1`
	payment := &models.Payment{}
	err := querierFrom(ctx, r.pool).QueryRow(ctx, query, orderID).Scan(
		&payment.ID, &payment.OrderID, &payment.UserID, &payment.Amount,
		&payment.Currency, &payment.Status, &payment.RawData, &payment.Signature,
		&payment.CompletedAt, &payment.CreatedAt, &payment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to find payment by order ID: %w", err)
	}
	return payment, nil
}

// TransitionFromPending is the idempotency gate for gateway callbacks: only
// one delivery can ever move a payment out of PENDING.
func (r *pgxPaymentRepository) TransitionFromPending(ctx context.Context, orderID string, status string, rawData, signature string) (bool, error) {
	query := `
		UPDATE payments
		SET status = $2,
		    raw_data = $3,
		    signature = $4,
		    completed_at = CASE WHEN $2 = 'COMPLETED' THEN NOW() ELSE completed_at END,
		    updated_at = NOW()
		WHERE order_id = $1 AND status = 'PENDING'`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, orderID, status, rawData, signature)
	if err != nil {
		return false, fmt.Errorf("failed to transition payment: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
