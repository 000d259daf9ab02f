// File: internal/infrastructure/database/ticket_postgres_repository.go
package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
	"github.com/Daniell17/football-app/internal/domain/repository"
)

const ticketColumns = `id, user_id, match_id, payment_id, quantity, total_paid, status, created_at, updated_at`

type pgxTicketRepository struct {
	pool *pgxpool.Pool
}

// NewPgxTicketRepository creates a new instance of pgxTicketRepository.
func NewPgxTicketRepository(pool *pgxpool.Pool) repository.TicketRepository {
	return &pgxTicketRepository{pool: pool}
}

var _ repository.TicketRepository = (*pgxTicketRepository)(nil)

func (r *pgxTicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	query := `
		INSERT INTO tickets (id, user_id, match_id, payment_id, quantity, total_paid, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := querierFrom(ctx, r.pool).Exec(ctx, query,
		ticket.ID, ticket.UserID, ticket.MatchID, ticket.PaymentID,
		ticket.Quantity, ticket.TotalPaid, ticket.Status, ticket.CreatedAt, ticket.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}
	return nil
}

func (r *pgxTicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE id = $1`
	return r.scanOne(querierFrom(ctx, r.pool).QueryRow(ctx, query, id))
}

func (r *pgxTicketRepository) FindByPaymentID(ctx context.Context, paymentID uuid.UUID) (*models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE payment_id = $1`
	return r.scanOne(querierFrom(ctx, r.pool).QueryRow(ctx, query, paymentID))
}

func (r *pgxTicketRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE user_id = $1 ORDER BY created_at DESC`

	rows, err := querierFrom(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets by user ID: %w", err)
	}
	defer rows.Close()

	var tickets []*models.Ticket
	for rows.Next() {
		ticket := &models.Ticket{}
		if err := rows.Scan(
			&ticket.ID, &ticket.UserID, &ticket.MatchID, &ticket.PaymentID,
			&ticket.Quantity, &ticket.TotalPaid, &ticket.Status, &ticket.CreatedAt, &ticket.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ticket: %w", err)
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating tickets: %w", err)
	}
	return tickets, nil
}

func (r *pgxTicketRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	query := `UPDATE tickets SET status = $2, updated_at = NOW() WHERE id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("failed to update ticket status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *pgxTicketRepository) scanOne(row pgx.Row) (*models.Ticket, error) {
	ticket := &models.Ticket{}
	err := row.Scan(
		&ticket.ID, &ticket.UserID, &ticket.MatchID, &ticket.PaymentID,
		&ticket.Quantity, &ticket.TotalPaid, &ticket.Status, &ticket.CreatedAt, &ticket.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan ticket: %w", err)
	}
	return ticket, nil
}
