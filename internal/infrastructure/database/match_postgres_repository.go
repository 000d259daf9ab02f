// File: internal/infrastructure/database/match_postgres_repository.go
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

const matchColumns = `id, home_team, away_team, venue, kickoff_at, status,
		ticket_price, total_tickets, tickets_sold, created_at, updated_at`

type pgxMatchRepository struct {
	pool *pgxpool.Pool
}

// NewPgxMatchRepository creates a new instance of pgxMatchRepository.
func NewPgxMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &pgxMatchRepository{pool: pool}
}

var _ repository.MatchRepository = (*pgxMatchRepository)(nil)

func (r *pgxMatchRepository) Create(ctx context.Context, match *models.Match) error {
	query := `
		INSERT INTO matches (id, home_team, away_team, venue, kickoff_at, status, ticket_price, total_tickets, tickets_sold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := querierFrom(ctx, r.pool).Exec(ctx, query,
		match.ID, match.HomeTeam, match.AwayTeam, match.Venue, match.KickoffAt,
		match.Status, match.TicketPrice, match.TotalTickets, match.TicketsSold,
		match.CreatedAt, match.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create match: %w", err)
	}
	return nil
}

func (r *pgxMatchRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches WHERE id = $1`
	match := &models.Match{}
	err := querierFrom(ctx, r.pool).QueryRow(ctx, query, id).Scan(
		&match.ID, &match.HomeTeam, &match.AwayTeam, &match.Venue, &match.KickoffAt,
		&match.Status, &match.TicketPrice, &match.TotalTickets, &match.TicketsSold,
		&match.CreatedAt, &match.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find match by ID: %w", err)
	}
	return match, nil
}

func (r *pgxMatchRepository) List(ctx context.Context, filter repository.MatchFilter) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches`
	var args []any
	switch {
	case filter.Status != "":
		query += ` WHERE status = $1`
		args = append(args, filter.Status)
	case filter.Upcoming:
		query += ` WHERE kickoff_at > NOW() AND status <> 'FINISHED'`
	}
	query += ` ORDER BY kickoff_at ASC`

	rows, err := querierFrom(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []*models.Match
	for rows.Next() {
		match := &models.Match{}
		if err := rows.Scan(
			&match.ID, &match.HomeTeam, &match.AwayTeam, &match.Venue, &match.KickoffAt,
			&match.Status, &match.TicketPrice, &match.TotalTickets, &match.TicketsSold,
			&match.CreatedAt, &match.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan match: %w", err)
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating matches: %w", err)
	}
	return matches, nil
}

func (r *pgxMatchRepository) Update(ctx context.Context, match *models.Match) error {
	query := `
		UPDATE matches
		SET home_team = $2, away_team = $3, venue = $4, kickoff_at = $5, status = $6,
		    ticket_price = $7, total_tickets = $8, updated_at = NOW()
		WHERE id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query,
		match.ID, match.HomeTeam, match.AwayTeam, match.Venue, match.KickoffAt,
		match.Status, match.TicketPrice, match.TotalTickets,
	)
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *pgxMatchRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM matches WHERE id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// SellTickets increments tickets_sold in a single guarded statement. The
// capacity and status checks live in the WHERE clause so concurrent
// confirmations can never oversell.
func (r *pgxMatchRepository) SellTickets(ctx context.Context, id uuid.UUID, quantity int) (bool, error) {
	query := `
		UPDATE matches
		SET tickets_sold = tickets_sold + $2, updated_at = NOW()
		WHERE id = $1
		  AND status <> 'FINISHED'
		  AND tickets_sold + $2 <= total_tickets`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, id, quantity)
	if err != nil {
		return false, fmt.Errorf("failed to sell tickets: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
