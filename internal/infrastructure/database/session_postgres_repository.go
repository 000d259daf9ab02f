// File: internal/infrastructure/database/session_postgres_repository.go
package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
	"github.com/Daniell17/football-app/internal/domain/repository"
)

const sessionColumns = `id, user_id, refresh_token_hash, ip_address, user_agent,
		device_label, expires_at, created_at, last_activity_at`

type pgxSessionRepository struct {
	pool *pgxpool.Pool
}

// NewPgxSessionRepository creates a new instance of pgxSessionRepository.
func NewPgxSessionRepository(pool *pgxpool.Pool) repository.SessionRepository {
	return &pgxSessionRepository{pool: pool}
}

var _ repository.SessionRepository = (*pgxSessionRepository)(nil)

func (r *pgxSessionRepository) Create(ctx context.Context, session *models.Session) error {
	query := `
		INSERT INTO sessions (id, user_id, refresh_token_hash, ip_address, user_agent, device_label, expires_at, created_at, last_activity_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := querierFrom(ctx, r.pool).Exec(ctx, query,
		session.ID, session.UserID, session.RefreshTokenHash, session.IPAddress,
		session.UserAgent, session.DeviceLabel, session.ExpiresAt,
		session.CreatedAt, session.LastActivityAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *pgxSessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1`
	return r.scanOne(querierFrom(ctx, r.pool).QueryRow(ctx, query, id))
}

func (r *pgxSessionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE id = $1 FOR UPDATE`
	return r.scanOne(querierFrom(ctx, r.pool).QueryRow(ctx, query, id))
}

func (r *pgxSessionRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM sessions WHERE user_id = $1 ORDER BY last_activity_at DESC`

	rows, err := querierFrom(ctx, r.pool).Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find sessions by user ID: %w", err)
	}
	defer rows.Close()

	var sessions []*models.Session
	for rows.Next() {
		session := &models.Session{}
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.RefreshTokenHash, &session.IPAddress,
			&session.UserAgent, &session.DeviceLabel, &session.ExpiresAt,
			&session.CreatedAt, &session.LastActivityAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session during find by user ID: %w", err)
		}
		sessions = append(sessions, session)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating sessions for user: %w", err)
	}
	return sessions, nil
}

func (r *pgxSessionRepository) RotateSecret(ctx context.Context, id uuid.UUID, refreshTokenHash string, expiresAt, lastActivityAt time.Time) error {
	query := `
		UPDATE sessions
		SET refresh_token_hash = $2, expires_at = $3, last_activity_at = $4
		WHERE id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, id, refreshTokenHash, expiresAt, lastActivityAt)
	if err != nil {
		return fmt.Errorf("failed to rotate session secret: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrSessionNotFound
	}
	return nil
}

func (r *pgxSessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM sessions WHERE id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrSessionNotFound
	}
	return nil
}

func (r *pgxSessionRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := `DELETE FROM sessions WHERE user_id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete sessions by user ID: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgxSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM sessions WHERE expires_at < $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, time.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *pgxSessionRepository) scanOne(row pgx.Row) (*models.Session, error) {
	session := &models.Session{}
	err := row.Scan(
		&session.ID, &session.UserID, &session.RefreshTokenHash, &session.IPAddress,
		&session.UserAgent, &session.DeviceLabel, &session.ExpiresAt,
		&session.CreatedAt, &session.LastActivityAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to scan session: %w", err)
	}
	return session, nil
}
