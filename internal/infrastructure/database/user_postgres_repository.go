// File: internal/infrastructure/database/user_postgres_repository.go
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

const userColumns = `id, email, password_hash, first_name, last_name, role,
		mfa_enabled, mfa_secret, reset_token, reset_token_expires_at, created_at, updated_at`

type pgxUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgxUserRepository creates a new instance of pgxUserRepository.
func NewPgxUserRepository(pool *pgxpool.Pool) repository.UserRepository {
	return &pgxUserRepository{pool: pool}
}

var _ repository.UserRepository = (*pgxUserRepository)(nil)

func (r *pgxUserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name, role, mfa_enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := querierFrom(ctx, r.pool).Exec(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.MFAEnabled, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domainErrors.ErrEmailExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *pgxUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.scanOne(querierFrom(ctx, r.pool).QueryRow(ctx, query, id))
}

func (r *pgxUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(querierFrom(ctx, r.pool).QueryRow(ctx, query, email))
}

func (r *pgxUserRepository) FindByResetToken(ctx context.Context, token string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE reset_token = $1`
	return r.scanOne(querierFrom(ctx, r.pool).QueryRow(ctx, query, token))
}

func (r *pgxUserRepository) SetMFASecret(ctx context.Context, id uuid.UUID, secret string) error {
	query := `UPDATE users SET mfa_secret = $2, updated_at = NOW() WHERE id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, id, secret)
	if err != nil {
		return fmt.Errorf("failed to set mfa secret: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

func (r *pgxUserRepository) EnableMFA(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE users SET mfa_enabled = TRUE, updated_at = NOW() WHERE id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to enable mfa: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

func (r *pgxUserRepository) SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error {
	query := `UPDATE users SET reset_token = $2, reset_token_expires_at = $3, updated_at = NOW() WHERE id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, id, token, expiresAt)
	if err != nil {
		return fmt.Errorf("failed to set reset token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

func (r *pgxUserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `
		UPDATE users
		SET password_hash = $2, reset_token = NULL, reset_token_expires_at = NULL, updated_at = NOW()
		WHERE id = $1`
	tag, err := querierFrom(ctx, r.pool).Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrUserNotFound
	}
	return nil
}

func (r *pgxUserRepository) scanOne(row pgx.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.Role, &user.MFAEnabled, &user.MFASecret, &user.ResetToken,
		&user.ResetTokenExpiresAt, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return user, nil
}
