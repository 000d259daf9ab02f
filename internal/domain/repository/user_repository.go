// File: internal/domain/repository/user_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Daniell17/football-app/internal/domain/models"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByResetToken(ctx context.Context, token string) (*models.User, error)

	// SetMFASecret stores an unconfirmed TOTP secret without enabling MFA.
	SetMFASecret(ctx context.Context, id uuid.UUID, secret string) error
	EnableMFA(ctx context.Context, id uuid.UUID) error

	SetResetToken(ctx context.Context, id uuid.UUID, token string, expiresAt time.Time) error
	// UpdatePassword replaces the hash and clears any pending reset token.
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}
