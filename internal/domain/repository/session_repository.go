// File: internal/domain/repository/session_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Daniell17/football-app/internal/domain/models"
)

// SessionRepository defines persistence operations for device sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *models.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Session, error)
	// FindByIDForUpdate locks the session row for the duration of the
	// surrounding transaction. Refresh rotation must go through this so
	// concurrent presentations of the same token serialize.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Session, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Session, error)

	// RotateSecret replaces the stored refresh secret hash and slides the
	// expiry and activity timestamps forward.
	RotateSecret(ctx context.Context, id uuid.UUID, refreshTokenHash string, expiresAt, lastActivityAt time.Time) error

	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByUserID removes every session of the user and returns how many
	// rows were removed.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
