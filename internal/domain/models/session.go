// File: internal/domain/models/session.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Session represents a device session. RefreshTokenHash holds the argon2
// hash of the current single-use refresh secret; the secret itself is only
// ever returned to the client inside the composite refresh token.
type Session struct {
	ID               uuid.UUID `json:"id" db:"id"`
	UserID           uuid.UUID `json:"user_id" db:"user_id"`
	RefreshTokenHash string    `json:"-" db:"refresh_token_hash"`
	IPAddress        *string   `json:"ip_address,omitempty" db:"ip_address"`
	UserAgent        *string   `json:"user_agent,omitempty" db:"user_agent"`
	DeviceLabel      string    `json:"device_label" db:"device_label"`
	ExpiresAt        time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	LastActivityAt   time.Time `json:"last_activity_at" db:"last_activity_at"`
}

// SessionResponse structures the session data returned by API endpoints.
type SessionResponse struct {
	ID             uuid.UUID `json:"id"`
	IPAddress      *string   `json:"ip_address,omitempty"`
	DeviceLabel    string    `json:"device_label"`
	CreatedAt      time.Time `json:"created_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	Current        bool      `json:"current"`
}

// ToResponse converts a Session model to an API SessionResponse.
// currentID marks the session the caller is authenticated with.
func (s *Session) ToResponse(currentID uuid.UUID) SessionResponse {
	return SessionResponse{
		ID:             s.ID,
		IPAddress:      s.IPAddress,
		DeviceLabel:    s.DeviceLabel,
		CreatedAt:      s.CreatedAt,
		LastActivityAt: s.LastActivityAt,
		ExpiresAt:      s.ExpiresAt,
		Current:        s.ID == currentID,
	}
}

// TokenPair is what a successful login or refresh returns to the client.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
