// File: internal/domain/service/interfaces.go
package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// PasswordService abstracts password hashing and verification.
type PasswordService interface {
	HashPassword(password string) (string, error)
	CheckPasswordHash(password, encodedHash string) (bool, error)
	// DummyCheck burns the same work as a real comparison. Called when the
	// account does not exist so login timing does not reveal that.
	DummyCheck()
}

// TOTPService abstracts TOTP secret generation and code validation.
type TOTPService interface {
	// GenerateSecret returns the base32 secret and the otpauth provisioning URL.
	GenerateSecret(accountName string) (string, string, error)
	ValidateCode(secretBase32 string, code string) (bool, error)
}

// BreachChecker tests whether a password appears in known breach corpora.
// Implementations must fail open: an unreachable checker returns (false, err)
// and callers treat the password as acceptable.
type BreachChecker interface {
	IsPwned(ctx context.Context, password string) (bool, error)
}

// RateLimiter is the shared attempt limiter for auth-adjacent endpoints.
type RateLimiter interface {
	// Consume records an attempt for key. When the attempt is rejected it
	// returns allowed=false and how long the caller must wait.
	Consume(ctx context.Context, key string) (allowed bool, retryAfter time.Duration, err error)
	Reset(ctx context.Context, key string) error
}

// Mailer sends transactional mail. Delivery is fire-and-forget.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to string, token string) error
}

// EventPublisher publishes domain events to the message bus.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, eventType string, subject string, payload interface{}) error
}

// AccessClaims are the claims carried by access tokens.
type AccessClaims struct {
	Role      string `json:"role"`
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// AccessTokenService mints and validates short-lived access tokens.
type AccessTokenService interface {
	Generate(userID string, role string, sessionID string) (string, error)
	Validate(tokenString string) (*AccessClaims, error)
	TTL() time.Duration
}
