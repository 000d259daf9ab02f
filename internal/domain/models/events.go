// File: internal/domain/models/events.go
package models

import (
	"time"
)

// UserRegisteredEvent is published when a new user completes registration.
type UserRegisteredEvent struct {
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registered_at"`
}

// UserLoginEvent is published upon successful user login.
type UserLoginEvent struct {
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	IPAddress string    `json:"ip_address,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	LoginAt   time.Time `json:"login_at"`
}

// SessionRevokedEvent is published when a single session is revoked.
type SessionRevokedEvent struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	RevokedAt time.Time `json:"revoked_at"`
}

// SessionsWipedEvent is published when all sessions of a user are revoked,
// including the replay-detection wipe.
type SessionsWipedEvent struct {
	UserID  string    `json:"user_id"`
	Reason  string    `json:"reason"` // "logout_all", "password_reset", "token_reuse"
	WipedAt time.Time `json:"wiped_at"`
}

// PasswordResetEvent is published when a password reset completes.
type PasswordResetEvent struct {
	UserID  string    `json:"user_id"`
	ResetAt time.Time `json:"reset_at"`
}

// PaymentCompletedEvent is published when a payment reaches COMPLETED.
type PaymentCompletedEvent struct {
	OrderID     string    `json:"order_id"`
	UserID      string    `json:"user_id"`
	Amount      int64     `json:"amount"`
	Currency    string    `json:"currency"`
	CompletedAt time.Time `json:"completed_at"`
}

// PaymentFailedEvent is published when a payment reaches FAILED.
type PaymentFailedEvent struct {
	OrderID  string    `json:"order_id"`
	UserID   string    `json:"user_id"`
	FailedAt time.Time `json:"failed_at"`
}

// TicketSoldEvent is published when a ticket order flips to PAID.
type TicketSoldEvent struct {
	TicketID string    `json:"ticket_id"`
	MatchID  string    `json:"match_id"`
	UserID   string    `json:"user_id"`
	Quantity int       `json:"quantity"`
	SoldAt   time.Time `json:"sold_at"`
}
