// File: internal/domain/models/payment.go
package models

import (
	"time"

	"github.com/google/uuid"
)

// Статусы платежей
const (
	PaymentStatusPending    = "PENDING"
	PaymentStatusProcessing = "PROCESSING"
	PaymentStatusCompleted  = "COMPLETED"
	PaymentStatusFailed     = "FAILED"
	PaymentStatusRefunded   = "REFUNDED"
)

// IsTerminalPaymentStatus reports whether a payment can no longer change state
// through gateway callbacks.
func IsTerminalPaymentStatus(status string) bool {
	return status == PaymentStatusCompleted ||
		status == PaymentStatusFailed ||
		status == PaymentStatusRefunded
}

// Payment represents a gateway payment. OrderID is the identifier shared with
// the gateway; callbacks address payments by it, never by the internal ID.
type Payment struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	OrderID     string     `json:"order_id" db:"order_id"`
	UserID      uuid.UUID  `json:"user_id" db:"user_id"`
	Amount      int64      `json:"amount" db:"amount"` // минорные единицы (центы)
	Currency    string     `json:"currency" db:"currency"`
	Status      string     `json:"status" db:"status"`
	RawData     *string    `json:"-" db:"raw_data"`   // последний payload шлюза, для аудита
	Signature   *string    `json:"-" db:"signature"`  // подпись этого payload
	CompletedAt *time.Time `json:"completed_at,omitempty" db:"completed_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// PurchaseResponse is returned by payment initialization.
type PurchaseResponse struct {
	OrderID     string `json:"order_id"`
	RedirectURL string `json:"redirect_url"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
}

// PaymentStatusResponse is the read-only projection for status polling.
type PaymentStatusResponse struct {
	OrderID     string     `json:"order_id"`
	Status      string     `json:"status"`
	Amount      int64      `json:"amount"`
	Currency    string     `json:"currency"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}
