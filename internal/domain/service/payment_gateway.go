// File: internal/domain/service/payment_gateway.go
package service

// PaymentRedirectRequest carries the parameters embedded in an outbound
// payment redirect. Field order here mirrors the canonical encoding order.
type PaymentRedirectRequest struct {
	OrderID     string
	Amount      int64 // минорные единицы (центы)
	Currency    string
	Email       string
	AcceptURL   string
	CancelURL   string
	CallbackURL string
}

// PaymentGateway builds signed outbound redirect URLs and verifies/decodes
// inbound callback payloads.
type PaymentGateway interface {
	BuildRedirect(req PaymentRedirectRequest) (string, error)
	// Verify recomputes the payload signature and compares it in constant
	// time. Decode must only be trusted after Verify returns true.
	Verify(encodedData, signature string) bool
	Decode(encodedData string) (map[string]string, error)
}
