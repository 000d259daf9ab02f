// File: internal/events/kafka/topics.go
package kafka

// Типы событий CloudEvents, публикуемых сервисом
const (
	EventTypeUserRegistered   = "club.auth.user.registered"
	EventTypeUserLogin        = "club.auth.user.login"
	EventTypeSessionRevoked   = "club.auth.session.revoked"
	EventTypeSessionsWiped    = "club.auth.sessions.wiped"
	EventTypePasswordReset    = "club.auth.password.reset"
	EventTypePaymentCompleted = "club.billing.payment.completed"
	EventTypePaymentFailed    = "club.billing.payment.failed"
	EventTypeTicketSold       = "club.tickets.ticket.sold"
)
