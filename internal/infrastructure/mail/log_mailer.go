// File: internal/infrastructure/mail/log_mailer.go
package mail

import (
	"context"

	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/config"
	"github.com/Daniell17/football-app/internal/domain/service"
)

// logMailer записывает письма в лог вместо реальной отправки. Боевая
// доставка живет в отдельном сервисе, сюда приходит только факт отправки.
type logMailer struct {
	fromAddress string
	logger      *zap.Logger
}

// NewLogMailer creates a Mailer that logs outbound mail.
func NewLogMailer(cfg config.MailConfig, logger *zap.Logger) service.Mailer {
	return &logMailer{
		fromAddress: cfg.FromAddress,
		logger:      logger.Named("mailer"),
	}
}

var _ service.Mailer = (*logMailer)(nil)

func (m *logMailer) SendPasswordReset(ctx context.Context, to string, token string) error {
	m.logger.Info("Password reset mail queued",
		zap.String("from", m.fromAddress),
		zap.String("to", to),
		zap.Int("token_length", len(token)),
	)
	return nil
}
