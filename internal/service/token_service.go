// File: internal/service/token_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/user_agent"
	"go.uber.org/zap"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
	"github.com/Daniell17/football-app/internal/domain/repository"
	domainService "github.com/Daniell17/football-app/internal/domain/service"
	"github.com/Daniell17/football-app/internal/events/kafka"
	"github.com/Daniell17/football-app/internal/utils/metrics"
)

// refreshSecretBytes is the entropy of a refresh secret before encoding.
const refreshSecretBytes = 32

// Причины отзыва всех сессий пользователя
const (
	WipeReasonLogoutAll     = "logout_all"
	WipeReasonPasswordReset = "password_reset"
	WipeReasonTokenReuse    = "token_reuse"
)

// TokenService управляет жизненным циклом сессий и пары токенов.
// Refresh токен имеет вид <sessionID>.<secret>; в базе хранится только
// argon2-хэш секрета, и каждый секрет одноразовый.
type TokenService struct {
	userRepo     repository.UserRepository
	sessionRepo  repository.SessionRepository
	txManager    repository.TxManager
	passwords    domainService.PasswordService
	accessTokens domainService.AccessTokenService
	publisher    domainService.EventPublisher
	authTopic    string
	sessionTTL   time.Duration
	logger       *zap.Logger
}

// NewTokenService создает новый TokenService.
func NewTokenService(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	txManager repository.TxManager,
	passwords domainService.PasswordService,
	accessTokens domainService.AccessTokenService,
	publisher domainService.EventPublisher,
	authTopic string,
	sessionTTL time.Duration,
	logger *zap.Logger,
) *TokenService {
	return &TokenService{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		txManager:    txManager,
		passwords:    passwords,
		accessTokens: accessTokens,
		publisher:    publisher,
		authTopic:    authTopic,
		sessionTTL:   sessionTTL,
		logger:       logger.Named("token_service"),
	}
}

// IssueSession создает новую сессию устройства и возвращает пару токенов.
func (s *TokenService) IssueSession(ctx context.Context, user *models.User, ip, userAgent string) (*models.TokenPair, *models.Session, error) {
	secret, err := newRefreshSecret()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate refresh secret: %w", err)
	}
	secretHash, err := s.passwords.HashPassword(secret)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash refresh secret: %w", err)
	}

	now := time.Now()
	session := &models.Session{
		ID:               uuid.New(),
		UserID:           user.ID,
		RefreshTokenHash: secretHash,
		DeviceLabel:      deviceLabel(userAgent),
		ExpiresAt:        now.Add(s.sessionTTL),
		CreatedAt:        now,
		LastActivityAt:   now,
	}
	if ip != "" {
		session.IPAddress = &ip
	}
	if userAgent != "" {
		session.UserAgent = &userAgent
	}

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, nil, err
	}
	metrics.ActiveSessions.Inc()

	pair, err := s.tokenPair(user, session.ID, secret)
	if err != nil {
		return nil, nil, err
	}
	return pair, session, nil
}

// Refresh проверяет и ротирует refresh токен. Несовпадение секрета при
// существующей сессии означает повторное использование уже ротированного
// токена: все сессии пользователя удаляются.
func (s *TokenService) Refresh(ctx context.Context, refreshToken string) (*models.TokenPair, error) {
	sessionID, secret, err := splitRefreshToken(refreshToken)
	if err != nil {
		metrics.TokenRefreshTotal.WithLabelValues("malformed").Inc()
		return nil, err
	}

	var pair *models.TokenPair
	// refreshErr carries outcomes that must still commit the transaction:
	// the expiry cleanup and the theft wipe are real state changes, a
	// rollback would undo them.
	var refreshErr error
	var wipedUserID uuid.UUID
	var sessionsRemoved int64

	txErr := s.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		// FOR UPDATE сериализует конкурентные refresh по одной сессии
		session, err := s.sessionRepo.FindByIDForUpdate(ctx, sessionID)
		if err != nil {
			return err
		}

		if session.ExpiresAt.Before(time.Now()) {
			if err := s.sessionRepo.Delete(ctx, session.ID); err != nil {
				return err
			}
			sessionsRemoved = 1
			refreshErr = domainErrors.ErrSessionExpired
			return nil
		}

		match, err := s.passwords.CheckPasswordHash(secret, session.RefreshTokenHash)
		if err != nil {
			return fmt.Errorf("failed to compare refresh secret: %w", err)
		}
		if !match {
			// Секрет уже ротирован: токен либо украден, либо повторен
			deleted, err := s.sessionRepo.DeleteByUserID(ctx, session.UserID)
			if err != nil {
				return err
			}
			sessionsRemoved = deleted
			wipedUserID = session.UserID
			s.logger.Warn("Refresh token reuse detected, all user sessions revoked",
				zap.String("session_id", session.ID.String()),
				zap.String("user_id", session.UserID.String()),
				zap.Int64("sessions_revoked", deleted),
			)
			refreshErr = domainErrors.ErrSessionTheftDetected
			return nil
		}

		user, err := s.userRepo.FindByID(ctx, session.UserID)
		if err != nil {
			return err
		}

		newSecret, err := newRefreshSecret()
		if err != nil {
			return fmt.Errorf("failed to generate refresh secret: %w", err)
		}
		newHash, err := s.passwords.HashPassword(newSecret)
		if err != nil {
			return fmt.Errorf("failed to hash refresh secret: %w", err)
		}

		now := time.Now()
		if err := s.sessionRepo.RotateSecret(ctx, session.ID, newHash, now.Add(s.sessionTTL), now); err != nil {
			return err
		}

		pair, err = s.tokenPair(user, session.ID, newSecret)
		return err
	})
	// Метрики и события трогаются только после коммита: откат транзакции не
	// должен оставлять счетчики разъехавшимися с базой
	committed := txErr == nil
	if committed {
		if sessionsRemoved > 0 {
			metrics.ActiveSessions.Sub(float64(sessionsRemoved))
		}
		if wipedUserID != uuid.Nil {
			metrics.SessionTheftTotal.Inc()
			s.publishSessionsWiped(ctx, wipedUserID, WipeReasonTokenReuse)
		}
		if refreshErr != nil {
			txErr = refreshErr
		}
	}
	if txErr != nil {
		metrics.TokenRefreshTotal.WithLabelValues("failure").Inc()
		return nil, txErr
	}

	metrics.TokenRefreshTotal.WithLabelValues("success").Inc()
	return pair, nil
}

// RevokeOne отзывает одну сессию (обычный logout текущего устройства).
func (s *TokenService) RevokeOne(ctx context.Context, sessionID uuid.UUID, userID uuid.UUID) error {
	if err := s.sessionRepo.Delete(ctx, sessionID); err != nil {
		return err
	}
	metrics.ActiveSessions.Dec()

	if err := s.publisher.Publish(ctx, s.authTopic, kafka.EventTypeSessionRevoked, userID.String(), models.SessionRevokedEvent{
		SessionID: sessionID.String(),
		UserID:    userID.String(),
		RevokedAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("Failed to publish session revoked event", zap.Error(err))
	}
	return nil
}

// RevokeAll отзывает все сессии пользователя.
func (s *TokenService) RevokeAll(ctx context.Context, userID uuid.UUID, reason string) (int64, error) {
	deleted, err := s.sessionRepo.DeleteByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}
	metrics.ActiveSessions.Sub(float64(deleted))
	s.publishSessionsWiped(ctx, userID, reason)
	return deleted, nil
}

func (s *TokenService) publishSessionsWiped(ctx context.Context, userID uuid.UUID, reason string) {
	if err := s.publisher.Publish(ctx, s.authTopic, kafka.EventTypeSessionsWiped, userID.String(), models.SessionsWipedEvent{
		UserID:  userID.String(),
		Reason:  reason,
		WipedAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("Failed to publish sessions wiped event", zap.Error(err))
	}
}

func (s *TokenService) tokenPair(user *models.User, sessionID uuid.UUID, secret string) (*models.TokenPair, error) {
	accessToken, err := s.accessTokens.Generate(user.ID.String(), user.Role, sessionID.String())
	if err != nil {
		return nil, err
	}
	return &models.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: fmt.Sprintf("%s.%s", sessionID.String(), secret),
		ExpiresIn:    int64(s.accessTokens.TTL().Seconds()),
	}, nil
}

// splitRefreshToken разбирает составной токен <sessionID>.<secret>.
func splitRefreshToken(token string) (uuid.UUID, string, error) {
	idPart, secret, found := strings.Cut(token, ".")
	if !found || secret == "" {
		return uuid.Nil, "", domainErrors.ErrMalformedToken
	}
	sessionID, err := uuid.Parse(idPart)
	if err != nil {
		return uuid.Nil, "", domainErrors.ErrMalformedToken
	}
	return sessionID, secret, nil
}

func newRefreshSecret() (string, error) {
	buf := make([]byte, refreshSecretBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// deviceLabel собирает человекочитаемую метку устройства из User-Agent
func deviceLabel(uaString string) string {
	if uaString == "" {
		return "Unknown device"
	}
	ua := user_agent.New(uaString)
	name, version := ua.Browser()
	if name == "" {
		return "Unknown device"
	}
	osInfo := ua.OS()
	if osInfo == "" {
		return fmt.Sprintf("%s %s", name, version)
	}
	return fmt.Sprintf("%s %s on %s", name, version, osInfo)
}
