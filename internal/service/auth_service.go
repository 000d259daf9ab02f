// File: internal/service/auth_service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
	"github.com/Daniell17/football-app/internal/domain/repository"
	domainService "github.com/Daniell17/football-app/internal/domain/service"
	"github.com/Daniell17/football-app/internal/events/kafka"
	"github.com/Daniell17/football-app/internal/utils/metrics"
)

// resetTokenBytes is the entropy of a password reset token before hex encoding.
const resetTokenBytes = 32

// AuthService реализует регистрацию, вход, восстановление пароля и MFA.
type AuthService struct {
	userRepo      repository.UserRepository
	passwords     domainService.PasswordService
	breachChecker domainService.BreachChecker
	totp          domainService.TOTPService
	tokens        *TokenService
	mailer        domainService.Mailer
	publisher     domainService.EventPublisher
	authTopic     string
	resetTokenTTL time.Duration
	logger        *zap.Logger
}

// NewAuthService создает новый AuthService.
func NewAuthService(
	userRepo repository.UserRepository,
	passwords domainService.PasswordService,
	breachChecker domainService.BreachChecker,
	totp domainService.TOTPService,
	tokens *TokenService,
	mailer domainService.Mailer,
	publisher domainService.EventPublisher,
	authTopic string,
	resetTokenTTL time.Duration,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:      userRepo,
		passwords:     passwords,
		breachChecker: breachChecker,
		totp:          totp,
		tokens:        tokens,
		mailer:        mailer,
		publisher:     publisher,
		authTopic:     authTopic,
		resetTokenTTL: resetTokenTTL,
		logger:        logger.Named("auth_service"),
	}
}

// Register создает нового пользователя с ролью USER.
func (s *AuthService) Register(ctx context.Context, email, password, firstName, lastName string) (*models.UserResponse, error) {
	if err := s.rejectBreachedPassword(ctx, password); err != nil {
		return nil, err
	}

	hash, err := s.passwords.HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    firstName,
		LastName:     lastName,
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.publisher.Publish(ctx, s.authTopic, kafka.EventTypeUserRegistered, user.ID.String(), models.UserRegisteredEvent{
		UserID:       user.ID.String(),
		Email:        user.Email,
		RegisteredAt: now.UTC(),
	}); err != nil {
		s.logger.Warn("Failed to publish user registered event", zap.Error(err))
	}

	resp := user.ToResponse()
	return &resp, nil
}

// Login проверяет учетные данные и второй фактор, затем выпускает сессию.
// Для несуществующего email выполняется фиктивное сравнение хэша, чтобы
// время ответа не выдавало наличие аккаунта.
func (s *AuthService) Login(ctx context.Context, email, password, mfaCode, ip, userAgent string) (*models.TokenPair, *models.UserResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			s.passwords.DummyCheck()
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return nil, nil, domainErrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}

	match, err := s.passwords.CheckPasswordHash(password, user.PasswordHash)
	if err != nil {
		s.logger.Error("Password comparison failed", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, nil, domainErrors.ErrInternal
	}
	if !match {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, nil, domainErrors.ErrInvalidCredentials
	}

	if user.MFAEnabled {
		if mfaCode == "" {
			metrics.LoginAttemptsTotal.WithLabelValues("mfa_required").Inc()
			return nil, nil, domainErrors.ErrMFARequired
		}
		if err := s.verifyTOTP(user, mfaCode); err != nil {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return nil, nil, err
		}
	}

	pair, session, err := s.tokens.IssueSession(ctx, user, ip, userAgent)
	if err != nil {
		return nil, nil, err
	}

	if err := s.publisher.Publish(ctx, s.authTopic, kafka.EventTypeUserLogin, user.ID.String(), models.UserLoginEvent{
		UserID:    user.ID.String(),
		SessionID: session.ID.String(),
		IPAddress: ip,
		UserAgent: userAgent,
		LoginAt:   time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("Failed to publish user login event", zap.Error(err))
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	resp := user.ToResponse()
	return pair, &resp, nil
}

// ForgotPassword создает токен сброса и отправляет письмо. Для
// несуществующего email ничего не сохраняется, но ответ наружу одинаковый.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			s.logger.Debug("Password reset requested for unknown email")
			return nil
		}
		return err
	}

	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	token := hex.EncodeToString(buf)

	if err := s.userRepo.SetResetToken(ctx, user.ID, token, time.Now().Add(s.resetTokenTTL)); err != nil {
		return err
	}

	if err := s.mailer.SendPasswordReset(ctx, user.Email, token); err != nil {
		s.logger.Warn("Failed to send password reset mail", zap.Error(err), zap.String("user_id", user.ID.String()))
	}
	return nil
}

// ResetPassword завершает сброс пароля и отзывает все сессии пользователя.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrUserNotFound) {
			return domainErrors.ErrInvalidResetToken
		}
		return err
	}
	if user.ResetTokenExpiresAt == nil || user.ResetTokenExpiresAt.Before(time.Now()) {
		return domainErrors.ErrInvalidResetToken
	}

	if err := s.rejectBreachedPassword(ctx, newPassword); err != nil {
		return err
	}

	hash, err := s.passwords.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	if _, err := s.tokens.RevokeAll(ctx, user.ID, WipeReasonPasswordReset); err != nil {
		s.logger.Error("Failed to revoke sessions after password reset", zap.Error(err), zap.String("user_id", user.ID.String()))
		return err
	}

	if err := s.publisher.Publish(ctx, s.authTopic, kafka.EventTypePasswordReset, user.ID.String(), models.PasswordResetEvent{
		UserID:  user.ID.String(),
		ResetAt: time.Now().UTC(),
	}); err != nil {
		s.logger.Warn("Failed to publish password reset event", zap.Error(err))
	}
	return nil
}

// SetupMFA генерирует TOTP секрет и сохраняет его неподтвержденным.
// MFA включается только после первой успешной проверки кода.
func (s *AuthService) SetupMFA(ctx context.Context, userID uuid.UUID) (string, string, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", "", err
	}

	secret, otpauthURL, err := s.totp.GenerateSecret(user.Email)
	if err != nil {
		return "", "", err
	}
	if err := s.userRepo.SetMFASecret(ctx, user.ID, secret); err != nil {
		return "", "", err
	}
	return secret, otpauthURL, nil
}

// VerifyMFA проверяет код и при первой успешной проверке включает MFA.
func (s *AuthService) VerifyMFA(ctx context.Context, userID uuid.UUID, code string) error {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := s.verifyTOTP(user, code); err != nil {
		return err
	}

	if !user.MFAEnabled {
		if err := s.userRepo.EnableMFA(ctx, user.ID); err != nil {
			return err
		}
	}
	return nil
}

// verifyTOTP fails closed: without a stored secret no code is acceptable.
func (s *AuthService) verifyTOTP(user *models.User, code string) error {
	if user.MFASecret == nil || *user.MFASecret == "" {
		return domainErrors.ErrMFANotEnrolled
	}
	valid, err := s.totp.ValidateCode(*user.MFASecret, code)
	if err != nil {
		s.logger.Warn("TOTP validation error", zap.Error(err), zap.String("user_id", user.ID.String()))
		return domainErrors.ErrInvalidMFACode
	}
	if !valid {
		return domainErrors.ErrInvalidMFACode
	}
	return nil
}

// rejectBreachedPassword blocks known-breached passwords but treats checker
// failures as acceptance.
func (s *AuthService) rejectBreachedPassword(ctx context.Context, password string) error {
	pwned, err := s.breachChecker.IsPwned(ctx, password)
	if err != nil {
		s.logger.Warn("Breach check unavailable, accepting password", zap.Error(err))
		return nil
	}
	if pwned {
		return domainErrors.ErrPasswordPwned
	}
	return nil
}
