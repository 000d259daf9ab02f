// File: internal/service/session_service.go
package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/domain/models"
	"github.com/Daniell17/football-app/internal/domain/repository"
)

// SessionService отдает список устройств пользователя и отзывает отдельные
// сессии.
type SessionService struct {
	sessionRepo repository.SessionRepository
	tokens      *TokenService
	logger      *zap.Logger
}

// NewSessionService создает новый SessionService.
func NewSessionService(sessionRepo repository.SessionRepository, tokens *TokenService, logger *zap.Logger) *SessionService {
	return &SessionService{
		sessionRepo: sessionRepo,
		tokens:      tokens,
		logger:      logger.Named("session_service"),
	}
}

// ListUserSessions возвращает активные сессии пользователя.
func (s *SessionService) ListUserSessions(ctx context.Context, userID uuid.UUID, currentSessionID uuid.UUID) ([]models.SessionResponse, error) {
	sessions, err := s.sessionRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		responses = append(responses, session.ToResponse(currentSessionID))
	}
	return responses, nil
}

// RevokeUserSession отзывает одну сессию пользователя. Чужая сессия
// неотличима от несуществующей.
func (s *SessionService) RevokeUserSession(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) error {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.UserID != userID {
		return domainErrors.ErrSessionNotFound
	}
	return s.tokens.RevokeOne(ctx, sessionID, userID)
}
