// File: internal/handler/http/session_handler.go
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
	"github.com/Daniell17/football-app/internal/service"
)

// SessionHandler обрабатывает запросы к сессиям текущего пользователя
type SessionHandler struct {
	logger         *zap.Logger
	sessionService *service.SessionService
}

// NewSessionHandler создает новый SessionHandler.
func NewSessionHandler(logger *zap.Logger, sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{
		logger:         logger.Named("session_handler"),
		sessionService: sessionService,
	}
}

// List returns the active sessions of the current user; the session backing
// this request is marked current.
// GET /api/v1/me/sessions
func (h *SessionHandler) List(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}
	sessionID, err := currentSessionID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}

	sessions, err := h.sessionService.ListUserSessions(c.Request.Context(), userID, sessionID)
	if err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithData(c, http.StatusOK, gin.H{"sessions": sessions})
}

// Revoke deletes one of the current user's sessions. A session id that
// belongs to someone else yields the same 404 as a missing one.
// DELETE /api/v1/me/sessions/:id
func (h *SessionHandler) Revoke(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		RespondWithError(c, http.StatusUnauthorized, "unauthorized", "unauthorized", h.logger)
		return
	}

	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondWithDomainError(c, domainErrors.ErrSessionNotFound, h.logger)
		return
	}

	if err := h.sessionService.RevokeUserSession(c.Request.Context(), userID, sessionID); err != nil {
		RespondWithDomainError(c, err, h.logger)
		return
	}

	RespondWithNoContent(c)
}
