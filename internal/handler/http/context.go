// File: internal/handler/http/context.go
package http

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Daniell17/football-app/internal/handler/http/middleware"
)

var errMissingIdentity = errors.New("authenticated identity missing from request context")

// currentUserID возвращает ID аутентифицированного пользователя из контекста
func currentUserID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get(middleware.GinContextUserIDKey)
	if !exists {
		return uuid.Nil, errMissingIdentity
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, errMissingIdentity
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errMissingIdentity
	}
	return id, nil
}

// currentSessionID возвращает ID текущей сессии из контекста
func currentSessionID(c *gin.Context) (uuid.UUID, error) {
	raw, exists := c.Get(middleware.GinContextSessionIDKey)
	if !exists {
		return uuid.Nil, errMissingIdentity
	}
	s, ok := raw.(string)
	if !ok {
		return uuid.Nil, errMissingIdentity
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, errMissingIdentity
	}
	return id, nil
}

// currentRole возвращает роль аутентифицированного пользователя
func currentRole(c *gin.Context) string {
	raw, exists := c.Get(middleware.GinContextRoleKey)
	if !exists {
		return ""
	}
	role, _ := raw.(string)
	return role
}
