// File: internal/handler/http/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainService "github.com/Daniell17/football-app/internal/domain/service"
)

// Ключи контекста gin, заполняемые после успешной аутентификации
const (
	AuthHeaderKey          = "Authorization"
	AuthTypeBearer         = "Bearer"
	GinContextUserIDKey    = "userID"
	GinContextSessionIDKey = "sessionID"
	GinContextRoleKey      = "role"
	GinContextClaimsKey    = "claims"
)

// AuthMiddleware creates a gin.HandlerFunc for JWT authentication.
func AuthMiddleware(accessTokens domainService.AccessTokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthHeaderKey)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], AuthTypeBearer) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer <token>"})
			return
		}

		claims, err := accessTokens.Validate(parts[1])
		if err != nil {
			logger.Warn("AuthMiddleware: invalid access token", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		c.Set(GinContextClaimsKey, claims)
		c.Set(GinContextUserIDKey, claims.Subject)
		c.Set(GinContextSessionIDKey, claims.SessionID)
		c.Set(GinContextRoleKey, claims.Role)

		c.Next()
	}
}
