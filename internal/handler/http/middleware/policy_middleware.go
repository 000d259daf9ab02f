// File: internal/handler/http/middleware/policy_middleware.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainService "github.com/Daniell17/football-app/internal/domain/service"
)

// GinContextOwnerOnlyKey сообщает обработчику, что разрешение действует
// только для ресурсов самого пользователя
const GinContextOwnerOnlyKey = "ownerOnly"

// RequirePermission checks the static access policy table for the
// authenticated role. AuthMiddleware must run first. When the matched rule is
// owner-scoped, the handler is responsible for comparing ownership against
// the authenticated user id.
func RequirePermission(action, resource string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get(GinContextRoleKey)
		if !exists {
			logger.Warn("RequirePermission: role not found in context, AuthMiddleware missing?")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied", "code": "forbidden"})
			return
		}

		role, ok := roleValue.(string)
		if !ok {
			logger.Error("RequirePermission: role in context is not a string")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": "internal_error"})
			return
		}

		allowed, ownerOnly := domainService.Can(role, action, resource)
		if !allowed {
			logger.Warn("RequirePermission: permission denied",
				zap.String("role", role),
				zap.String("action", action),
				zap.String("resource", resource),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied", "code": "forbidden"})
			return
		}

		c.Set(GinContextOwnerOnlyKey, ownerOnly)
		c.Next()
	}
}
