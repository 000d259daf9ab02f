// File: internal/handler/http/middleware/rate_limit_middleware.go
package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainService "github.com/Daniell17/football-app/internal/domain/service"
	"github.com/Daniell17/football-app/internal/utils/metrics"
)

// RateLimitMiddleware ограничивает частоту запросов по IP клиента.
// Ошибки самого лимитера не блокируют запрос, реализация лимитера
// сама решает, пропускать ли трафик при недоступном Redis.
func RateLimitMiddleware(limiter domainService.RateLimiter, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		allowed, retryAfter, err := limiter.Consume(c.Request.Context(), key)
		if err != nil {
			logger.Error("Rate limiter error", zap.Error(err), zap.String("key", key))
		}

		if !allowed {
			metrics.RateLimitExceededTotal.Inc()
			logger.Warn("Rate limit exceeded",
				zap.String("key", key),
				zap.String("path", c.Request.URL.Path),
			)
			if retryAfter > 0 {
				c.Header("Retry-After", strconv.Itoa(int(retryAfter.Seconds())))
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many attempts, try again later",
				"code":  "rate_limited",
			})
			return
		}

		c.Next()
	}
}
