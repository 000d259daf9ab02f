// File: internal/handler/http/middleware/metrics.go
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Daniell17/football-app/internal/utils/metrics"
)

// MetricsMiddleware собирает метрики запросов
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		metrics.RequestsTotal.Inc()

		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()

		statusCode := strconv.Itoa(c.Writer.Status())
		metrics.ResponsesTotal.WithLabelValues(statusCode).Inc()

		// FullPath возвращает шаблон маршрута, а не сырой URL, чтобы не
		// раздувать кардинальность метрики
		metrics.RequestDuration.WithLabelValues(c.Request.Method, c.FullPath()).Observe(duration)
	}
}
