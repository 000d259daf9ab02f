// File: internal/handler/http/response.go
package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
)

// ResponseError представляет структуру ошибки в ответе API
type ResponseError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(c *gin.Context, statusCode int, message string, errorCode string, logger *zap.Logger) {
	logger.Warn("API error response",
		zap.Int("status_code", statusCode),
		zap.String("error_message", message),
		zap.String("error_code", errorCode),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	)

	c.JSON(statusCode, ResponseError{
		Error: message,
		Code:  errorCode,
	})
}

// RespondWithData отправляет успешный ответ только с данными
func RespondWithData(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// RespondWithMessage отправляет успешный ответ только с сообщением
func RespondWithMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"message": message,
	})
}

// RespondWithNoContent отправляет ответ без содержимого
func RespondWithNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// RespondWithDomainError переводит доменную ошибку в HTTP ответ. Все отказы
// аутентификации наружу выглядят одинаково, внутренняя причина остается в
// логах.
func RespondWithDomainError(c *gin.Context, err error, logger *zap.Logger) {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidRequest), errors.Is(err, domainErrors.ErrInvalidSignature):
		c.JSON(http.StatusBadRequest, ResponseError{Error: "invalid request", Code: "bad_request"})
	case errors.Is(err, domainErrors.ErrRateLimitExceeded):
		c.JSON(http.StatusTooManyRequests, ResponseError{Error: "too many attempts", Code: "rate_limited"})
	case errors.Is(err, domainErrors.ErrMFARequired):
		// Клиенту нужно показать форму второго фактора
		c.JSON(http.StatusUnauthorized, ResponseError{Error: "mfa code required", Code: "mfa_required"})
	case errors.Is(err, domainErrors.ErrMFANotEnrolled):
		// Verify до setup, либо включенная 2FA без сохраненного секрета
		c.JSON(http.StatusBadRequest, ResponseError{Error: "mfa is not set up", Code: "mfa_not_enrolled"})
	case domainErrors.IsUnauthorized(err):
		logger.Warn("Unauthorized request",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
		)
		c.JSON(http.StatusUnauthorized, ResponseError{Error: "unauthorized", Code: "unauthorized"})
	case domainErrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, ResponseError{Error: "resource not found", Code: "not_found"})
	case domainErrors.IsConflict(err):
		c.JSON(http.StatusConflict, ResponseError{Error: "resource already exists", Code: "conflict"})
	case domainErrors.IsForbidden(err):
		c.JSON(http.StatusForbidden, ResponseError{Error: "forbidden", Code: "forbidden"})
	case domainErrors.IsUnprocessable(err):
		c.JSON(http.StatusUnprocessableEntity, ResponseError{Error: err.Error(), Code: "unprocessable"})
	default:
		logger.Error("Internal error",
			zap.Error(err),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, ResponseError{Error: "internal server error", Code: "internal_error"})
	}
}
