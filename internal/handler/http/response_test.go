// File: internal/handler/http/response_test.go
package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	domainErrors "github.com/Daniell17/football-app/internal/domain/errors"
)

func respondWith(err error) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/test", nil)

	RespondWithDomainError(c, err, zap.NewNop())
	return w
}

func TestRespondWithDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"invalid credentials", domainErrors.ErrInvalidCredentials, http.StatusUnauthorized, "unauthorized"},
		{"mfa required", domainErrors.ErrMFARequired, http.StatusUnauthorized, "mfa_required"},
		{"invalid mfa code", domainErrors.ErrInvalidMFACode, http.StatusUnauthorized, "unauthorized"},
		// Verify до setup это ошибка клиента, не сбой сервера
		{"mfa not enrolled", domainErrors.ErrMFANotEnrolled, http.StatusBadRequest, "mfa_not_enrolled"},
		{"session theft", domainErrors.ErrSessionTheftDetected, http.StatusUnauthorized, "unauthorized"},
		{"payment not found", domainErrors.ErrPaymentNotFound, http.StatusNotFound, "not_found"},
		{"email exists", domainErrors.ErrEmailExists, http.StatusConflict, "conflict"},
		{"match closed", domainErrors.ErrMatchClosed, http.StatusUnprocessableEntity, "unprocessable"},
		{"rate limited", domainErrors.ErrRateLimitExceeded, http.StatusTooManyRequests, "rate_limited"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := respondWith(tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"code":"`+tt.wantCode+`"`)
		})
	}
}
