// File: internal/handler/http/middleware/auth_middleware_test.go
package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/domain/models"
	domainService "github.com/Daniell17/football-app/internal/domain/service"
)

type stubAccessTokenService struct {
	claims *domainService.AccessClaims
	err    error
}

func (s *stubAccessTokenService) Generate(string, string, string) (string, error) { return "", nil }
func (s *stubAccessTokenService) TTL() time.Duration                              { return 15 * time.Minute }
func (s *stubAccessTokenService) Validate(string) (*domainService.AccessClaims, error) {
	return s.claims, s.err
}

func setupAuthTest(tokens domainService.AccessTokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(AuthMiddleware(tokens, zap.NewNop()))
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString(GinContextUserIDKey),
			"role":    c.GetString(GinContextRoleKey),
		})
	})
	return router
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	router := setupAuthTest(&stubAccessTokenService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareMalformedHeader(t *testing.T) {
	router := setupAuthTest(&stubAccessTokenService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, "Basic dXNlcjpwYXNz")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	router := setupAuthTest(&stubAccessTokenService{err: errors.New("signature mismatch")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, "Bearer bad-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareSetsIdentity(t *testing.T) {
	claims := &domainService.AccessClaims{
		Role:      models.RoleUser,
		SessionID: "session-1",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: "user-1",
		},
	}
	router := setupAuthTest(&stubAccessTokenService{claims: claims})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(AuthHeaderKey, "Bearer good-token")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "user-1")
	assert.Contains(t, w.Body.String(), models.RoleUser)
}
