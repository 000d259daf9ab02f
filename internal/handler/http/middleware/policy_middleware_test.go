// File: internal/handler/http/middleware/policy_middleware_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Daniell17/football-app/internal/domain/models"
	domainService "github.com/Daniell17/football-app/internal/domain/service"
)

func setupPolicyTest(role string, action, resource string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if role != "" {
			c.Set(GinContextRoleKey, role)
		}
	})
	router.Use(RequirePermission(action, resource, zap.NewNop()))
	router.GET("/resource", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"owner_only": c.GetBool(GinContextOwnerOnlyKey)})
	})
	return router
}

func doPolicyRequest(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRequirePermissionAllowsAdmin(t *testing.T) {
	router := setupPolicyTest(models.RoleAdmin, domainService.ActionCreate, domainService.ResourceMatch)
	w := doPolicyRequest(router)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"owner_only":false`)
}

func TestRequirePermissionOwnerScope(t *testing.T) {
	router := setupPolicyTest(models.RoleUser, domainService.ActionRead, domainService.ResourceTicket)
	w := doPolicyRequest(router)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"owner_only":true`)
}

func TestRequirePermissionDeniesUser(t *testing.T) {
	router := setupPolicyTest(models.RoleUser, domainService.ActionCreate, domainService.ResourceMatch)
	w := doPolicyRequest(router)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequirePermissionWithoutRole(t *testing.T) {
	router := setupPolicyTest("", domainService.ActionRead, domainService.ResourceTicket)
	w := doPolicyRequest(router)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
