package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arvebo/backend/internal/infrastructure/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newPermissionTestRouter(claims *auth.Claims, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(JWTClaimsKey, claims)
		}
	})
	router.GET("/guarded", guard, func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func performGuarded(router *gin.Engine) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	router.ServeHTTP(w, req)
	return w
}

func TestRequireRole(t *testing.T) {
	t.Run("matching role passes", func(t *testing.T) {
		claims := &auth.Claims{Role: "administrator"}
		w := performGuarded(newPermissionTestRouter(claims, RequireRole("administrator")))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		claims := &auth.Claims{Role: "heir"}
		w := performGuarded(newPermissionTestRouter(claims, RequireRole("administrator")))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
	})

	t.Run("missing claims is unauthorized", func(t *testing.T) {
		w := performGuarded(newPermissionTestRouter(nil, RequireRole("administrator")))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequirePermission(t *testing.T) {
	t.Run("held permission passes", func(t *testing.T) {
		claims := &auth.Claims{Permissions: []string{"full_edit"}}
		w := performGuarded(newPermissionTestRouter(claims, RequirePermission("full_edit")))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing permission is forbidden", func(t *testing.T) {
		claims := &auth.Claims{Permissions: []string{"view_only"}}
		w := performGuarded(newPermissionTestRouter(claims, RequirePermission("full_edit")))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestRequireAnyPermission(t *testing.T) {
	t.Run("one of several suffices", func(t *testing.T) {
		claims := &auth.Claims{Permissions: []string{"view_only"}}
		guard := RequireAnyPermission("full_edit", "view_only")
		w := performGuarded(newPermissionTestRouter(claims, guard))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("none held is forbidden", func(t *testing.T) {
		claims := &auth.Claims{Permissions: []string{}}
		guard := RequireAnyPermission("full_edit", "view_only")
		w := performGuarded(newPermissionTestRouter(claims, guard))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
