package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(engine *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, nil)
	engine.ServeHTTP(w, req)
	return w
}

func TestRouterDefaults(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	g := NewDomainGroup("estates", "/estates")
	g.GET("", func(c *gin.Context) { c.String(http.StatusOK, "list") })
	r.Register(g).Setup()

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/api/v2/estates").Code)
	assert.Equal(t, http.StatusNotFound, perform(engine, http.MethodGet, "/api/v1/estates").Code)
}

func TestRouterSetupMountsAllRegistrars(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	estates := NewDomainGroup("estates", "/estates")
	estates.GET("", func(c *gin.Context) { c.String(http.StatusOK, "estates") })

	notifications := NewDomainGroup("notifications", "/notifications")
	notifications.GET("", func(c *gin.Context) { c.String(http.StatusOK, "notifications") })

	r.Register(estates).Register(notifications).Setup()

	w := perform(engine, http.MethodGet, "/api/v1/estates")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "estates", w.Body.String())

	w = perform(engine, http.MethodGet, "/api/v1/notifications")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "notifications", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("exposes name and prefix", func(t *testing.T) {
		g := NewDomainGroup("finance", "/transactions")
		assert.Equal(t, "finance", g.Name())
		assert.Equal(t, "/transactions", g.Prefix())
	})

	t.Run("registers all verbs", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("tasks", "/tasks")
		ok := func(c *gin.Context) { c.Status(http.StatusOK) }
		g.GET("", ok).POST("", ok).PUT("/:id", ok).PATCH("/:id/status", ok).DELETE("/:id", ok)

		g.RegisterRoutes(engine.Group("/api/v1"))

		for _, tc := range []struct {
			method string
			path   string
		}{
			{http.MethodGet, "/api/v1/tasks"},
			{http.MethodPost, "/api/v1/tasks"},
			{http.MethodPut, "/api/v1/tasks/42"},
			{http.MethodPatch, "/api/v1/tasks/42/status"},
			{http.MethodDelete, "/api/v1/tasks/42"},
		} {
			assert.Equal(t, http.StatusOK, perform(engine, tc.method, tc.path).Code,
				"%s %s", tc.method, tc.path)
		}
	})

	t.Run("middleware runs before handlers even when declared after routes", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("estates", "/estates")
		g.GET("", func(c *gin.Context) {
			c.String(http.StatusOK, c.GetString("guard"))
		})
		g.Use(func(c *gin.Context) {
			c.Set("guard", "checked")
			c.Next()
		})

		g.RegisterRoutes(engine.Group("/api/v1"))

		w := perform(engine, http.MethodGet, "/api/v1/estates")
		assert.Equal(t, "checked", w.Body.String())
	})

	t.Run("nested groups inherit prefix and middleware", func(t *testing.T) {
		engine := gin.New()
		estates := NewDomainGroup("estates", "/estates")
		estates.Use(func(c *gin.Context) {
			c.Header("X-Scope", "estate")
			c.Next()
		})

		scoped := estates.Group("estate", "/:estate_id")
		scoped.GET("/transactions", func(c *gin.Context) {
			c.String(http.StatusOK, c.Param("estate_id"))
		})

		estates.RegisterRoutes(engine.Group("/api/v1"))

		w := perform(engine, http.MethodGet, "/api/v1/estates/abc/transactions")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "abc", w.Body.String())
		assert.Equal(t, "estate", w.Header().Get("X-Scope"))
	})
}

func TestChainedRegistration(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	g := NewDomainGroup("blog", "/blog")
	g.GET("/posts", func(c *gin.Context) { c.String(http.StatusOK, "posts") }).
		POST("/posts", func(c *gin.Context) { c.String(http.StatusCreated, "created") })

	r.Register(g).Setup()

	assert.Equal(t, http.StatusOK, perform(engine, http.MethodGet, "/api/v1/blog/posts").Code)
	assert.Equal(t, http.StatusCreated, perform(engine, http.MethodPost, "/api/v1/blog/posts").Code)
}
