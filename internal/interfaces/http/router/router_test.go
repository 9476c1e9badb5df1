package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingRegistrar struct {
	registered bool
}

func (p *pingRegistrar) RegisterRoutes(rg *gin.RouterGroup) {
	p.registered = true
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func TestRouterSetup(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("registers routes under default version prefix", func(t *testing.T) {
		engine := gin.New()
		reg := &pingRegistrar{}

		NewRouter(engine).Register(reg).Setup()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		engine.ServeHTTP(w, req)

		assert.True(t, reg.registered)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("honours custom API version", func(t *testing.T) {
		engine := gin.New()

		NewRouter(engine, WithAPIVersion("v2")).Register(&pingRegistrar{}).Setup()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v2/ping", nil)
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("applies router middleware to registered routes", func(t *testing.T) {
		engine := gin.New()
		touched := false

		NewRouter(engine).
			Use(func(c *gin.Context) { touched = true; c.Next() }).
			Register(&pingRegistrar{}).
			Setup()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil)
		engine.ServeHTTP(w, req)

		assert.True(t, touched)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
