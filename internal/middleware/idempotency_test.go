package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-workforce/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// Requests outside the guard's scope must reach the handler without touching
// redis at all; a nil client proves no call is made.
func TestIdempotency_WithoutKeyPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/create_project", middleware.Idempotency(nil), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/create_project", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestIdempotency_IgnoresNonPost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/pm_dashboard", middleware.Idempotency(nil), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/pm_dashboard", nil)
	req.Header.Set("Idempotency-Key", "abc-123")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
