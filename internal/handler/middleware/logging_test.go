//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"asset-factory/internal/handler/httperr"
	"asset-factory/internal/handler/middleware"
	"asset-factory/internal/pkg/config"
	"asset-factory/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeZone: "UTC", TimeFormat: "2006-01-02"})

	router := gin.New()
	router.Use(logger.LoggingMiddleware(), middleware.ErrorHandler())
	router.GET("/id", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})
	router.GET("/rejected", func(c *gin.Context) {
		httperr.AbortWithProgramError(c, errs.ErrSoldOut)
	})

	tests := []struct {
		name     string
		incoming string
		echoed   bool
	}{
		{name: "generated when absent", incoming: "", echoed: false},
		{name: "upstream id is echoed", incoming: "edge-7f3a.1", echoed: true},
		{name: "unsafe id is replaced", incoming: "bad id\nwith newline", echoed: false},
		{name: "overlong id is replaced", incoming: strings.Repeat("a", 65), echoed: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/id", nil)
			if tt.incoming != "" {
				req.Header.Set("X-Request-ID", tt.incoming)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			got := rec.Header().Get("X-Request-ID")
			assert.Equal(t, got, rec.Body.String())
			if tt.echoed {
				assert.Equal(t, tt.incoming, got)
			} else {
				assert.NotEqual(t, tt.incoming, got)
				assert.Regexp(t, `^\d{14}-[0-9a-f]{8}$`, got)
			}
		})
	}

	t.Run("rejected operation keeps its program status", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rejected", nil))
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})
}
