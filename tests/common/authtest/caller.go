//go:build unit || e2e

package authtest

import (
	"net/http"

	"asset-factory/internal/handler/httperr"
	"asset-factory/internal/handler/middleware"
	"asset-factory/internal/pkg/address"

	"github.com/gin-gonic/gin"
)

// StubAuth authenticates any request carrying an Authorization header as caller.
func StubAuth(caller address.Address) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
			return
		}
		middleware.SetCaller(c, caller)
		c.Next()
	}
}
