package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"asset-factory/internal/handler/httperr"
	"asset-factory/internal/pkg/address"
	"asset-factory/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxCallerKey = "caller"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAuth binds the caller identity from the bearer token's identity claim.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Access token required", nil)
			return
		}

		caller, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxCallerKey, caller)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func SetCaller(c *gin.Context, caller address.Address) {
	c.Set(ctxCallerKey, caller)
}

func GetCaller(c *gin.Context) (address.Address, bool) {
	v, exists := c.Get(ctxCallerKey)
	if !exists {
		return address.Zero, false
	}
	caller, ok := v.(address.Address)
	return caller, ok
}
