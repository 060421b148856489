package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const emailKey = "email"

// AdminCheck reports whether the user behind an email holds the admin role.
type AdminCheck func(ctx context.Context, email string) (bool, error)

// Guard bundles the two authorization gates. It owns no ambient state: the
// token verifier and the user lookup are injected at construction.
type Guard struct {
	Tokens  *TokenService
	IsAdmin AdminCheck
}

func NewGuard(tokens *TokenService, isAdmin AdminCheck) *Guard {
	return &Guard{Tokens: tokens, IsAdmin: isAdmin}
}

// RequireAuth validates the bearer token and stores the caller's email on
// the context.
func (g *Guard) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := g.Tokens.Verify(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
			return
		}
		c.Set(emailKey, claims.Email)
		c.Next()
	}
}

// RequireAdmin rejects callers whose user record is missing or not admin.
// Always chained after RequireAuth.
func (g *Guard) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, err := g.IsAdmin(c.Request.Context(), Email(c))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to look up user"})
			return
		}
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
			return
		}
		c.Next()
	}
}

// Email extracts the authenticated caller's email from the context.
func Email(c *gin.Context) string {
	return c.GetString(emailKey)
}
