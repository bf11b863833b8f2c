package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Rashed1879/talk-trove-server/internal/auth"
	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// RoleStore resolves the stored role for an identity. The lookup runs on
// every guarded request (no caching), so a role change takes effect on the
// very next request.
type RoleStore interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

func Authenticate(jwtService auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		// Expect format: "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole gates a route on the stored role of the authenticated caller.
// It must run after Authenticate; a route wired without it fails closed
// with 401 instead of panicking on missing claims.
func RequireRole(store RoleStore, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": true, "message": "unauthorized access"})
			return
		}

		stored, err := store.RoleByEmail(c.Request.Context(), claims.Email)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": true, "message": "internal server error"})
			return
		}
		if stored != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": true, "message": "forbidden access"})
			return
		}

		c.Next()
	}
}

func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
