package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const principalKey = "principal"

// AuthRequired is a Gin middleware that validates JWT from Authorization: Bearer <token>
func AuthRequired(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "missing Authorization header",
			})
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid Authorization header format",
			})
			return
		}

		claims, err := jwtManager.ParseAndValidate(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "invalid or expired token",
			})
			return
		}

		// Store the principal into Gin context for later handlers.
		c.Set(principalKey, Principal{
			ID:    claims.UserID,
			Role:  Role(claims.Role),
			Email: claims.Email,
		})

		c.Next()
	}
}

// RequireRole gates a route group to one principal kind.
// It MUST be used after AuthRequired.
func RequireRole(role Role, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "unauthorized",
			})
			return
		}

		if p.Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": message,
			})
			return
		}

		c.Next()
	}
}

// GetPrincipal returns the authenticated principal stored by AuthRequired.
func GetPrincipal(c *gin.Context) (Principal, bool) {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(Principal); ok {
			return p, true
		}
	}
	return Principal{}, false
}
