package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func abortForbidden(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "ERR_FORBIDDEN",
			"message": message,
		},
	})
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "ERR_UNAUTHORIZED",
			"message": "Authentication required",
		},
	})
}

// RequireRole allows only callers whose token carries the given
// application role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			abortUnauthenticated(c)
			return
		}
		if claims.Role != role {
			abortForbidden(c, "Insufficient role")
			return
		}
		c.Next()
	}
}

// RequirePermission allows only callers whose token carries the given
// permission tag.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			abortUnauthenticated(c)
			return
		}
		if !claims.HasPermission(permission) {
			abortForbidden(c, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

// RequireAnyPermission allows callers holding at least one of the
// given permission tags.
func RequireAnyPermission(permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			abortUnauthenticated(c)
			return
		}
		if !claims.HasAnyPermission(permissions...) {
			abortForbidden(c, "Insufficient permissions")
			return
		}
		c.Next()
	}
}
