package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"prescripto/utils"
)

// Context keys set by JWTAuthMiddleware.
const (
	CtxSubjectKey = "authSubject"
	CtxRoleKey    = "authRole"
)

// JWTAuthMiddleware validates the bearer token and requires the given role
// ("patient", "doctor" or "admin"). The authenticated subject id is stored
// on the gin context for handlers.
func JWTAuthMiddleware(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}

		subject, role, err := utils.ExtractClaims(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Insufficient authorization"})
			return
		}
		if role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden for this role"})
			return
		}

		c.Set(CtxSubjectKey, subject)
		c.Set(CtxRoleKey, role)
		c.Next()
	}
}

// AuthSubject returns the authenticated subject id set by JWTAuthMiddleware.
func AuthSubject(c *gin.Context) string {
	v, _ := c.Get(CtxSubjectKey)
	s, _ := v.(string)
	return s
}
