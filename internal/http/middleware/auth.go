// README: JWT auth middleware (HS256 bearer tokens).
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const callerUIDKey = "caller_uid"

// Auth validates a Bearer token signed with secret and stores the subject on
// the context. An empty secret disables auth entirely; requests pass through
// with no caller identity.
func Auth(secret string) gin.HandlerFunc {
	if secret == "" {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	key := []byte(secret)
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		raw := strings.TrimPrefix(header, "Bearer ")

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			return key, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		sub, err := token.Claims.GetSubject()
		if err != nil || sub == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token has no subject"})
			return
		}

		c.Set(callerUIDKey, sub)
		c.Next()
	}
}

// CallerUID returns the authenticated subject, or "" when auth is disabled.
func CallerUID(c *gin.Context) string {
	v, ok := c.Get(callerUIDKey)
	if !ok {
		return ""
	}
	uid, _ := v.(string)
	return uid
}
