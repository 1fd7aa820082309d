// Package middleware contains any custom middleware used in the app
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"notedeck/notes-api/security"
)

// NewAuthMiddleware guards a route group with bearer-token auth. It
// reads the Authorization header (a "Bearer " prefix is optional, raw
// tokens are accepted too), verifies the token and exposes its subject
// as userEmail. Handlers must take identity from there and never from
// request bodies.
func NewAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.MustGet("requestID").(string)

		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     "Token is missing",
				"requestID": requestID,
			})
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")

		email, err := security.VerifyToken(tokenStr)
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, security.ErrTokenExpired) {
				msg = "Token has expired"
			}

			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":     msg,
				"requestID": requestID,
			})
			return
		}

		c.Set("userEmail", email)
		c.Next()
	}
}
