package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "nomix/internal/errors"
)

// SeedKeyMiddleware guards the seeding endpoints. With an empty apiKey the
// endpoints stay open, as in local development; otherwise the X-API-Key header
// must match.
func SeedKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			writeError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}
