package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendsmart/internal/errors"
)

const (
	// IdentityHeader carries the caller's identity, set by the upstream
	// authenticating proxy. This service does not manage credentials or
	// sessions itself.
	IdentityHeader = "X-User-Email"

	identityKey = "owner"
)

// Identity returns a Gin middleware that extracts the caller's identity from
// the request and aborts with 401 when it is missing.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := c.GetHeader(IdentityHeader)
		if identity == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    apperrors.ErrUnauthorized.Code,
					"message": apperrors.ErrUnauthorized.Message,
				},
			})
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}
