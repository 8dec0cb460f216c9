package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const passwordHeader = "X-Admin-Password"

// AdminMiddleware gates a route group behind the admin password. The
// password arrives in the X-Admin-Password header or, for compatibility
// with the original admin panel, a "password" query parameter.
func AdminMiddleware(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		candidate := c.GetHeader(passwordHeader)
		if candidate == "" {
			candidate = c.Query("password")
		}

		if candidate == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Admin password required"})
			c.Abort()
			return
		}

		if !v.Verify(candidate) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin password"})
			c.Abort()
			return
		}

		c.Next()
	}
}
