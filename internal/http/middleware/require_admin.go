package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequireAdmin gates the panel routes: oturum yoksa login'e redirect.
// Absence of a session is the normal not-authenticated path; nothing is
// mutated and no error is raised.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentAdmin(c); ok {
			c.Next()
			return
		}

		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
	}
}
