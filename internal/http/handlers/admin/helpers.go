package admin

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"kalemcms.com/app/internal/http/middleware"
)

// parseID accepts only plain decimal ids; anything else is a validation
// failure in the caller.
func parseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(n), true
}

// refererOr sends the user back to the page that submitted the failing form,
// or to the given fallback when no Referer header came along.
func refererOr(c *gin.Context, fallback string) string {
	if ref := c.Request.Referer(); ref != "" {
		return ref
	}
	return fallback
}

func currentUsername(c *gin.Context) string {
	u, _ := middleware.CurrentAdmin(c) // RequireAdmin garanti eder
	return u.Username
}
