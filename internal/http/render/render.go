package render

import (
	"github.com/gin-gonic/gin"
	g "github.com/maragudk/gomponents"
)

// Component renders a gomponents node as the full HTML response.
func Component(c *gin.Context, status int, node g.Node) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(status)
	if err := node.Render(c.Writer); err != nil {
		_ = c.Error(err)
	}
}
