package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kalemcms.com/app/internal/http/middleware"
	"kalemcms.com/app/internal/http/render"
	"kalemcms.com/app/templates/pages"
)

func Dashboard(c *gin.Context) {
	render.Component(c, http.StatusOK, pages.AdminDashboard(
		middleware.GetFlash(c),
		currentUsername(c),
	))
}
