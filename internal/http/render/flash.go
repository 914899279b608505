package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kalemcms.com/app/internal/http/flash"
	"kalemcms.com/app/internal/http/middleware"
	"kalemcms.com/app/pkg/view"
)

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusFound, location)
}
