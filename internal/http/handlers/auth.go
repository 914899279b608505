package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kalemcms.com/app/internal/http/flash"
	"kalemcms.com/app/internal/http/middleware"
	"kalemcms.com/app/internal/http/render"
	"kalemcms.com/app/internal/modules/admins"
	"kalemcms.com/app/internal/modules/categories"
	"kalemcms.com/app/internal/shared/apperr"
	"kalemcms.com/app/pkg/view"
	"kalemcms.com/app/templates/pages"
)

// AuthHandlers covers panel login/logout.
type AuthHandlers struct {
	flash   *flash.Codec
	sessCfg middleware.SessionCfg
	admins  *admins.Repo
	cats    *categories.Repo
}

func NewAuthHandlers(db *gorm.DB, flashCodec *flash.Codec, sessCfg middleware.SessionCfg) *AuthHandlers {
	return &AuthHandlers{
		flash:   flashCodec,
		sessCfg: sessCfg,
		admins:  admins.NewRepo(db),
		cats:    categories.NewRepo(db),
	}
}

// LoginGet renders the login form with the category nav.
func (h *AuthHandlers) LoginGet(c *gin.Context) {
	cats, err := h.cats.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.Component(c, http.StatusOK, pages.Login(middleware.GetFlash(c), view.LoginPage{
		Categories: navCategories(cats),
	}))
}

type loginInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

// LoginPost checks credentials and opens a session. Unknown username and
// wrong password both end at the same redirect: kim olduğunu belli etme.
func (h *AuthHandlers) LoginPost(c *gin.Context) {
	// Zaten giriş yapılmışsa kimlik doğrulamadan panele dön
	if _, ok := middleware.CurrentAdmin(c); ok {
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	var in loginInput
	if err := c.ShouldBind(&in); err != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	a, err := h.admins.GetByUsername(c.Request.Context(), in.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(in.Password)) != nil {
		c.Redirect(http.StatusFound, "/")
		return
	}

	sess, err := middleware.CreateSession(h.sessCfg, a.ID, a.Username)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessCfg.CookieName, sess.ID, int(h.sessCfg.TTL.Seconds()), "/", "", h.sessCfg.Secure, true)
	c.Redirect(http.StatusFound, "/admin")
}

// Logout drops the session and clears the cookie. Çift logout sorun değil.
func (h *AuthHandlers) Logout(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok {
		if err := middleware.DeleteSession(h.sessCfg, sess.ID); err != nil {
			middleware.Fail(c, apperr.Wrap(err))
			return
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.sessCfg.CookieName, "", -1, "/", "", h.sessCfg.Secure, true)
	render.RedirectWithFlash(c, h.flash, "/", view.FlashInfo, "Oturum kapatıldı.")
}
