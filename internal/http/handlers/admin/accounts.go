package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kalemcms.com/app/internal/http/flash"
	"kalemcms.com/app/internal/http/middleware"
	"kalemcms.com/app/internal/http/render"
	"kalemcms.com/app/internal/modules/admins"
	"kalemcms.com/app/internal/shared/apperr"
	"kalemcms.com/app/pkg/view"
	"kalemcms.com/app/templates/pages"
)

// AccountsHandler manages panel accounts: list, add, remove. Accounts are
// never edited in place.
type AccountsHandler struct {
	flash *flash.Codec
	repo  *admins.Repo
}

func NewAccountsHandler(db *gorm.DB, flashCodec *flash.Codec) *AccountsHandler {
	return &AccountsHandler{
		flash: flashCodec,
		repo:  admins.NewRepo(db),
	}
}

func (h *AccountsHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	rows := make([]view.AdminRow, 0, len(items))
	for _, a := range items {
		rows = append(rows, view.AdminRow{
			ID:        a.ID,
			Username:  a.Username,
			CreatedAt: a.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	render.Component(c, http.StatusOK, pages.AdminList(middleware.GetFlash(c), currentUsername(c), rows))
}

func (h *AccountsHandler) AddGet(c *gin.Context) {
	render.Component(c, http.StatusOK, pages.AdminAdd(middleware.GetFlash(c), currentUsername(c)))
}

type addAdminInput struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *AccountsHandler) AddPost(c *gin.Context) {
	var in addAdminInput
	if err := c.ShouldBind(&in); err != nil {
		// Eksik alan formu gönderen sayfaya geri düşer
		render.RedirectWithFlash(c, h.flash, refererOr(c, "/admin/add"), view.FlashError, "Kullanıcı adı ve şifre zorunludur.")
		return
	}

	// bcrypt her çağrıda taze salt üretir; düz metin asla saklanmaz
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	if _, err := h.repo.Create(c.Request.Context(), in.Username, string(hash)); err != nil {
		if admins.IsDuplicateUsername(err) {
			middleware.Fail(c, apperr.ConflictErr("Bu kullanıcı adı zaten kayıtlı."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.RedirectWithFlash(c, h.flash, "/admin/list", view.FlashSuccess, "Yönetici eklendi.")
}

// RemovePost deletes by id. A missing row is a silent no-op.
func (h *AccountsHandler) RemovePost(c *gin.Context) {
	id, ok := parseID(c.PostForm("id"))
	if !ok {
		c.Redirect(http.StatusFound, "/admin/list")
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.RedirectWithFlash(c, h.flash, "/admin/list", view.FlashSuccess, "Yönetici silindi.")
}
