package admin

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kalemcms.com/app/internal/http/flash"
	"kalemcms.com/app/internal/http/middleware"
	"kalemcms.com/app/internal/http/render"
	"kalemcms.com/app/internal/modules/categories"
	"kalemcms.com/app/internal/shared/apperr"
	"kalemcms.com/app/internal/shared/slug"
	"kalemcms.com/app/pkg/view"
	"kalemcms.com/app/templates/pages"
)

type CategoriesHandler struct {
	flash *flash.Codec
	repo  *categories.Repo
}

func NewCategoriesHandler(db *gorm.DB, flashCodec *flash.Codec) *CategoriesHandler {
	return &CategoriesHandler{
		flash: flashCodec,
		repo:  categories.NewRepo(db),
	}
}

func (h *CategoriesHandler) List(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	rows := make([]view.CategoryRow, 0, len(items))
	for _, cat := range items {
		rows = append(rows, view.CategoryRow{ID: cat.ID, Name: cat.Name, Slug: cat.Slug})
	}

	render.Component(c, http.StatusOK, pages.AdminCategories(middleware.GetFlash(c), currentUsername(c), rows))
}

func (h *CategoriesHandler) NewGet(c *gin.Context) {
	render.Component(c, http.StatusOK, pages.AdminCategoryNew(middleware.GetFlash(c), currentUsername(c)))
}

// SavePost creates a category. Empty name sends the user back where they came
// from instead of the list, so the form context is kept.
func (h *CategoriesHandler) SavePost(c *gin.Context) {
	name := strings.TrimSpace(c.PostForm("category"))
	if name == "" {
		c.Redirect(http.StatusFound, refererOr(c, "/admin/categories/new"))
		return
	}

	if _, err := h.repo.Create(c.Request.Context(), name, slug.FromTitle(name)); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.RedirectWithFlash(c, h.flash, "/admin/categories", view.FlashSuccess, "Kategori eklendi.")
}

func (h *CategoriesHandler) EditGet(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusFound, "/admin/categories")
		return
	}

	cat, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusFound, "/admin/categories")
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.Component(c, http.StatusOK, pages.AdminCategoryEdit(middleware.GetFlash(c), currentUsername(c),
		view.CategoryForm{ID: cat.ID, Name: cat.Name}))
}

func (h *CategoriesHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c.PostForm("id"))
	name := strings.TrimSpace(c.PostForm("name"))
	if !ok || name == "" {
		c.Redirect(http.StatusFound, "/admin/categories")
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, name, slug.FromTitle(name)); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.RedirectWithFlash(c, h.flash, "/admin/categories", view.FlashSuccess, "Kategori güncellendi.")
}

// DeletePost removes the category and all of its articles together.
func (h *CategoriesHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c.PostForm("id"))
	if !ok {
		c.Redirect(http.StatusFound, refererOr(c, "/admin/categories"))
		return
	}

	if err := h.repo.DeleteCascade(c.Request.Context(), id); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.RedirectWithFlash(c, h.flash, "/admin/categories", view.FlashSuccess, "Kategori ve makaleleri silindi.")
}
