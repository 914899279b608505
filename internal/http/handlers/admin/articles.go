package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kalemcms.com/app/internal/http/flash"
	"kalemcms.com/app/internal/http/middleware"
	"kalemcms.com/app/internal/http/render"
	"kalemcms.com/app/internal/modules/articles"
	"kalemcms.com/app/internal/modules/categories"
	"kalemcms.com/app/internal/shared/apperr"
	"kalemcms.com/app/internal/shared/slug"
	"kalemcms.com/app/pkg/view"
	"kalemcms.com/app/templates/pages"
)

type ArticlesHandler struct {
	flash *flash.Codec
	repo  *articles.Repo
	cats  *categories.Repo
}

func NewArticlesHandler(db *gorm.DB, flashCodec *flash.Codec) *ArticlesHandler {
	return &ArticlesHandler{
		flash: flashCodec,
		repo:  articles.NewRepo(db),
		cats:  categories.NewRepo(db),
	}
}

// RedirectList sends the unpaged listing to page zero.
func (h *ArticlesHandler) RedirectList(c *gin.Context) {
	c.Redirect(http.StatusFound, "/admin/articles/page/0")
}

// List renders one page of the article listing. A request past the end jumps
// to the last page that actually has rows; an empty set just renders page 0.
func (h *ArticlesHandler) List(c *gin.Context) {
	page := 0
	if n, err := strconv.Atoi(c.Param("page")); err == nil && n >= 0 {
		page = n
	}

	items, total, err := h.repo.ListPage(c.Request.Context(), page, articles.PageSize)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	last := articles.LastPage(total, articles.PageSize)
	if page > last && total > 0 {
		c.Redirect(http.StatusFound, "/admin/articles/page/"+strconv.Itoa(last))
		return
	}

	rows := make([]view.ArticleRow, 0, len(items))
	for _, a := range items {
		rows = append(rows, view.ArticleRow{
			ID:           a.ID,
			Title:        a.Title,
			Slug:         a.Slug,
			CategoryName: a.Category.Name,
		})
	}

	render.Component(c, http.StatusOK, pages.AdminArticles(middleware.GetFlash(c), currentUsername(c),
		rows, view.Pagination{Current: page, Last: last}))
}

func (h *ArticlesHandler) NewGet(c *gin.Context) {
	cats, err := h.cats.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.Component(c, http.StatusOK, pages.AdminArticleNew(middleware.GetFlash(c), currentUsername(c),
		categoryOptions(cats)))
}

func (h *ArticlesHandler) SavePost(c *gin.Context) {
	title := strings.TrimSpace(c.PostForm("title"))
	body := c.PostForm("body")
	categoryID, ok := parseID(c.PostForm("categoryId"))

	if title == "" || body == "" || !ok {
		c.Redirect(http.StatusFound, refererOr(c, "/admin/articles/new"))
		return
	}

	if _, err := h.repo.Create(c.Request.Context(), title, slug.FromTitle(title), body, categoryID); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.RedirectWithFlash(c, h.flash, "/admin/articles", view.FlashSuccess, "Makale eklendi.")
}

func (h *ArticlesHandler) EditGet(c *gin.Context) {
	id, ok := parseID(c.Param("id"))
	if !ok {
		c.Redirect(http.StatusFound, refererOr(c, "/admin/articles"))
		return
	}

	a, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusFound, refererOr(c, "/admin/articles"))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.Component(c, http.StatusOK, pages.AdminArticleEdit(middleware.GetFlash(c), currentUsername(c),
		view.ArticleForm{ID: a.ID, Title: a.Title, Body: a.Body}))
}

// UpdatePost rewrites title, slug and body. The category stays as it was.
func (h *ArticlesHandler) UpdatePost(c *gin.Context) {
	id, ok := parseID(c.PostForm("id"))
	title := strings.TrimSpace(c.PostForm("title"))
	body := c.PostForm("body")

	if !ok || title == "" || body == "" {
		c.Redirect(http.StatusFound, refererOr(c, "/admin/articles"))
		return
	}

	if err := h.repo.Update(c.Request.Context(), id, title, slug.FromTitle(title), body); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.RedirectWithFlash(c, h.flash, "/admin/articles", view.FlashSuccess, "Makale güncellendi.")
}

func (h *ArticlesHandler) DeletePost(c *gin.Context) {
	id, ok := parseID(c.PostForm("id"))
	if !ok {
		c.Redirect(http.StatusFound, refererOr(c, "/admin/articles"))
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.RedirectWithFlash(c, h.flash, "/admin/articles", view.FlashSuccess, "Makale silindi.")
}

func categoryOptions(cats []categories.Category) []view.CategoryOption {
	out := make([]view.CategoryOption, 0, len(cats))
	for _, cat := range cats {
		out = append(out, view.CategoryOption{ID: cat.ID, Name: cat.Name})
	}
	return out
}
