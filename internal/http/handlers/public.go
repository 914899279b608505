package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kalemcms.com/app/internal/http/middleware"
	"kalemcms.com/app/internal/http/render"
	"kalemcms.com/app/internal/modules/articles"
	"kalemcms.com/app/internal/modules/categories"
	"kalemcms.com/app/internal/shared/apperr"
	"kalemcms.com/app/pkg/view"
	"kalemcms.com/app/templates/pages"
)

// PublicHandlers serves the reader-facing pages. No auth involved.
type PublicHandlers struct {
	cats *categories.Repo
	arts *articles.Repo
}

func NewPublicHandlers(db *gorm.DB) *PublicHandlers {
	return &PublicHandlers{
		cats: categories.NewRepo(db),
		arts: articles.NewRepo(db),
	}
}

// Home lists every article newest-first with the category nav.
func (h *PublicHandlers) Home(c *gin.Context) {
	ctx := c.Request.Context()

	cats, err := h.cats.List(ctx)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	arts, err := h.arts.List(ctx)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	byID := make(map[uint]categories.Category, len(cats))
	for _, cat := range cats {
		byID[cat.ID] = cat
	}

	cards := make([]view.ArticleCard, 0, len(arts))
	for _, a := range arts {
		cat := byID[a.CategoryID]
		cards = append(cards, view.ArticleCard{
			Title:        a.Title,
			Slug:         a.Slug,
			Excerpt:      excerpt(a.Body),
			CategoryName: cat.Name,
			CategorySlug: cat.Slug,
		})
	}

	render.Component(c, http.StatusOK, pages.Home(middleware.GetFlash(c), view.HomePage{
		Categories: navCategories(cats),
		Articles:   cards,
	}))
}

// Article shows one article by slug; unknown slugs bounce to the home page.
func (h *PublicHandlers) Article(c *gin.Context) {
	ctx := c.Request.Context()

	a, err := h.arts.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	cats, err := h.cats.List(ctx)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	render.Component(c, http.StatusOK, pages.ArticleDetail(middleware.GetFlash(c), view.ArticlePage{
		Categories:   navCategories(cats),
		Title:        a.Title,
		Body:         a.Body,
		CategoryName: a.Category.Name,
		CategorySlug: a.Category.Slug,
	}))
}

// Category shows one category with its articles; unknown slugs bounce home.
func (h *PublicHandlers) Category(c *gin.Context) {
	ctx := c.Request.Context()

	cat, err := h.cats.GetBySlug(ctx, c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.Redirect(http.StatusFound, "/")
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	arts, err := h.arts.ListByCategory(ctx, cat.ID)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	cats, err := h.cats.List(ctx)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	cards := make([]view.ArticleCard, 0, len(arts))
	for _, a := range arts {
		cards = append(cards, view.ArticleCard{
			Title:   a.Title,
			Slug:    a.Slug,
			Excerpt: excerpt(a.Body),
		})
	}

	render.Component(c, http.StatusOK, pages.CategoryDetail(middleware.GetFlash(c), view.CategoryPage{
		Categories: navCategories(cats),
		Name:       cat.Name,
		Articles:   cards,
	}))
}

func navCategories(cats []categories.Category) []view.NavCategory {
	out := make([]view.NavCategory, 0, len(cats))
	for _, cat := range cats {
		out = append(out, view.NavCategory{Name: cat.Name, Slug: cat.Slug})
	}
	return out
}

const excerptLen = 200

func excerpt(body string) string {
	runes := []rune(body)
	if len(runes) <= excerptLen {
		return body
	}
	return string(runes[:excerptLen]) + "…"
}
