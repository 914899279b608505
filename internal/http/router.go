package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"kalemcms.com/app/internal/config"
	"kalemcms.com/app/internal/http/flash"
	"kalemcms.com/app/internal/http/handlers"
	adminh "kalemcms.com/app/internal/http/handlers/admin"
	"kalemcms.com/app/internal/http/middleware"
)

const (
	SessionCookie = "kalem_session"
	FlashCookie   = "kalem_flash"
)

// NewRouter wires middleware and the full route table.
func NewRouter(logger *slog.Logger, db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()

	flashCodec := flash.NewCodec([]byte(cfg.SessionSecret), FlashCookie, cfg.CookieSecure)
	sessCfg := middleware.SessionCfg{
		DB:         db,
		CookieName: SessionCookie,
		Secure:     cfg.CookieSecure,
		TTL:        cfg.SessionTTL,
	}

	// ErrorHandler zinciri sarmalı: panic Recovery'de yakalanıp hata olarak
	// kaydedilir, yanıtı ErrorHandler üretir
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.ErrorHandler(logger),
		middleware.Recovery(logger),
		middleware.SessionMiddleware(sessCfg),
		middleware.FlashMiddleware(flashCodec),
	)

	r.Static("/assets", "./public")

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.String(http.StatusServiceUnavailable, "db down")
			return
		}
		c.String(http.StatusOK, "ok")
	})

	// Public reads
	pub := handlers.NewPublicHandlers(db)
	r.GET("/", pub.Home)
	r.GET("/article/:slug", pub.Article)
	r.GET("/category/:slug", pub.Category)

	// Auth: login/logout stay outside the gate
	auth := handlers.NewAuthHandlers(db, flashCodec, sessCfg)
	r.GET("/admin/login", auth.LoginGet)
	r.POST("/admin/login", auth.LoginPost)
	r.GET("/admin/logout", auth.Logout)

	// Panel: everything below requires a live session
	adm := r.Group("/admin", middleware.RequireAdmin())
	adm.GET("", adminh.Dashboard)

	accounts := adminh.NewAccountsHandler(db, flashCodec)
	adm.GET("/list", accounts.List)
	adm.GET("/add", accounts.AddGet)
	adm.POST("/add", accounts.AddPost)
	adm.POST("/remove", accounts.RemovePost)

	cats := adminh.NewCategoriesHandler(db, flashCodec)
	adm.GET("/categories", cats.List)
	adm.GET("/categories/new", cats.NewGet)
	adm.POST("/categories/save", cats.SavePost)
	adm.GET("/categories/edit/:id", cats.EditGet)
	adm.POST("/categories/edit/update", cats.UpdatePost)
	adm.POST("/categories/delete", cats.DeletePost)

	arts := adminh.NewArticlesHandler(db, flashCodec)
	adm.GET("/articles", arts.RedirectList)
	adm.GET("/articles/page/:page", arts.List)
	adm.GET("/articles/new", arts.NewGet)
	adm.POST("/articles/save", arts.SavePost)
	adm.GET("/articles/edit/:id", arts.EditGet)
	adm.POST("/articles/edit/update", arts.UpdatePost)
	adm.POST("/articles/delete", arts.DeletePost)

	return r
}
