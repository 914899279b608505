package http_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kalemcms.com/app/internal/config"
	apphttp "kalemcms.com/app/internal/http"
	"kalemcms.com/app/internal/http/middleware"
	"kalemcms.com/app/internal/modules/admins"
	"kalemcms.com/app/internal/modules/articles"
	"kalemcms.com/app/internal/modules/categories"
	"kalemcms.com/app/internal/shared/slug"
)

func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&admins.Admin{},
		&categories.Category{},
		&articles.Article{},
		&middleware.Session{},
	))

	cfg := config.Config{
		Addr:          ":0",
		DBDSN:         dsn,
		SessionSecret: "test-secret",
		SessionTTL:    time.Hour,
	}
	l := slog.New(slog.NewTextHandler(io.Discard, nil))
	return apphttp.NewRouter(l, db, cfg), db
}

func seedAdmin(t *testing.T, db *gorm.DB, username, password string) admins.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	a, err := admins.NewRepo(db).Create(context.Background(), username, string(hash))
	require.NoError(t, err)
	return a
}

func doGet(r *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doForm(r *gin.Engine, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, username, password string) *http.Cookie {
	t.Helper()
	w := doForm(r, "/admin/login", url.Values{
		"username": {username},
		"password": {password},
	})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin", w.Header().Get("Location"))

	for _, ck := range w.Result().Cookies() {
		if ck.Name == apphttp.SessionCookie && ck.Value != "" {
			return ck
		}
	}
	t.Fatal("no session cookie on successful login")
	return nil
}

func TestAuthGateRedirectsAnonymous(t *testing.T) {
	r, _ := newTestApp(t)

	for _, path := range []string{
		"/admin",
		"/admin/list",
		"/admin/add",
		"/admin/categories",
		"/admin/articles",
		"/admin/articles/page/0",
	} {
		w := doGet(r, path)
		require.Equal(t, http.StatusFound, w.Code, "path %s", path)
		require.Equal(t, "/admin/login", w.Header().Get("Location"), "path %s", path)
	}
}

func TestLoginFailureIndistinguishable(t *testing.T) {
	r, db := newTestApp(t)
	seedAdmin(t, db, "root", "dogru-sifre")

	unknown := doForm(r, "/admin/login", url.Values{
		"username": {"kimse"},
		"password": {"dogru-sifre"},
	})
	wrongPw := doForm(r, "/admin/login", url.Values{
		"username": {"root"},
		"password": {"yanlis-sifre"},
	})

	require.Equal(t, http.StatusFound, unknown.Code)
	require.Equal(t, http.StatusFound, wrongPw.Code)
	require.Equal(t, "/", unknown.Header().Get("Location"))
	require.Equal(t, unknown.Header().Get("Location"), wrongPw.Header().Get("Location"))

	for _, w := range []*httptest.ResponseRecorder{unknown, wrongPw} {
		for _, ck := range w.Result().Cookies() {
			require.NotEqual(t, apphttp.SessionCookie, ck.Name, "failed login must not open a session")
		}
	}
}

func TestLoginLogoutFlow(t *testing.T) {
	r, db := newTestApp(t)
	seedAdmin(t, db, "root", "s3cret")

	ck := login(t, r, "root", "s3cret")

	w := doGet(r, "/admin", ck)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "root")

	w = doGet(r, "/admin/logout", ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))

	// Oturum gitti: panel tekrar kapalı
	w = doGet(r, "/admin", ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/login", w.Header().Get("Location"))

	// İkinci logout da sorunsuz
	w = doGet(r, "/admin/logout", ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/", w.Header().Get("Location"))
}

func TestDoubleLoginSkipsCredentialCheck(t *testing.T) {
	r, db := newTestApp(t)
	seedAdmin(t, db, "root", "s3cret")

	ck := login(t, r, "root", "s3cret")

	// Zaten giriş yapılmış: yanlış şifre bile panele döner
	w := doForm(r, "/admin/login", url.Values{
		"username": {"root"},
		"password": {"tamamen-yanlis"},
	}, ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestExpiredSessionIsLoggedOut(t *testing.T) {
	r, db := newTestApp(t)
	a := seedAdmin(t, db, "root", "s3cret")

	sess := middleware.Session{
		ID:        "00000000-0000-0000-0000-000000000001",
		AdminID:   a.ID,
		Username:  a.Username,
		ExpiresAt: time.Now().Add(-time.Minute),
		CreatedAt: time.Now().Add(-time.Hour),
	}
	require.NoError(t, db.Create(&sess).Error)

	w := doGet(r, "/admin", &http.Cookie{Name: apphttp.SessionCookie, Value: sess.ID})
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/login", w.Header().Get("Location"))

	// Süresi dolan cookie diğerleriyle aynı niteliklerle temizlenir
	cleared := findCookie(t, w, apphttp.SessionCookie)
	require.Equal(t, "", cleared.Value)
	require.Equal(t, http.SameSiteLaxMode, cleared.SameSite)
}

func findCookie(t *testing.T, w *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func seedArticles(t *testing.T, db *gorm.DB, n int) categories.Category {
	t.Helper()
	ctx := context.Background()
	cat, err := categories.NewRepo(db).Create(ctx, "Genel", "genel")
	require.NoError(t, err)
	repo := articles.NewRepo(db)
	for i := 0; i < n; i++ {
		title := fmt.Sprintf("Makale %d", i)
		_, err := repo.Create(ctx, title, slug.FromTitle(title), "gövde", cat.ID)
		require.NoError(t, err)
	}
	return cat
}

func TestArticleListingPagination(t *testing.T) {
	r, db := newTestApp(t)
	seedAdmin(t, db, "root", "s3cret")
	ck := login(t, r, "root", "s3cret")
	seedArticles(t, db, 9)

	// Unpaged listing lands on page 0
	w := doGet(r, "/admin/articles", ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/articles/page/0", w.Header().Get("Location"))

	// 9 makale / 4'lük sayfa: son sayfa 2
	w = doGet(r, "/admin/articles/page/5", ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/articles/page/2", w.Header().Get("Location"))

	// Son sayfada tek makale var
	w = doGet(r, "/admin/articles/page/2", ck)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Makale 8")
	require.NotContains(t, w.Body.String(), "Makale 7")

	// Bozuk sayfa parametresi 0 sayılır
	w = doGet(r, "/admin/articles/page/abc", ck)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Makale 0")
}

func TestArticleListingFullLastPage(t *testing.T) {
	r, db := newTestApp(t)
	seedAdmin(t, db, "root", "s3cret")
	ck := login(t, r, "root", "s3cret")
	seedArticles(t, db, 8)

	// 8 makale: sayfa 0 ve 1 dolu, son sayfa 1
	w := doGet(r, "/admin/articles/page/5", ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/articles/page/1", w.Header().Get("Location"))

	w = doGet(r, "/admin/articles/page/1", ck)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Makale 7")
}

func TestArticleListingEmpty(t *testing.T) {
	r, db := newTestApp(t)
	seedAdmin(t, db, "root", "s3cret")
	ck := login(t, r, "root", "s3cret")

	// Hiç makale yokken redirect yok, boş sayfa render edilir
	w := doGet(r, "/admin/articles/page/0", ck)
	require.Equal(t, http.StatusOK, w.Code)

	w = doGet(r, "/admin/articles/page/7", ck)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestArticleSaveAndValidation(t *testing.T) {
	r, db := newTestApp(t)
	seedAdmin(t, db, "root", "s3cret")
	ck := login(t, r, "root", "s3cret")
	cat := seedArticles(t, db, 0)

	// Eksik alan: geldiği sayfaya döner
	req := httptest.NewRequest(http.MethodPost, "/admin/articles/save",
		strings.NewReader(url.Values{"title": {"Yarım"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "/admin/articles/new")
	req.AddCookie(ck)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/articles/new", w.Header().Get("Location"))

	// Tam form: kayıt + listeye redirect
	w = doForm(r, "/admin/articles/save", url.Values{
		"title":      {"Tam Makale"},
		"body":       {"gövde"},
		"categoryId": {fmt.Sprint(cat.ID)},
	}, ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/articles", w.Header().Get("Location"))

	got, err := articles.NewRepo(db).GetBySlug(context.Background(), "tam-makale")
	require.NoError(t, err)
	require.Equal(t, "Tam Makale", got.Title)
	require.Equal(t, cat.ID, got.CategoryID)
}

func TestCategoryCascadeDelete(t *testing.T) {
	r, db := newTestApp(t)
	seedAdmin(t, db, "root", "s3cret")
	ck := login(t, r, "root", "s3cret")
	cat := seedArticles(t, db, 3)

	w := doForm(r, "/admin/categories/delete", url.Values{
		"id": {fmt.Sprint(cat.ID)},
	}, ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/categories", w.Header().Get("Location"))

	ctx := context.Background()
	_, err := categories.NewRepo(db).Get(ctx, cat.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	left, err := articles.NewRepo(db).ListByCategory(ctx, cat.ID)
	require.NoError(t, err)
	require.Empty(t, left)
}

func TestCategorySaveValidation(t *testing.T) {
	r, db := newTestApp(t)
	seedAdmin(t, db, "root", "s3cret")
	ck := login(t, r, "root", "s3cret")

	// Boş ad: referer'a döner
	req := httptest.NewRequest(http.MethodPost, "/admin/categories/save",
		strings.NewReader(url.Values{"category": {"   "}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "/admin/categories/new")
	req.AddCookie(ck)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/categories/new", w.Header().Get("Location"))

	// Geçerli ad: slug türetilir
	w = doForm(r, "/admin/categories/save", url.Values{"category": {"Yazılım Dünyası"}}, ck)
	require.Equal(t, http.StatusFound, w.Code)

	got, err := categories.NewRepo(db).GetBySlug(context.Background(), "yazilim-dunyasi")
	require.NoError(t, err)
	require.Equal(t, "Yazılım Dünyası", got.Name)
}

func TestCategoryEditRejectsBadID(t *testing.T) {
	r, db := newTestApp(t)
	seedAdmin(t, db, "root", "s3cret")
	ck := login(t, r, "root", "s3cret")

	for _, path := range []string{
		"/admin/categories/edit/abc",
		"/admin/categories/edit/999", // yok
	} {
		w := doGet(r, path, ck)
		require.Equal(t, http.StatusFound, w.Code, "path %s", path)
		require.Equal(t, "/admin/categories", w.Header().Get("Location"), "path %s", path)
	}
}

func TestAdminAddAndRemove(t *testing.T) {
	r, db := newTestApp(t)
	seedAdmin(t, db, "root", "s3cret")
	ck := login(t, r, "root", "s3cret")

	w := doForm(r, "/admin/add", url.Values{
		"username": {"editor"},
		"password": {"gizli-sifre"},
	}, ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/list", w.Header().Get("Location"))

	ctx := context.Background()
	a, err := admins.NewRepo(db).GetByUsername(ctx, "editor")
	require.NoError(t, err)
	require.NotEqual(t, "gizli-sifre", a.PasswordHash, "plaintext must never be stored")
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte("gizli-sifre")))

	// Eksik şifre: kayıt yapılmaz, gönderen sayfaya geri dönülür
	req := httptest.NewRequest(http.MethodPost, "/admin/add", strings.NewReader(url.Values{"username": {"yarim"}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", "/admin/add")
	req.AddCookie(ck)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/add", w.Header().Get("Location"))
	_, err = admins.NewRepo(db).GetByUsername(ctx, "yarim")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// Referer yoksa sabit rotaya düşer
	w = doForm(r, "/admin/add", url.Values{"password": {"tek-basina"}}, ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/add", w.Header().Get("Location"))

	// Silme + olmayan id sessiz no-op
	w = doForm(r, "/admin/remove", url.Values{"id": {fmt.Sprint(a.ID)}}, ck)
	require.Equal(t, http.StatusFound, w.Code)
	_, err = admins.NewRepo(db).GetByUsername(ctx, "editor")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	w = doForm(r, "/admin/remove", url.Values{"id": {"4242"}}, ck)
	require.Equal(t, http.StatusFound, w.Code)
	require.Equal(t, "/admin/list", w.Header().Get("Location"))
}

func TestPublicPages(t *testing.T) {
	r, db := newTestApp(t)
	seedArticles(t, db, 2)

	w := doGet(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Makale 0")
	require.Contains(t, w.Body.String(), "Genel")

	w = doGet(r, "/article/makale-1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Makale 1")

	w = doGet(r, "/category/genel")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Makale 0")

	// Bilinmeyen slug ana sayfaya döner
	for _, path := range []string{"/article/yok", "/category/yok"} {
		w = doGet(r, path)
		require.Equal(t, http.StatusFound, w.Code, "path %s", path)
		require.Equal(t, "/", w.Header().Get("Location"), "path %s", path)
	}
}

func TestHealthz(t *testing.T) {
	r, _ := newTestApp(t)
	w := doGet(r, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestPanicRendersErrorPage(t *testing.T) {
	r, _ := newTestApp(t)
	r.GET("/patla", func(c *gin.Context) {
		panic("beklenmedik durum")
	})

	w := doGet(r, "/patla")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "500")
	require.Contains(t, w.Body.String(), "Request ID")
	require.NotContains(t, w.Body.String(), "beklenmedik durum")
}
