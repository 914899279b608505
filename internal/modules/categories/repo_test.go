package categories_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"kalemcms.com/app/internal/modules/articles"
	"kalemcms.com/app/internal/modules/categories"
	"kalemcms.com/app/internal/shared/slug"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&categories.Category{}, &articles.Article{}))
	return db
}

func TestDeleteCascadeRemovesArticles(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	catRepo := categories.NewRepo(db)
	artRepo := articles.NewRepo(db)

	doomed, err := catRepo.Create(ctx, "Silinecek", "silinecek")
	require.NoError(t, err)
	keeper, err := catRepo.Create(ctx, "Kalacak", "kalacak")
	require.NoError(t, err)

	var doomedIDs []uint
	for i := 0; i < 3; i++ {
		title := fmt.Sprintf("Giden %d", i)
		a, err := artRepo.Create(ctx, title, slug.FromTitle(title), "gövde", doomed.ID)
		require.NoError(t, err)
		doomedIDs = append(doomedIDs, a.ID)
	}
	kept, err := artRepo.Create(ctx, "Kalan", "kalan", "gövde", keeper.ID)
	require.NoError(t, err)

	require.NoError(t, catRepo.DeleteCascade(ctx, doomed.ID))

	for _, id := range doomedIDs {
		_, err := artRepo.Get(ctx, id)
		require.True(t, errors.Is(err, gorm.ErrRecordNotFound), "article %d should be gone", id)
	}

	_, err = catRepo.Get(ctx, doomed.ID)
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	// Diğer kategori ve makalesi yerinde durur
	_, err = artRepo.Get(ctx, kept.ID)
	require.NoError(t, err)
	_, err = catRepo.Get(ctx, keeper.ID)
	require.NoError(t, err)
}

func TestUpdateRederivesSlug(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	repo := categories.NewRepo(db)
	cat, err := repo.Create(ctx, "Eski Ad", slug.FromTitle("Eski Ad"))
	require.NoError(t, err)

	require.NoError(t, repo.Update(ctx, cat.ID, "Yeni Ad", slug.FromTitle("Yeni Ad")))

	got, err := repo.Get(ctx, cat.ID)
	require.NoError(t, err)
	require.Equal(t, "Yeni Ad", got.Name)
	require.Equal(t, "yeni-ad", got.Slug)
}

func TestGetBySlug(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	repo := categories.NewRepo(db)
	_, err := repo.Create(ctx, "Teknoloji", "teknoloji")
	require.NoError(t, err)

	got, err := repo.GetBySlug(ctx, "teknoloji")
	require.NoError(t, err)
	require.Equal(t, "Teknoloji", got.Name)

	_, err = repo.GetBySlug(ctx, "yok-boyle-bir-sey")
	require.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}
