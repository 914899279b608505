package articles

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Article, error) {
	var items []Article
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&items).Error
	return items, err
}

// ListPage returns one page of articles with their categories joined, plus the
// total article count. Offset arithmetic is the caller's page * size.
func (r *Repo) ListPage(ctx context.Context, page, size int) ([]Article, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&Article{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []Article
	err := r.db.WithContext(ctx).
		Preload("Category").
		Order("id ASC").
		Limit(size).
		Offset(page * size).
		Find(&items).Error
	return items, total, err
}

func (r *Repo) ListByCategory(ctx context.Context, categoryID uint) ([]Article, error) {
	var items []Article
	err := r.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("id DESC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id uint) (Article, error) {
	var a Article
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return a, err
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (Article, error) {
	var a Article
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&a, "slug = ?", slug).Error
	return a, err
}

func (r *Repo) Create(ctx context.Context, title, slug, body string, categoryID uint) (Article, error) {
	a := Article{
		Title:      title,
		Slug:       slug,
		Body:       body,
		CategoryID: categoryID,
	}
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return Article{}, err
	}
	return a, nil
}

// Update rewrites title, slug and body. The category assignment is left alone.
func (r *Repo) Update(ctx context.Context, id uint, title, slug, body string) error {
	return r.db.WithContext(ctx).Model(&Article{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title": title,
			"slug":  slug,
			"body":  body,
		}).Error
}

func (r *Repo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Article{}, "id = ?", id).Error
}
