package categories

import (
	"context"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Category, error) {
	var items []Category
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) Get(ctx context.Context, id uint) (Category, error) {
	var c Category
	err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (r *Repo) GetBySlug(ctx context.Context, slug string) (Category, error) {
	var c Category
	err := r.db.WithContext(ctx).First(&c, "slug = ?", slug).Error
	return c, err
}

func (r *Repo) Create(ctx context.Context, name, slug string) (Category, error) {
	c := Category{Name: name, Slug: slug}
	if err := r.db.WithContext(ctx).Create(&c).Error; err != nil {
		return Category{}, err
	}
	return c, nil
}

func (r *Repo) Update(ctx context.Context, id uint, name, slug string) error {
	return r.db.WithContext(ctx).Model(&Category{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name": name,
			"slug": slug,
		}).Error
}

// DeleteCascade removes the category and every article under it in a single
// transaction. Articles go first; there is no database-level cascade, so the
// order keeps foreign references from dangling mid-delete.
func (r *Repo) DeleteCascade(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM articles WHERE category_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Category{}, "id = ?", id).Error
	})
}
