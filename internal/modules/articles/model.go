package articles

import (
	"time"

	"kalemcms.com/app/internal/modules/categories"
)

// Article belongs to exactly one category. Slug follows the title on every
// write, same rule as category slugs.
type Article struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	Slug       string `gorm:"size:191;not null;index:ix_articles_slug"`
	Title      string `gorm:"size:191;not null"`
	Body       string `gorm:"type:text;not null"`
	CategoryID uint   `gorm:"not null;index:ix_articles_category_id"`
	Category   categories.Category
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

func (Article) TableName() string { return "articles" }
