package categories

import "time"

// Category groups articles. Slug is re-derived from the name on every write;
// uniqueness of slugs is deliberately not enforced at this layer.
type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Slug      string    `gorm:"size:191;not null;index:ix_categories_slug"`
	Name      string    `gorm:"size:191;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (Category) TableName() string { return "categories" }
