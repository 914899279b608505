package admins

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) List(ctx context.Context) ([]Admin, error) {
	var items []Admin
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (Admin, error) {
	var a Admin
	err := r.db.WithContext(ctx).
		First(&a, "username = ?", username).Error
	return a, err
}

func (r *Repo) Create(ctx context.Context, username, passwordHash string) (Admin, error) {
	a := Admin{
		Username:     username,
		PasswordHash: passwordHash,
	}
	if err := r.db.WithContext(ctx).Create(&a).Error; err != nil {
		return Admin{}, err
	}
	return a, nil
}

// Delete removes the admin with the given id. Deleting a missing id is a no-op:
// zero rows affected is not an error.
func (r *Repo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&Admin{}, "id = ?", id).Error
}

// IsDuplicateUsername reports whether err is the MySQL duplicate-key error
// (1062) on the username unique index.
func IsDuplicateUsername(err error) bool {
	var me *mysql.MySQLError
	return errors.As(err, &me) && me.Number == 1062
}
