package admins

import "time"

// Admin is a panel account. Accounts are created and removed, never edited.
type Admin struct {
	ID           uint      `gorm:"primaryKey;autoIncrement"`
	Username     string    `gorm:"size:64;not null;uniqueIndex:ux_admins_username"`
	PasswordHash string    `gorm:"size:100;not null"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

func (Admin) TableName() string { return "admins" }
