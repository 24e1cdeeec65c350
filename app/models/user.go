package models

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// User is a staff account for the admin panel. The storefront itself has no
// customer accounts.
type User struct {
	ID          uint   `gorm:"primaryKey"`
	Email       string `gorm:"size:100;not null;uniqueIndex"`
	Password    string `gorm:"size:255;not null"`
	Role        string `gorm:"size:20;default:'staff';not null"`
	IsSuperuser bool   `gorm:"default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.IsSuperuser
}
