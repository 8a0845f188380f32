package models

import "time"

// AdminUser is a back-office principal. There is a single admin tier today;
// the role column keeps the gate from hard-coding "authenticated implies
// full access".
type AdminUser struct {
	BaseModel
	Email        string    `gorm:"not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         AdminRole `gorm:"not null;default:admin" json:"role"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}

type RefreshToken struct {
	BaseModel
	Token       string    `gorm:"not null;uniqueIndex" json:"-"`
	AdminUserID string    `gorm:"not null;index" json:"admin_user_id"`
	ExpiresAt   time.Time `gorm:"not null" json:"expires_at"`
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}
