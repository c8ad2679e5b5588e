package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at"`
	Username      string         `gorm:"unique;not null" json:"username"`
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Birthday      *time.Time     `json:"birthday"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Phone         *string        `gorm:"unique" json:"phone"`
	Password      *string        `json:"-"` // nil for OAuth-only accounts
	Avatar        string         `json:"avatar"`
	GoogleID      *string        `gorm:"unique" json:"-"`
	Provider      string         `json:"provider"`
	ProviderID    string         `json:"-"`
	Role          Role           `json:"role" gorm:"foreignKey:RoleID"`
	RoleID        uint           `json:"role_id"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
	IsVerified    bool           `json:"is_verified"`
	EmailVerified bool           `json:"email_verified"`
	PhoneVerified bool           `json:"phone_verified"`
	// Lifetime green points, bumped atomically at every daily close
	TotalPoints int64 `gorm:"default:0" json:"total_points"`
}
