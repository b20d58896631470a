package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is one login account. Staff accounts carry the tenant they
// belong to; the platform owner has Role "owner" and no tenant.
type UserModel struct {
	ID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserName string    `gorm:"size:50;not null;unique" json:"user_name" validate:"required,min=3,max=50"`
	FullName *string   `gorm:"size:120" json:"full_name,omitempty"`
	Email    string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password string    `gorm:"not null" json:"-" validate:"required,min=8"`
	GoogleID *string   `gorm:"size:255;unique" json:"google_id,omitempty"`

	Role     string     `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	TenantID *uuid.UUID `gorm:"type:uuid;index" json:"tenant_id,omitempty"`

	Phone    *string `gorm:"size:20" json:"phone,omitempty"`
	IsActive bool    `gorm:"not null;default:true" json:"is_active"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (UserModel) TableName() string { return "users" }

// IsPlatformOwner reports whether the account is the global owner (no
// tenant binding, owner role).
func (u *UserModel) IsPlatformOwner() bool {
	return u.Role == "owner" && u.TenantID == nil
}
