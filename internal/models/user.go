package models

import "time"

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	// Permalink addresses the user on the real-time channel ("account<permalink>").
	Permalink string `gorm:"size:64;uniqueIndex" json:"permalink"`

	ActiveRoleID uint `json:"active_role_id"`
	ActiveRole   Role `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"active_role"`

	Roles []Role `gorm:"many2many:user_roles;" json:"roles,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
