package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles are a closed set, validated at the boundary and carried in the
// session token claims.
const (
	RoleAdmin     = "admin"
	RoleB2B       = "b2b"
	RoleConcierge = "concierge"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleB2B, RoleConcierge:
		return true
	}
	return false
}

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	FullName string `gorm:"size:255" json:"full_name"`
	Email    string `gorm:"uniqueIndex;size:150" json:"email"`
	Password string `gorm:"size:255" json:"-"` // store hashed password, never return in JSON
	Role     string `gorm:"size:32;index" json:"role"`

	// Scope references: b2b users belong to an operator, concierges to a hotel.
	OperatorID *uint `gorm:"index" json:"operator_id,omitempty"`
	HotelID    *uint `gorm:"index" json:"hotel_id,omitempty"`

	ResetToken        *string    `gorm:"size:128;index" json:"-"`
	ResetTokenExpires *time.Time `json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
