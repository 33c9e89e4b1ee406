package models

import (
	"time"

	"gorm.io/gorm"
)

type Hotel struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"size:255" json:"name"`
	City         string `gorm:"size:150" json:"city"`
	ContactEmail string `gorm:"size:150" json:"contact_email"`
	Phone        string `gorm:"size:50" json:"phone"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
