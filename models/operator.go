package models

import (
	"time"

	"gorm.io/gorm"
)

type Operator struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CompanyName  string `gorm:"size:255" json:"company_name"`
	ContactEmail string `gorm:"size:150" json:"contact_email"`
	Phone        string `gorm:"size:50" json:"phone"`

	// Percentage the platform charges this operator on every charter
	// itinerary. Unset means 0%.
	PlatformCommissionPct float64 `gorm:"type:decimal(5,2);default:0" json:"platform_commission_pct"`

	Boats []Boat `gorm:"foreignKey:OperatorID" json:"boats,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
