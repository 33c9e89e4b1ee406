package models

import (
	"time"

	"gorm.io/gorm"
)

// BoatUnavailability marks a boat as unbookable for one calendar day.
type BoatUnavailability struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	BoatID uint `gorm:"index;column:boat_id" json:"boat_id"`

	UnavailableDate time.Time `gorm:"column:unavailable_date;index" json:"unavailable_date"`
	Reason          string    `gorm:"size:255" json:"reason"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
