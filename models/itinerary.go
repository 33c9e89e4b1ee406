package models

import (
	"time"

	"gorm.io/gorm"
)

// Itinerary is an optional add-on (e.g. catering, water toys) offered per
// boat and selectable per booking. Distinct from CharterItinerary.
type Itinerary struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:255" json:"name"`
	Price float64 `gorm:"type:decimal(10,2)" json:"price"`

	Boats []Boat `gorm:"many2many:boat_itineraries" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
