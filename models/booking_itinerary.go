package models

import (
	"gorm.io/gorm"
)

// BookingItinerary records one add-on selected on a booking, with the price
// frozen at booking time.
type BookingItinerary struct {
	gorm.Model
	BookingID   uint    `gorm:"index;column:booking_id" json:"booking_id"`
	ItineraryID uint    `gorm:"index;column:itinerary_id" json:"itinerary_id"`
	Price       float64 `gorm:"type:decimal(10,2)" json:"price"`

	Itinerary Itinerary `gorm:"foreignKey:ItineraryID" json:"itinerary,omitempty"`
}
