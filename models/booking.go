package models

import (
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Booking statuses. Only Definitive bookings block a boat's availability.
const (
	BookingStatusTentative  = "Tentative"
	BookingStatusDefinitive = "Definitive"
	BookingStatusCancelled  = "Cancelled"
	BookingStatusRequested  = "Requested"
)

func IsValidBookingStatus(s string) bool {
	switch strings.TrimSpace(s) {
	case BookingStatusTentative, BookingStatusDefinitive, BookingStatusCancelled, BookingStatusRequested:
		return true
	}
	return false
}

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BoatID             uint `gorm:"index;column:boat_id" json:"boat_id"`
	CharterItineraryID uint `gorm:"index;column:charter_itinerary_id" json:"charter_itinerary_id"`
	OperatorID         uint `gorm:"index;column:operator_id" json:"operator_id"`
	ConciergeID        uint `gorm:"index;column:concierge_id" json:"concierge_id"`
	HotelID            uint `gorm:"index;column:hotel_id" json:"hotel_id"`

	ReferenceCode   string    `gorm:"column:reference_code;size:64;uniqueIndex" json:"reference_code,omitempty"`
	Status          string    `gorm:"column:status;size:32;index" json:"status"`
	BookingDateTime time.Time `gorm:"column:booking_date_time;index" json:"booking_date_time"`
	RoomNumber      string    `gorm:"column:room_number;size:32" json:"room_number,omitempty"`

	// Price of the charter itinerary at the moment of booking.
	FinalPrice float64 `gorm:"type:decimal(10,2)" json:"final_price"`

	// Snapshot of the selected add-ons (name + price) at creation time, so
	// later add-on edits don't rewrite booking history.
	ExtrasSnapshot datatypes.JSON `gorm:"column:extras_snapshot" json:"extrasSnapshot,omitempty"`

	Boat             Boat               `gorm:"foreignKey:BoatID" json:"boat,omitempty"`
	CharterItinerary CharterItinerary   `gorm:"foreignKey:CharterItineraryID" json:"charter_itinerary,omitempty"`
	Concierge        User               `gorm:"foreignKey:ConciergeID" json:"concierge,omitempty"`
	Passengers       []Passenger        `gorm:"foreignKey:BookingID" json:"passengers"`
	SelectedExtras   []BookingItinerary `gorm:"foreignKey:BookingID" json:"selected_extras"`
}
