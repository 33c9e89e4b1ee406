package models

import (
	"strings"

	"gorm.io/gorm"
)

// Boat types offered on the platform. "All" is a query wildcard, never a
// stored value.
const (
	BoatTypeCatamaran = "Catamaran"
	BoatTypeRIB       = "RIB"
	BoatTypeSpeedboat = "Speedboat"
	BoatTypeYacht     = "Yacht"
	BoatTypeMonohull  = "Monohull"

	BoatTypeAll = "All"
)

func IsValidBoatType(t string) bool {
	switch strings.TrimSpace(t) {
	case BoatTypeCatamaran, BoatTypeRIB, BoatTypeSpeedboat, BoatTypeYacht, BoatTypeMonohull:
		return true
	}
	return false
}

type Boat struct {
	gorm.Model

	Name     string `json:"name" gorm:"size:255"`
	BoatType string `json:"boatType" gorm:"column:boat_type;size:50;index"`
	Capacity int    `json:"capacity"`

	OperatorID uint `json:"operator_id" gorm:"index;column:operator_id"`
	HotelID    uint `json:"hotel_id" gorm:"index;column:hotel_id"`

	PhotoPath string `json:"photoPath" gorm:"size:255"`

	Operator Operator `gorm:"foreignKey:OperatorID" json:"operator,omitempty"`
	Hotel    Hotel    `gorm:"foreignKey:HotelID" json:"hotel,omitempty"`

	CharterItineraries []CharterItinerary `gorm:"foreignKey:BoatID" json:"charter_itineraries,omitempty"`
	Itineraries        []Itinerary        `gorm:"many2many:boat_itineraries" json:"itineraries,omitempty"`
}
