package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Charter types. Stored exactly as listed; matching against them is
// case-sensitive (charter names are the case-insensitive part).
const (
	CharterTypeFullDay      = "FullDay"
	CharterTypeHalfDay      = "HalfDay"
	CharterTypeVipTransfer  = "VipTransfer"
	CharterTypeSunsetCruise = "SunsetCruise"
)

func IsValidCharterType(t string) bool {
	switch strings.TrimSpace(t) {
	case CharterTypeFullDay, CharterTypeHalfDay, CharterTypeVipTransfer, CharterTypeSunsetCruise:
		return true
	}
	return false
}

// CharterItinerary is a named, priced offering tying a boat to a charter
// type. The monetary breakdown is computed once at creation from the three
// caller inputs plus the operator's platform commission percentage, and is
// immutable afterwards.
type CharterItinerary struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	BoatID uint   `gorm:"index;column:boat_id" json:"boat_id"`
	Name   string `gorm:"size:255;index" json:"name"`
	Type   string `gorm:"size:50;index" json:"type"`

	// Caller-supplied primitives
	NetBoatRentalWithoutCommission float64 `gorm:"type:decimal(10,2)" json:"netBoatRentalWithoutCommission"`
	Commission                     float64 `gorm:"type:decimal(10,2)" json:"commission"`
	FuelCost                       float64 `gorm:"type:decimal(10,2)" json:"fuelCost"`

	// Derived chain (see services.ComputeCharterPricing)
	NetBoatRentalWithoutVAT     float64 `gorm:"type:decimal(10,2)" json:"netBoatRentalWithoutVAT"`
	VAT                         float64 `gorm:"column:vat;type:decimal(10,2)" json:"vat"`
	BoatRentalDay               float64 `gorm:"type:decimal(10,2)" json:"boatRentalDay"`
	PriceVATAndFuelIncluded     float64 `gorm:"column:price_vat_and_fuel_included;type:decimal(10,2)" json:"priceVATAndFuelIncluded"`
	EzsailSeaServicesCommission float64 `gorm:"type:decimal(10,2)" json:"ezsailSeaServicesCommission"`
	FinalPrice                  float64 `gorm:"type:decimal(10,2)" json:"finalPrice"`

	Boat Boat `gorm:"foreignKey:BoatID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
