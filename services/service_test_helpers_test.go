package services

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"ezsail-backend/config"
	"ezsail-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a per-test in-memory sqlite database with the full
// schema migrated.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, config.MigrateModels(db))
	return db
}

func seedOperator(t *testing.T, db *gorm.DB, pct float64) models.Operator {
	t.Helper()
	op := models.Operator{
		CompanyName:           "Aegean Charters",
		ContactEmail:          "ops@aegean.example",
		PlatformCommissionPct: pct,
	}
	require.NoError(t, db.Create(&op).Error)
	return op
}

func seedHotel(t *testing.T, db *gorm.DB) models.Hotel {
	t.Helper()
	h := models.Hotel{Name: "Cavo Bianco", City: "Mykonos"}
	require.NoError(t, db.Create(&h).Error)
	return h
}

func seedBoat(t *testing.T, db *gorm.DB, op models.Operator, hotel models.Hotel, name, boatType string, capacity int) models.Boat {
	t.Helper()
	b := models.Boat{
		Name:       name,
		BoatType:   boatType,
		Capacity:   capacity,
		OperatorID: op.ID,
		HotelID:    hotel.ID,
	}
	require.NoError(t, db.Create(&b).Error)
	return b
}

func seedCharterItinerary(t *testing.T, db *gorm.DB, boat models.Boat, name, charterType string) models.CharterItinerary {
	t.Helper()
	pricing, err := ComputeCharterPricing(CharterPricingInput{
		NetBoatRentalWithoutCommission: 1000,
		Commission:                     100,
		FuelCost:                       150,
		PlatformCommissionPct:          3,
	})
	require.NoError(t, err)

	ci := models.CharterItinerary{
		BoatID: boat.ID,
		Name:   name,
		Type:   charterType,

		NetBoatRentalWithoutCommission: pricing.NetBoatRentalWithoutCommission,
		Commission:                     pricing.Commission,
		FuelCost:                       pricing.FuelCost,
		NetBoatRentalWithoutVAT:        pricing.NetBoatRentalWithoutVAT,
		VAT:                            pricing.VAT,
		BoatRentalDay:                  pricing.BoatRentalDay,
		PriceVATAndFuelIncluded:        pricing.PriceVATAndFuelIncluded,
		EzsailSeaServicesCommission:    pricing.EzsailSeaServicesCommission,
		FinalPrice:                     pricing.FinalPrice,
	}
	require.NoError(t, db.Create(&ci).Error)
	return ci
}

var seedRefSeq atomic.Uint64

func seedBooking(t *testing.T, db *gorm.DB, boat models.Boat, ci models.CharterItinerary, when time.Time, status string) models.Booking {
	t.Helper()
	bk := models.Booking{
		BoatID:             boat.ID,
		CharterItineraryID: ci.ID,
		OperatorID:         boat.OperatorID,
		HotelID:            boat.HotelID,
		ReferenceCode:      fmt.Sprintf("EZS-TEST%04d", seedRefSeq.Add(1)),
		Status:             status,
		BookingDateTime:    when,
		FinalPrice:         ci.FinalPrice,
	}
	require.NoError(t, db.Create(&bk).Error)
	return bk
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}
