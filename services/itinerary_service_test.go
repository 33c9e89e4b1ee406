package services

import (
	"math"
	"testing"
	"time"

	"ezsail-backend/models"

	"github.com/stretchr/testify/require"
)

func TestItineraryCreateListDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewItineraryService(db)

	catering, err := svc.Create(" Catering ", 120)
	require.NoError(t, err)
	require.Equal(t, "Catering", catering.Name)

	_, err = svc.Create("", 10)
	require.ErrorContains(t, err, "name is required")

	_, err = svc.Create("X", -1)
	require.ErrorContains(t, err, "non-negative")

	_, err = svc.Create("X", math.NaN())
	require.ErrorContains(t, err, "non-negative")

	free, err := svc.Create("Snorkeling gear", 0)
	require.NoError(t, err)

	list, err := svc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	require.NoError(t, svc.Delete(free.ID))
	require.ErrorContains(t, svc.Delete(free.ID), "itinerary_not_found")
}

func TestItineraryDelete_KeepsBookingSnapshots(t *testing.T) {
	db := setupTestDB(t)
	svc := NewItineraryService(db)
	op := seedOperator(t, db, 3)
	hotel := seedHotel(t, db)
	boat := seedBoat(t, db, op, hotel, "Nireus", models.BoatTypeRIB, 8)
	ci := seedCharterItinerary(t, db, boat, "Mykonos", models.CharterTypeFullDay)

	catering, err := svc.Create("Catering", 120)
	require.NoError(t, err)
	require.NoError(t, db.Model(&boat).Association("Itineraries").Append(catering))

	bk := seedBooking(t, db, boat, ci,
		time.Date(2026, time.July, 10, 9, 0, 0, 0, time.Local),
		models.BookingStatusDefinitive)
	require.NoError(t, db.Create(&models.BookingItinerary{
		BookingID: bk.ID, ItineraryID: catering.ID, Price: catering.Price,
	}).Error)

	require.NoError(t, svc.Delete(catering.ID))

	// boat link gone, booking selection with its snapshot price survives
	var linked []models.Itinerary
	require.NoError(t, db.Model(&boat).Association("Itineraries").Find(&linked))
	require.Empty(t, linked)

	var sel models.BookingItinerary
	require.NoError(t, db.Where("booking_id = ?", bk.ID).First(&sel).Error)
	require.InDelta(t, 120, sel.Price, 1e-9)
}
