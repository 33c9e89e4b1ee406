package services

import (
	"testing"
	"time"

	"ezsail-backend/models"

	"github.com/stretchr/testify/require"
)

func boatIDs(boats []models.Boat) []uint {
	ids := make([]uint, 0, len(boats))
	for _, b := range boats {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestSearch_CapacityFilter(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	op := seedOperator(t, db, 3)
	hotel := seedHotel(t, db)

	small := seedBoat(t, db, op, hotel, "Nireus", models.BoatTypeRIB, 6)
	big := seedBoat(t, db, op, hotel, "Poseidon", models.BoatTypeYacht, 12)
	seedCharterItinerary(t, db, small, "Mykonos", models.CharterTypeFullDay)
	seedCharterItinerary(t, db, big, "Mykonos", models.CharterTypeFullDay)

	boats, err := svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		MinCapacity: 8,
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
	})
	require.NoError(t, err)
	require.Equal(t, []uint{big.ID}, boatIDs(boats))

	// minCapacity 0 must not filter on capacity at all
	boats, err = svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
	})
	require.NoError(t, err)
	require.Equal(t, []uint{small.ID, big.ID}, boatIDs(boats))
}

func TestSearch_DefinitiveBookingBlocksDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	op := seedOperator(t, db, 3)
	hotel := seedHotel(t, db)

	boat := seedBoat(t, db, op, hotel, "Nireus", models.BoatTypeRIB, 8)
	ci := seedCharterItinerary(t, db, boat, "Mykonos", models.CharterTypeFullDay)
	seedBooking(t, db, boat, ci,
		time.Date(2026, time.July, 10, 15, 0, 0, 0, time.Local),
		models.BookingStatusDefinitive)

	boats, err := svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
	})
	require.NoError(t, err)
	require.Empty(t, boats)

	// same boat, different day
	boats, err = svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 11),
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
	})
	require.NoError(t, err)
	require.Equal(t, []uint{boat.ID}, boatIDs(boats))
}

func TestSearch_TentativeBookingDoesNotBlock(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	op := seedOperator(t, db, 3)
	hotel := seedHotel(t, db)

	boat := seedBoat(t, db, op, hotel, "Nireus", models.BoatTypeRIB, 8)
	ci := seedCharterItinerary(t, db, boat, "Mykonos", models.CharterTypeFullDay)
	when := time.Date(2026, time.July, 10, 9, 0, 0, 0, time.Local)
	seedBooking(t, db, boat, ci, when, models.BookingStatusTentative)
	seedBooking(t, db, boat, ci, when, models.BookingStatusRequested)
	seedBooking(t, db, boat, ci, when, models.BookingStatusCancelled)

	boats, err := svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
	})
	require.NoError(t, err)
	require.Equal(t, []uint{boat.ID}, boatIDs(boats))
}

func TestSearch_UnavailabilityBlocksDay(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	op := seedOperator(t, db, 3)
	hotel := seedHotel(t, db)

	boat := seedBoat(t, db, op, hotel, "Nireus", models.BoatTypeRIB, 8)
	seedCharterItinerary(t, db, boat, "Mykonos", models.CharterTypeFullDay)
	require.NoError(t, db.Create(&models.BoatUnavailability{
		BoatID:          boat.ID,
		UnavailableDate: day(2026, time.July, 10),
		Reason:          "engine service",
	}).Error)

	boats, err := svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
	})
	require.NoError(t, err)
	require.Empty(t, boats)

	boats, err = svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 11),
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
	})
	require.NoError(t, err)
	require.Equal(t, []uint{boat.ID}, boatIDs(boats))
}

func TestSearch_CharterNameCaseInsensitiveTypeExact(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	op := seedOperator(t, db, 3)
	hotel := seedHotel(t, db)

	boat := seedBoat(t, db, op, hotel, "Nireus", models.BoatTypeRIB, 8)
	seedCharterItinerary(t, db, boat, "Mykonos", models.CharterTypeFullDay)

	boats, err := svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterName: "mykonos",
		CharterType: models.CharterTypeFullDay,
	})
	require.NoError(t, err)
	require.Equal(t, []uint{boat.ID}, boatIDs(boats))

	// same name, different charter type: no match
	boats, err = svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterName: "mykonos",
		CharterType: models.CharterTypeHalfDay,
	})
	require.NoError(t, err)
	require.Empty(t, boats)
}

func TestSearch_BoatTypeFilterAndWildcard(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	op := seedOperator(t, db, 3)
	hotel := seedHotel(t, db)

	rib := seedBoat(t, db, op, hotel, "Nireus", models.BoatTypeRIB, 8)
	yacht := seedBoat(t, db, op, hotel, "Poseidon", models.BoatTypeYacht, 10)
	seedCharterItinerary(t, db, rib, "Mykonos", models.CharterTypeFullDay)
	seedCharterItinerary(t, db, yacht, "Mykonos", models.CharterTypeFullDay)

	boats, err := svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
		BoatType:    models.BoatTypeYacht,
	})
	require.NoError(t, err)
	require.Equal(t, []uint{yacht.ID}, boatIDs(boats))

	for _, wildcard := range []string{"", models.BoatTypeAll} {
		boats, err = svc.Search(AvailabilityQuery{
			Date:        day(2026, time.July, 10),
			CharterName: "Mykonos",
			CharterType: models.CharterTypeFullDay,
			BoatType:    wildcard,
		})
		require.NoError(t, err)
		require.Equal(t, []uint{rib.ID, yacht.ID}, boatIDs(boats))
	}
}

func TestSearch_ScopeFilters(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)
	opA := seedOperator(t, db, 3)
	opB := seedOperator(t, db, 5)
	hotelA := seedHotel(t, db)
	hotelB := seedHotel(t, db)

	boatA := seedBoat(t, db, opA, hotelA, "Nireus", models.BoatTypeRIB, 8)
	boatB := seedBoat(t, db, opB, hotelB, "Poseidon", models.BoatTypeYacht, 10)
	seedCharterItinerary(t, db, boatA, "Mykonos", models.CharterTypeFullDay)
	seedCharterItinerary(t, db, boatB, "Mykonos", models.CharterTypeFullDay)

	boats, err := svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
		HotelID:     hotelA.ID,
	})
	require.NoError(t, err)
	require.Equal(t, []uint{boatA.ID}, boatIDs(boats))

	boats, err = svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
		OperatorID:  opB.ID,
	})
	require.NoError(t, err)
	require.Equal(t, []uint{boatB.ID}, boatIDs(boats))
}

func TestSearch_RejectsInvalidInput(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAvailabilityService(db)

	_, err := svc.Search(AvailabilityQuery{
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
	})
	require.ErrorContains(t, err, "date is required")

	_, err = svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterType: models.CharterTypeFullDay,
	})
	require.ErrorContains(t, err, "charterName")

	_, err = svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterName: "Mykonos",
		CharterType: "Fullday",
	})
	require.ErrorContains(t, err, "invalid charterType")

	_, err = svc.Search(AvailabilityQuery{
		Date:        day(2026, time.July, 10),
		CharterName: "Mykonos",
		CharterType: models.CharterTypeFullDay,
		BoatType:    "Submarine",
	})
	require.ErrorContains(t, err, "invalid boatType")
}
