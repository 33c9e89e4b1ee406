package services

import (
	"testing"
	"time"

	"ezsail-backend/models"

	"github.com/stretchr/testify/require"
)

func TestAnalyticsSummary(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db)
	op := seedOperator(t, db, 3)
	hotel := seedHotel(t, db)
	boat := seedBoat(t, db, op, hotel, "Nireus", models.BoatTypeRIB, 8)
	ci := seedCharterItinerary(t, db, boat, "Mykonos", models.CharterTypeFullDay)

	seedBooking(t, db, boat, ci,
		time.Date(2026, time.June, 5, 9, 0, 0, 0, time.Local),
		models.BookingStatusDefinitive)
	seedBooking(t, db, boat, ci,
		time.Date(2026, time.July, 6, 9, 0, 0, 0, time.Local),
		models.BookingStatusDefinitive)
	seedBooking(t, db, boat, ci,
		time.Date(2026, time.July, 7, 9, 0, 0, 0, time.Local),
		models.BookingStatusTentative)
	seedBooking(t, db, boat, ci,
		time.Date(2026, time.July, 8, 9, 0, 0, 0, time.Local),
		models.BookingStatusCancelled)

	sum, err := svc.Summary(0)
	require.NoError(t, err)

	require.EqualValues(t, 4, sum.TotalBookings)
	require.EqualValues(t, 2, sum.CountsByStatus[models.BookingStatusDefinitive])
	require.EqualValues(t, 1, sum.CountsByStatus[models.BookingStatusTentative])
	require.EqualValues(t, 1, sum.CountsByStatus[models.BookingStatusCancelled])

	// revenue counts Definitive only
	require.InDelta(t, 2*ci.FinalPrice, sum.TotalRevenue, 1e-6)
	require.InDelta(t, ci.FinalPrice, sum.RevenueByMonth["2026-06"], 1e-6)
	require.InDelta(t, ci.FinalPrice, sum.RevenueByMonth["2026-07"], 1e-6)

	require.Len(t, sum.TopBoats, 1)
	require.Equal(t, boat.ID, sum.TopBoats[0].BoatID)
	require.Equal(t, "Nireus", sum.TopBoats[0].BoatName)
	require.EqualValues(t, 4, sum.TopBoats[0].Bookings)
	require.InDelta(t, 2*ci.FinalPrice, sum.TopBoats[0].Revenue, 1e-6)
}

func TestAnalyticsSummary_OperatorScope(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db)
	opA := seedOperator(t, db, 3)
	opB := seedOperator(t, db, 5)
	hotel := seedHotel(t, db)

	boatA := seedBoat(t, db, opA, hotel, "Nireus", models.BoatTypeRIB, 8)
	boatB := seedBoat(t, db, opB, hotel, "Poseidon", models.BoatTypeYacht, 10)
	ciA := seedCharterItinerary(t, db, boatA, "Mykonos", models.CharterTypeFullDay)
	ciB := seedCharterItinerary(t, db, boatB, "Santorini", models.CharterTypeFullDay)

	seedBooking(t, db, boatA, ciA,
		time.Date(2026, time.July, 6, 9, 0, 0, 0, time.Local),
		models.BookingStatusDefinitive)
	seedBooking(t, db, boatB, ciB,
		time.Date(2026, time.July, 7, 9, 0, 0, 0, time.Local),
		models.BookingStatusDefinitive)

	mine, err := svc.Summary(opA.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, mine.TotalBookings)
	require.InDelta(t, ciA.FinalPrice, mine.TotalRevenue, 1e-6)
	require.Len(t, mine.TopBoats, 1)
	require.Equal(t, boatA.ID, mine.TopBoats[0].BoatID)

	all, err := svc.Summary(0)
	require.NoError(t, err)
	require.EqualValues(t, 2, all.TotalBookings)
	require.Len(t, all.TopBoats, 2)
}

func TestAnalyticsSummary_Empty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAnalyticsService(db)

	sum, err := svc.Summary(0)
	require.NoError(t, err)
	require.Zero(t, sum.TotalBookings)
	require.Zero(t, sum.TotalRevenue)
	require.NotNil(t, sum.CountsByStatus)
	require.NotNil(t, sum.RevenueByMonth)
	require.NotNil(t, sum.TopBoats)
	require.Empty(t, sum.TopBoats)
}
