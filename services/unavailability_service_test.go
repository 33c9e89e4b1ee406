package services

import (
	"testing"
	"time"

	"ezsail-backend/models"

	"github.com/stretchr/testify/require"
)

func TestUnavailabilityCreateListDelete(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUnavailabilityService(db)
	op := seedOperator(t, db, 3)
	hotel := seedHotel(t, db)
	boat := seedBoat(t, db, op, hotel, "Nireus", models.BoatTypeRIB, 8)

	later, err := svc.Create(boat.ID, day(2026, time.August, 2), "haul out")
	require.NoError(t, err)
	earlier, err := svc.Create(boat.ID, day(2026, time.August, 1), "")
	require.NoError(t, err)

	_, err = svc.Create(boat.ID, time.Time{}, "")
	require.ErrorContains(t, err, "date is required")

	_, err = svc.Create(9999, day(2026, time.August, 1), "")
	require.ErrorContains(t, err, "boat_not_found")

	list, err := svc.ListByBoat(boat.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, earlier.ID, list[0].ID)
	require.Equal(t, later.ID, list[1].ID)

	require.NoError(t, svc.Delete(later.ID))
	require.ErrorContains(t, svc.Delete(later.ID), "unavailability_not_found")

	var remaining []models.BoatUnavailability
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
}
