package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ezsail-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers "which boats can take this charter on this
// day". The whole check is a single read-only query, safe to re-issue.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// AvailabilityQuery is validated before any data access. Scope restricts the
// search to one hotel's or one operator's fleet depending on caller role.
type AvailabilityQuery struct {
	Date        time.Time
	MinCapacity int
	CharterName string
	CharterType string
	BoatType    string // empty or "All" disables the filter

	HotelID    uint // set for concierge callers
	OperatorID uint // set for b2b callers
}

func (q *AvailabilityQuery) validate() error {
	if q.Date.IsZero() {
		return errors.New("validation: date is required")
	}
	if strings.TrimSpace(q.CharterName) == "" {
		return errors.New("validation: charterName is required")
	}
	q.CharterType = strings.TrimSpace(q.CharterType)
	if !models.IsValidCharterType(q.CharterType) {
		return errors.New("validation: invalid charterType")
	}
	q.BoatType = strings.TrimSpace(q.BoatType)
	if q.BoatType != "" && q.BoatType != models.BoatTypeAll && !models.IsValidBoatType(q.BoatType) {
		return errors.New("validation: invalid boatType")
	}
	if q.MinCapacity < 0 {
		q.MinCapacity = 0
	}
	return nil
}

// DayBounds returns start-of-day and end-of-day (inclusive) in t's location.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end := start.Add(24*time.Hour - time.Nanosecond)
	return start, end
}

// Search returns the boats satisfying every constraint at once:
// capacity, no Definitive booking that day, no unavailability record that
// day, and an offered charter itinerary matching name (case-insensitive)
// plus type (exact). Results are ordered by boat id so a single call is
// deterministic.
func (s *AvailabilityService) Search(q AvailabilityQuery) ([]models.Boat, error) {
	if err := q.validate(); err != nil {
		return nil, err
	}

	dayStart, dayEnd := DayBounds(q.Date)

	tx := s.DB.Model(&models.Boat{}).
		Where("boats.capacity >= ?", q.MinCapacity).
		Where(`boats.id NOT IN (
			SELECT bookings.boat_id FROM bookings
			WHERE bookings.status = ?
			  AND bookings.booking_date_time BETWEEN ? AND ?
			  AND bookings.deleted_at IS NULL)`,
			models.BookingStatusDefinitive, dayStart, dayEnd).
		Where(`boats.id NOT IN (
			SELECT boat_unavailabilities.boat_id FROM boat_unavailabilities
			WHERE boat_unavailabilities.unavailable_date BETWEEN ? AND ?
			  AND boat_unavailabilities.deleted_at IS NULL)`,
			dayStart, dayEnd).
		Where(`boats.id IN (
			SELECT charter_itineraries.boat_id FROM charter_itineraries
			WHERE LOWER(charter_itineraries.name) = LOWER(?)
			  AND charter_itineraries.type = ?
			  AND charter_itineraries.deleted_at IS NULL)`,
			strings.TrimSpace(q.CharterName), q.CharterType)

	if q.BoatType != "" && q.BoatType != models.BoatTypeAll {
		tx = tx.Where("boats.boat_type = ?", q.BoatType)
	}

	if q.HotelID != 0 {
		tx = tx.Where("boats.hotel_id = ?", q.HotelID)
	}
	if q.OperatorID != 0 {
		tx = tx.Where("boats.operator_id = ?", q.OperatorID)
	}

	var boats []models.Boat
	if err := tx.Preload("CharterItineraries").Preload("Itineraries").
		Order("boats.id ASC").
		Find(&boats).Error; err != nil {
		return nil, fmt.Errorf("failed to search availability: %w", err)
	}

	if boats == nil {
		boats = []models.Boat{}
	}
	return boats, nil
}
