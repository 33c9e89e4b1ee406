package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"ezsail-backend/models"
	"ezsail-backend/utils"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService wraps *gorm.DB with the booking lifecycle logic.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBookingInput is what the concierge submits. Passengers and selected
// add-ons are written atomically with the booking itself.
type CreateBookingInput struct {
	BoatID             uint
	CharterItineraryID uint
	BookingDateTime    time.Time
	Status             string
	RoomNumber         string
	ConciergeID        uint
	HotelID            uint
	Passengers         []models.Passenger
	ItineraryIDs       []uint
}

type extraSnapshot struct {
	ItineraryID uint    `json:"itinerary_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
}

// lockForUpdate takes a row lock on MySQL. SQLite (the test database) has
// no FOR UPDATE; its writes serialize on the whole file anyway.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// hasDayConflict reports whether the boat already has a Definitive booking
// or an unavailability record inside the given day window. Must run inside
// the caller's transaction so the row lock on the boat covers the re-check.
func hasDayConflict(tx *gorm.DB, boatID uint, dayStart, dayEnd time.Time) (bool, error) {
	var n int64
	if err := tx.Model(&models.Booking{}).
		Where("boat_id = ? AND status = ? AND booking_date_time BETWEEN ? AND ?",
			boatID, models.BookingStatusDefinitive, dayStart, dayEnd).
		Count(&n).Error; err != nil {
		return false, err
	}
	if n > 0 {
		return true, nil
	}
	if err := tx.Model(&models.BoatUnavailability{}).
		Where("boat_id = ? AND unavailable_date BETWEEN ? AND ?", boatID, dayStart, dayEnd).
		Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// CreateBooking inserts booking + passengers + add-on selections in one
// transaction. The boat row is locked first and the same-day conflict check
// re-runs inside the transaction, so two concurrent Definitive bookings for
// the same boat/day cannot both commit.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if in.BoatID == 0 || in.CharterItineraryID == 0 {
		return nil, errors.New("validation: boat_id and charter_itinerary_id are required")
	}
	if in.BookingDateTime.IsZero() {
		return nil, errors.New("validation: booking_date_time is required")
	}
	in.Status = strings.TrimSpace(in.Status)
	if in.Status == "" {
		in.Status = models.BookingStatusRequested
	}
	if !models.IsValidBookingStatus(in.Status) {
		return nil, errors.New("validation: invalid status")
	}

	dayStart, dayEnd := DayBounds(in.BookingDateTime)

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var boat models.Boat
		if err := lockForUpdate(tx).
			First(&boat, in.BoatID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("boat_not_found")
			}
			return fmt.Errorf("db error checking boat %d: %w", in.BoatID, err)
		}

		var ci models.CharterItinerary
		if err := tx.First(&ci, in.CharterItineraryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("charter_itinerary_not_found")
			}
			return fmt.Errorf("db error checking charter itinerary %d: %w", in.CharterItineraryID, err)
		}
		if ci.BoatID != boat.ID {
			return errors.New("validation: charter itinerary does not belong to boat")
		}

		if in.Status == models.BookingStatusDefinitive {
			conflict, err := hasDayConflict(tx, boat.ID, dayStart, dayEnd)
			if err != nil {
				return fmt.Errorf("failed to check availability: %w", err)
			}
			if conflict {
				return errors.New("boat_unavailable")
			}
		}

		// load selected add-ons, verify they are offered on this boat
		var extras []models.Itinerary
		if len(in.ItineraryIDs) > 0 {
			if err := tx.
				Joins("JOIN boat_itineraries ON boat_itineraries.itinerary_id = itineraries.id").
				Where("boat_itineraries.boat_id = ? AND itineraries.id IN ?", boat.ID, in.ItineraryIDs).
				Find(&extras).Error; err != nil {
				return fmt.Errorf("failed to load add-ons: %w", err)
			}
			if len(extras) != len(in.ItineraryIDs) {
				return errors.New("validation: add-on not offered on this boat")
			}
		}

		snapshots := make([]extraSnapshot, 0, len(extras))
		for _, e := range extras {
			snapshots = append(snapshots, extraSnapshot{ItineraryID: e.ID, Name: e.Name, Price: e.Price})
		}
		snapJSON, _ := json.Marshal(snapshots) // best-effort

		ref, err := utils.GenerateBookingReference()
		if err != nil {
			return fmt.Errorf("failed to generate reference code: %w", err)
		}

		booking = models.Booking{
			BoatID:             boat.ID,
			CharterItineraryID: ci.ID,
			OperatorID:         boat.OperatorID,
			ConciergeID:        in.ConciergeID,
			HotelID:            in.HotelID,
			ReferenceCode:      ref,
			Status:             in.Status,
			BookingDateTime:    in.BookingDateTime,
			RoomNumber:         strings.TrimSpace(in.RoomNumber),
			FinalPrice:         ci.FinalPrice,
			ExtrasSnapshot:     datatypes.JSON(snapJSON),
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		for i := range in.Passengers {
			in.Passengers[i].ID = 0
			in.Passengers[i].BookingID = booking.ID
			if err := tx.Create(&in.Passengers[i]).Error; err != nil {
				return fmt.Errorf("failed to create passenger: %w", err)
			}
		}

		for _, e := range extras {
			sel := models.BookingItinerary{
				BookingID:   booking.ID,
				ItineraryID: e.ID,
				Price:       e.Price,
			}
			if err := tx.Create(&sel).Error; err != nil {
				return fmt.Errorf("failed to create add-on selection: %w", err)
			}
		}

		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// reload with relations
	if err := s.DB.
		Preload("Boat").
		Preload("CharterItinerary").
		Preload("Passengers").
		Preload("SelectedExtras.Itinerary").
		First(&booking, booking.ID).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatus moves a booking between states. Promoting to Definitive
// re-runs the conflict check under the boat row lock, same as creation.
func (s *BookingService) UpdateStatus(bookingID uint, newStatus string) (*models.Booking, error) {
	newStatus = strings.TrimSpace(newStatus)
	if !models.IsValidBookingStatus(newStatus) {
		return nil, errors.New("validation: invalid status")
	}

	var booking models.Booking
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&booking, bookingID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("booking_not_found")
			}
			return err
		}

		if booking.Status == newStatus {
			return nil // idempotent
		}
		if booking.Status == models.BookingStatusCancelled {
			return errors.New("booking_cancelled")
		}

		if newStatus == models.BookingStatusDefinitive {
			var boat models.Boat
			if err := lockForUpdate(tx).
				First(&boat, booking.BoatID).Error; err != nil {
				return err
			}
			dayStart, dayEnd := DayBounds(booking.BookingDateTime)
			var n int64
			if err := tx.Model(&models.Booking{}).
				Where("boat_id = ? AND status = ? AND id <> ? AND booking_date_time BETWEEN ? AND ?",
					booking.BoatID, models.BookingStatusDefinitive, booking.ID, dayStart, dayEnd).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return errors.New("boat_unavailable")
			}
			if err := tx.Model(&models.BoatUnavailability{}).
				Where("boat_id = ? AND unavailable_date BETWEEN ? AND ?", booking.BoatID, dayStart, dayEnd).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return errors.New("boat_unavailable")
			}
		}

		if err := tx.Model(&booking).Update("status", newStatus).Error; err != nil {
			return fmt.Errorf("failed to update booking status: %w", err)
		}
		booking.Status = newStatus
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return &booking, nil
}

// Cancel marks the booking Cancelled. The record stays for reporting.
func (s *BookingService) Cancel(bookingID uint) (*models.Booking, error) {
	return s.UpdateStatus(bookingID, models.BookingStatusCancelled)
}

// BookingFilter narrows listing to the caller's scope.
type BookingFilter struct {
	HotelID    uint
	OperatorID uint
}

func (s *BookingService) GetAllWithRelations(f BookingFilter) ([]models.Booking, error) {
	tx := s.DB.
		Preload("Boat").
		Preload("CharterItinerary").
		Preload("Concierge").
		Preload("Passengers").
		Preload("SelectedExtras.Itinerary").
		Order("created_at DESC")

	if f.HotelID != 0 {
		tx = tx.Where("hotel_id = ?", f.HotelID)
	}
	if f.OperatorID != 0 {
		tx = tx.Where("operator_id = ?", f.OperatorID)
	}

	var list []models.Booking
	if err := tx.Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}

	for i := range list {
		if list[i].Passengers == nil {
			list[i].Passengers = []models.Passenger{}
		}
		if list[i].SelectedExtras == nil {
			list[i].SelectedExtras = []models.BookingItinerary{}
		}
	}
	return list, nil
}

func (s *BookingService) GetBookingDetails(bookingID uint) (*models.Booking, error) {
	var bk models.Booking
	if err := s.DB.
		Preload("Boat").
		Preload("CharterItinerary").
		Preload("Concierge").
		Preload("Passengers").
		Preload("SelectedExtras.Itinerary").
		First(&bk, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("booking_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve booking details: %w", err)
	}
	return &bk, nil
}

// SendConfirmationEmail mails the concierge a booking summary. Best-effort:
// failures are logged, never fatal to the booking itself.
func (s *BookingService) SendConfirmationEmail(booking *models.Booking) {
	var concierge models.User
	if err := s.DB.First(&concierge, booking.ConciergeID).Error; err != nil {
		log.Printf("warning: cannot load concierge %d for confirmation email: %v", booking.ConciergeID, err)
		return
	}
	var boat models.Boat
	if err := s.DB.First(&boat, booking.BoatID).Error; err != nil {
		log.Printf("warning: cannot load boat %d for confirmation email: %v", booking.BoatID, err)
		return
	}

	if err := utils.SendBookingConfirmationEmail(
		concierge.Email,
		booking.ReferenceCode,
		boat.Name,
		booking.BookingDateTime.Format("2006-01-02 15:04"),
		booking.Status,
		booking.FinalPrice,
	); err != nil {
		log.Printf("warning: confirmation email for booking %s failed: %v", booking.ReferenceCode, err)
	}
}
