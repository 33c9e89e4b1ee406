package services

import (
	"errors"
	"fmt"
	"strings"

	"ezsail-backend/models"

	"gorm.io/gorm"
)

// BoatService owns the fleet side: boats, their offered add-ons, photos.
type BoatService struct {
	DB *gorm.DB
}

func NewBoatService(db *gorm.DB) *BoatService {
	return &BoatService{DB: db}
}

type CreateBoatInput struct {
	Name       string
	BoatType   string
	Capacity   int
	OperatorID uint
	HotelID    uint
}

func (s *BoatService) Create(in CreateBoatInput) (*models.Boat, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, errors.New("validation: name is required")
	}
	if !models.IsValidBoatType(in.BoatType) {
		return nil, errors.New("validation: invalid boatType")
	}
	if in.Capacity < 0 {
		return nil, errors.New("validation: capacity must be >= 0")
	}
	if in.OperatorID == 0 {
		return nil, errors.New("validation: operator_id is required")
	}

	var op models.Operator
	if err := s.DB.First(&op, in.OperatorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("operator_not_found")
		}
		return nil, fmt.Errorf("db error checking operator %d: %w", in.OperatorID, err)
	}

	boat := models.Boat{
		Name:       in.Name,
		BoatType:   strings.TrimSpace(in.BoatType),
		Capacity:   in.Capacity,
		OperatorID: in.OperatorID,
		HotelID:    in.HotelID,
	}
	if err := s.DB.Create(&boat).Error; err != nil {
		return nil, fmt.Errorf("failed to create boat: %w", err)
	}
	return &boat, nil
}

type UpdateBoatInput struct {
	Name     *string
	BoatType *string
	Capacity *int
	HotelID  *uint
}

func (s *BoatService) Update(boatID uint, in UpdateBoatInput) (*models.Boat, error) {
	var boat models.Boat
	if err := s.DB.First(&boat, boatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("boat_not_found")
		}
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != nil {
		n := strings.TrimSpace(*in.Name)
		if n == "" {
			return nil, errors.New("validation: name cannot be empty")
		}
		updates["name"] = n
	}
	if in.BoatType != nil {
		if !models.IsValidBoatType(*in.BoatType) {
			return nil, errors.New("validation: invalid boatType")
		}
		updates["boat_type"] = strings.TrimSpace(*in.BoatType)
	}
	if in.Capacity != nil {
		if *in.Capacity < 0 {
			return nil, errors.New("validation: capacity must be >= 0")
		}
		updates["capacity"] = *in.Capacity
	}
	if in.HotelID != nil {
		updates["hotel_id"] = *in.HotelID
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&boat).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update boat: %w", err)
		}
	}
	return &boat, nil
}

func (s *BoatService) GetByID(boatID uint) (*models.Boat, error) {
	var boat models.Boat
	if err := s.DB.
		Preload("CharterItineraries").
		Preload("Itineraries").
		Preload("Operator").
		Preload("Hotel").
		First(&boat, boatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("boat_not_found")
		}
		return nil, fmt.Errorf("failed to retrieve boat: %w", err)
	}
	return &boat, nil
}

// ListFilter scopes listing: operators see their fleet, concierges their
// hotel's, admin everything.
type ListFilter struct {
	OperatorID uint
	HotelID    uint
}

func (s *BoatService) List(f ListFilter) ([]models.Boat, error) {
	tx := s.DB.Preload("CharterItineraries").Preload("Itineraries").Order("id ASC")
	if f.OperatorID != 0 {
		tx = tx.Where("operator_id = ?", f.OperatorID)
	}
	if f.HotelID != 0 {
		tx = tx.Where("hotel_id = ?", f.HotelID)
	}
	var boats []models.Boat
	if err := tx.Find(&boats).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve boats: %w", err)
	}
	if boats == nil {
		boats = []models.Boat{}
	}
	return boats, nil
}

// Delete removes a boat and everything hanging off it: bookings (with their
// passengers and add-on selections), unavailability records, charter
// itineraries and the add-on links. Explicit multi-step delete inside one
// transaction, not a database cascade.
func (s *BoatService) Delete(boatID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var boat models.Boat
		if err := tx.First(&boat, boatID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("boat_not_found")
			}
			return err
		}

		var bookingIDs []uint
		if err := tx.Model(&models.Booking{}).
			Where("boat_id = ?", boatID).
			Pluck("id", &bookingIDs).Error; err != nil {
			return fmt.Errorf("failed to list bookings for boat %d: %w", boatID, err)
		}

		if len(bookingIDs) > 0 {
			if err := tx.Where("booking_id IN ?", bookingIDs).
				Delete(&models.Passenger{}).Error; err != nil {
				return fmt.Errorf("failed to delete passengers: %w", err)
			}
			if err := tx.Where("booking_id IN ?", bookingIDs).
				Delete(&models.BookingItinerary{}).Error; err != nil {
				return fmt.Errorf("failed to delete add-on selections: %w", err)
			}
			if err := tx.Where("boat_id = ?", boatID).
				Delete(&models.Booking{}).Error; err != nil {
				return fmt.Errorf("failed to delete bookings: %w", err)
			}
		}

		if err := tx.Where("boat_id = ?", boatID).
			Delete(&models.BoatUnavailability{}).Error; err != nil {
			return fmt.Errorf("failed to delete unavailability records: %w", err)
		}
		if err := tx.Where("boat_id = ?", boatID).
			Delete(&models.CharterItinerary{}).Error; err != nil {
			return fmt.Errorf("failed to delete charter itineraries: %w", err)
		}
		if err := tx.Model(&boat).Association("Itineraries").Clear(); err != nil {
			return fmt.Errorf("failed to clear add-on links: %w", err)
		}

		if err := tx.Delete(&boat).Error; err != nil {
			return fmt.Errorf("failed to delete boat: %w", err)
		}
		return nil
	})
}

// SetPhotoPath records where the uploaded boat photo landed on disk.
func (s *BoatService) SetPhotoPath(boatID uint, path string) error {
	res := s.DB.Model(&models.Boat{}).Where("id = ?", boatID).Update("photo_path", path)
	if res.Error != nil {
		return fmt.Errorf("failed to update boat photo: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.New("boat_not_found")
	}
	return nil
}

// ReplaceItineraries swaps the boat's offered add-on set.
func (s *BoatService) ReplaceItineraries(boatID uint, itineraryIDs []uint) (*models.Boat, error) {
	var boat models.Boat
	if err := s.DB.First(&boat, boatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("boat_not_found")
		}
		return nil, err
	}

	var extras []models.Itinerary
	if len(itineraryIDs) > 0 {
		if err := s.DB.Where("id IN ?", itineraryIDs).Find(&extras).Error; err != nil {
			return nil, fmt.Errorf("failed to load add-ons: %w", err)
		}
		if len(extras) != len(itineraryIDs) {
			return nil, errors.New("itinerary_not_found")
		}
	}

	if err := s.DB.Model(&boat).Association("Itineraries").Replace(extras); err != nil {
		return nil, fmt.Errorf("failed to replace add-on links: %w", err)
	}
	boat.Itineraries = extras
	return &boat, nil
}
