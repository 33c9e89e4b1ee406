package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ezsail-backend/models"

	"gorm.io/gorm"
)

type UnavailabilityService struct {
	DB *gorm.DB
}

func NewUnavailabilityService(db *gorm.DB) *UnavailabilityService {
	return &UnavailabilityService{DB: db}
}

func (s *UnavailabilityService) Create(boatID uint, date time.Time, reason string) (*models.BoatUnavailability, error) {
	if date.IsZero() {
		return nil, errors.New("validation: date is required")
	}

	var boat models.Boat
	if err := s.DB.First(&boat, boatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("boat_not_found")
		}
		return nil, fmt.Errorf("db error checking boat %d: %w", boatID, err)
	}

	rec := models.BoatUnavailability{
		BoatID:          boatID,
		UnavailableDate: date,
		Reason:          strings.TrimSpace(reason),
	}
	if err := s.DB.Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to create unavailability record: %w", err)
	}
	return &rec, nil
}

func (s *UnavailabilityService) ListByBoat(boatID uint) ([]models.BoatUnavailability, error) {
	var list []models.BoatUnavailability
	if err := s.DB.Where("boat_id = ?", boatID).
		Order("unavailable_date ASC").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve unavailability records: %w", err)
	}
	if list == nil {
		list = []models.BoatUnavailability{}
	}
	return list, nil
}

func (s *UnavailabilityService) Delete(id uint) error {
	res := s.DB.Delete(&models.BoatUnavailability{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete unavailability record: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.New("unavailability_not_found")
	}
	return nil
}
