package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"ezsail-backend/models"

	"gorm.io/gorm"
)

// ItineraryService manages the optional add-ons catalogue.
type ItineraryService struct {
	DB *gorm.DB
}

func NewItineraryService(db *gorm.DB) *ItineraryService {
	return &ItineraryService{DB: db}
}

func (s *ItineraryService) Create(name string, price float64) (*models.Itinerary, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("validation: name is required")
	}
	if math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return nil, errors.New("validation: price must be a non-negative number")
	}

	it := models.Itinerary{Name: name, Price: price}
	if err := s.DB.Create(&it).Error; err != nil {
		return nil, fmt.Errorf("failed to create itinerary: %w", err)
	}
	return &it, nil
}

func (s *ItineraryService) List() ([]models.Itinerary, error) {
	var list []models.Itinerary
	if err := s.DB.Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve itineraries: %w", err)
	}
	if list == nil {
		list = []models.Itinerary{}
	}
	return list, nil
}

func (s *ItineraryService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var it models.Itinerary
		if err := tx.First(&it, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("itinerary_not_found")
			}
			return err
		}
		// drop the boat links first; past booking selections keep their snapshot
		if err := tx.Model(&it).Association("Boats").Clear(); err != nil {
			return fmt.Errorf("failed to clear boat links: %w", err)
		}
		if err := tx.Delete(&it).Error; err != nil {
			return fmt.Errorf("failed to delete itinerary: %w", err)
		}
		return nil
	})
}
