package services

import (
	"errors"
	"fmt"
	"strings"

	"ezsail-backend/models"

	"gorm.io/gorm"
)

type CharterItineraryService struct {
	DB *gorm.DB
}

func NewCharterItineraryService(db *gorm.DB) *CharterItineraryService {
	return &CharterItineraryService{DB: db}
}

type CreateCharterItineraryInput struct {
	BoatID                         uint
	Name                           string
	Type                           string
	NetBoatRentalWithoutCommission float64
	Commission                     float64
	FuelCost                       float64
}

// Create runs the pricing calculator with the owning operator's platform
// commission percentage and persists the full breakdown. Itineraries are
// immutable after this point; price changes mean create-and-replace.
func (s *CharterItineraryService) Create(in CreateCharterItineraryInput) (*models.CharterItinerary, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, errors.New("validation: name is required")
	}
	if !models.IsValidCharterType(in.Type) {
		return nil, errors.New("validation: invalid charter type")
	}

	var boat models.Boat
	if err := s.DB.First(&boat, in.BoatID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("boat_not_found")
		}
		return nil, fmt.Errorf("db error checking boat %d: %w", in.BoatID, err)
	}

	var op models.Operator
	if err := s.DB.First(&op, boat.OperatorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("operator_not_found")
		}
		return nil, fmt.Errorf("db error checking operator %d: %w", boat.OperatorID, err)
	}

	pricing, err := ComputeCharterPricing(CharterPricingInput{
		NetBoatRentalWithoutCommission: in.NetBoatRentalWithoutCommission,
		Commission:                     in.Commission,
		FuelCost:                       in.FuelCost,
		PlatformCommissionPct:          op.PlatformCommissionPct,
	})
	if err != nil {
		return nil, err
	}

	ci := models.CharterItinerary{
		BoatID: boat.ID,
		Name:   in.Name,
		Type:   strings.TrimSpace(in.Type),

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
	if err := s.DB.Create(&ci).Error; err != nil {
		return nil, fmt.Errorf("failed to create charter itinerary: %w", err)
	}
	return &ci, nil
}

func (s *CharterItineraryService) ListByBoat(boatID uint) ([]models.CharterItinerary, error) {
	var list []models.CharterItinerary
	if err := s.DB.Where("boat_id = ?", boatID).Order("id ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve charter itineraries: %w", err)
	}
	if list == nil {
		list = []models.CharterItinerary{}
	}
	return list, nil
}

func (s *CharterItineraryService) Delete(id uint) error {
	res := s.DB.Delete(&models.CharterItinerary{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete charter itinerary: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return errors.New("charter_itinerary_not_found")
	}
	return nil
}
