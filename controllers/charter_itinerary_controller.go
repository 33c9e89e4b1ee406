package controllers

import (
	"net/http"

	"ezsail-backend/services"
	"ezsail-backend/utils"

	"github.com/gin-gonic/gin"
)

type CharterItineraryController struct {
	CharterSvc *services.CharterItineraryService
	BoatCtrl   *BoatController
}

func NewCharterItineraryController(svc *services.CharterItineraryService, boatCtrl *BoatController) *CharterItineraryController {
	return &CharterItineraryController{CharterSvc: svc, BoatCtrl: boatCtrl}
}

type createCharterItineraryPayload struct {
	Name                           string   `json:"name" binding:"required"`
	Type                           string   `json:"type" binding:"required"`
	NetBoatRentalWithoutCommission *float64 `json:"netBoatRentalWithoutCommission" binding:"required"`
	Commission                     *float64 `json:"commission" binding:"required"`
	FuelCost                       *float64 `json:"fuelCost" binding:"required"`
}

// CreateCharterItinerary handles POST /api/boats/:id/charter-itineraries.
// All three monetary primitives are required; the platform commission
// percentage is read from the boat's operator, never from the request.
func (ctrl *CharterItineraryController) CreateCharterItinerary(c *gin.Context) {
	boatID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, ok := ctrl.BoatCtrl.requireBoatOwnership(c, boatID); !ok {
		return
	}

	var payload createCharterItineraryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload",
			"name, type, netBoatRentalWithoutCommission, commission and fuelCost are required")
		return
	}

	ci, err := ctrl.CharterSvc.Create(services.CreateCharterItineraryInput{
		BoatID:                         boatID,
		Name:                           payload.Name,
		Type:                           payload.Type,
		NetBoatRentalWithoutCommission: *payload.NetBoatRentalWithoutCommission,
		Commission:                     *payload.Commission,
		FuelCost:                       *payload.FuelCost,
	})
	if err != nil {
		switch err {
		case services.ErrPricingInputNotANumber, services.ErrPricingInputNegative:
			utils.JSONError(c, http.StatusBadRequest, "error.invalidPricingInput", err.Error())
		default:
			mapServiceError(c, err)
		}
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, ci)
}

func (ctrl *CharterItineraryController) GetCharterItineraries(c *gin.Context) {
	boatID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	boat, err := ctrl.BoatCtrl.BoatSvc.GetByID(boatID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !boatVisibleToCaller(c, boat) {
		return
	}

	list, err := ctrl.CharterSvc.ListByBoat(boatID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *CharterItineraryController) DeleteCharterItinerary(c *gin.Context) {
	boatID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, ok := ctrl.BoatCtrl.requireBoatOwnership(c, boatID); !ok {
		return
	}
	ciID, ok := parseIDParam(c, "ciId")
	if !ok {
		return
	}

	if err := ctrl.CharterSvc.Delete(ciID); err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": ciID})
}
