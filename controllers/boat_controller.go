package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"ezsail-backend/middleware"
	"ezsail-backend/models"
	"ezsail-backend/services"
	"ezsail-backend/utils"

	"github.com/gin-gonic/gin"
)

type BoatController struct {
	BoatSvc *services.BoatService
}

func NewBoatController(svc *services.BoatService) *BoatController {
	return &BoatController{BoatSvc: svc}
}

type createBoatPayload struct {
	Name     string `json:"name" binding:"required"`
	BoatType string `json:"boatType" binding:"required"`
	Capacity int    `json:"capacity"`
	HotelID  uint   `json:"hotel_id"`
}

type updateBoatPayload struct {
	Name     *string `json:"name"`
	BoatType *string `json:"boatType"`
	Capacity *int    `json:"capacity"`
	HotelID  *uint   `json:"hotel_id"`
}

type boatPhotoPayload struct {
	Image string `json:"image" binding:"required"` // base64 or data URL
}

type replaceItinerariesPayload struct {
	ItineraryIDs []uint `json:"itinerary_ids"`
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidId", "invalid id parameter")
		return 0, false
	}
	return uint(id), true
}

// mapServiceError translates the service sentinel vocabulary to HTTP.
func mapServiceError(c *gin.Context, err error) {
	msg := err.Error()
	switch {
	case strings.HasPrefix(msg, "validation:"):
		utils.JSONError(c, http.StatusBadRequest, "error.validation", msg)
	case strings.HasSuffix(msg, "_not_found"):
		utils.JSONError(c, http.StatusNotFound, "error.notFound", msg)
	case strings.Contains(msg, "boat_unavailable"):
		utils.JSONError(c, http.StatusConflict, "error.boatUnavailable",
			"boat already has a definitive booking or unavailability on that day")
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "error.internal", "internal error")
	}
}

func (ctrl *BoatController) CreateBoat(c *gin.Context) {
	var payload createBoatPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	_, operatorID, _, _ := middleware.CallerScope(c)
	boat, err := ctrl.BoatSvc.Create(services.CreateBoatInput{
		Name:       payload.Name,
		BoatType:   payload.BoatType,
		Capacity:   payload.Capacity,
		OperatorID: operatorID,
		HotelID:    payload.HotelID,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, boat)
}

func (ctrl *BoatController) GetBoats(c *gin.Context) {
	_, operatorID, hotelID, role := middleware.CallerScope(c)

	f := services.ListFilter{}
	switch role {
	case models.RoleB2B:
		f.OperatorID = operatorID
	case models.RoleConcierge:
		f.HotelID = hotelID
	}

	boats, err := ctrl.BoatSvc.List(f)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, boats)
}

func (ctrl *BoatController) GetBoatByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	boat, err := ctrl.BoatSvc.GetByID(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !boatVisibleToCaller(c, boat) {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, boat)
}

// boatVisibleToCaller enforces scope on single-boat reads. Writes are
// checked separately via requireBoatOwnership.
func boatVisibleToCaller(c *gin.Context, boat *models.Boat) bool {
	_, operatorID, hotelID, role := middleware.CallerScope(c)
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleB2B:
		if boat.OperatorID == operatorID {
			return true
		}
	case models.RoleConcierge:
		if boat.HotelID == hotelID {
			return true
		}
	}
	utils.JSONError(c, http.StatusForbidden, "error.forbidden", "boat not in your scope")
	return false
}

func (ctrl *BoatController) requireBoatOwnership(c *gin.Context, boatID uint) (*models.Boat, bool) {
	boat, err := ctrl.BoatSvc.GetByID(boatID)
	if err != nil {
		mapServiceError(c, err)
		return nil, false
	}
	_, operatorID, _, role := middleware.CallerScope(c)
	if role != models.RoleAdmin && boat.OperatorID != operatorID {
		utils.JSONError(c, http.StatusForbidden, "error.forbidden", "boat not in your scope")
		return nil, false
	}
	return boat, true
}

func (ctrl *BoatController) UpdateBoat(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, ok := ctrl.requireBoatOwnership(c, id); !ok {
		return
	}

	var payload updateBoatPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	boat, err := ctrl.BoatSvc.Update(id, services.UpdateBoatInput{
		Name:     payload.Name,
		BoatType: payload.BoatType,
		Capacity: payload.Capacity,
		HotelID:  payload.HotelID,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, boat)
}

func (ctrl *BoatController) DeleteBoat(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, ok := ctrl.requireBoatOwnership(c, id); !ok {
		return
	}

	if err := ctrl.BoatSvc.Delete(id); err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}

func (ctrl *BoatController) UploadBoatPhoto(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, ok := ctrl.requireBoatOwnership(c, id); !ok {
		return
	}

	var payload boatPhotoPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	path, err := services.SaveBase64Image(payload.Image, "boats")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidImage", err.Error())
		return
	}
	if err := ctrl.BoatSvc.SetPhotoPath(id, path); err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"photoPath": path})
}

func (ctrl *BoatController) ReplaceBoatItineraries(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, ok := ctrl.requireBoatOwnership(c, id); !ok {
		return
	}

	var payload replaceItinerariesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	boat, err := ctrl.BoatSvc.ReplaceItineraries(id, payload.ItineraryIDs)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, boat)
}
