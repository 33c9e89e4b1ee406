package controllers

import (
	"net/http"
	"strings"
	"time"

	"ezsail-backend/services"
	"ezsail-backend/utils"

	"github.com/gin-gonic/gin"
)

type UnavailabilityController struct {
	UnavailabilitySvc *services.UnavailabilityService
	BoatCtrl          *BoatController
}

func NewUnavailabilityController(svc *services.UnavailabilityService, boatCtrl *BoatController) *UnavailabilityController {
	return &UnavailabilityController{UnavailabilitySvc: svc, BoatCtrl: boatCtrl}
}

type createUnavailabilityPayload struct {
	Date   string `json:"date" binding:"required"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

func (ctrl *UnavailabilityController) CreateUnavailability(c *gin.Context) {
	boatID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, ok := ctrl.BoatCtrl.requireBoatOwnership(c, boatID); !ok {
		return
	}

	var payload createUnavailabilityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "date is required")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(payload.Date), time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate", "date must be YYYY-MM-DD")
		return
	}

	rec, err := ctrl.UnavailabilitySvc.Create(boatID, date, payload.Reason)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, rec)
}

func (ctrl *UnavailabilityController) GetUnavailability(c *gin.Context) {
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

	list, err := ctrl.UnavailabilitySvc.ListByBoat(boatID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *UnavailabilityController) DeleteUnavailability(c *gin.Context) {
	boatID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if _, ok := ctrl.BoatCtrl.requireBoatOwnership(c, boatID); !ok {
		return
	}
	uid, ok := parseIDParam(c, "uid")
	if !ok {
		return
	}

	if err := ctrl.UnavailabilitySvc.Delete(uid); err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": uid})
}
