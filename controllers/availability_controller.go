package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"ezsail-backend/middleware"
	"ezsail-backend/models"
	"ezsail-backend/services"
	"ezsail-backend/utils"

	"github.com/gin-gonic/gin"
)

type AvailabilityController struct {
	AvailabilitySvc *services.AvailabilityService
}

func NewAvailabilityController(svc *services.AvailabilityService) *AvailabilityController {
	return &AvailabilityController{AvailabilitySvc: svc}
}

// Search handles GET /api/availability. Required query params: date
// (YYYY-MM-DD), charterName, charterType. Optional: minCapacity (default 0),
// boatType ("All" or absent disables the filter). Scope comes from the
// session: concierges search their hotel's fleet, operators their own.
func (ctrl *AvailabilityController) Search(c *gin.Context) {
	dateStr := strings.TrimSpace(c.Query("date"))
	charterName := strings.TrimSpace(c.Query("charterName"))
	charterType := strings.TrimSpace(c.Query("charterType"))

	if dateStr == "" || charterName == "" || charterType == "" {
		utils.JSONError(c, http.StatusBadRequest, "error.missingParams",
			"date, charterName and charterType are required")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate",
			"date must be YYYY-MM-DD")
		return
	}

	minCapacity := 0
	if raw := strings.TrimSpace(c.Query("minCapacity")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			utils.JSONError(c, http.StatusBadRequest, "error.invalidMinCapacity",
				"minCapacity must be a non-negative integer")
			return
		}
		minCapacity = n
	}

	q := services.AvailabilityQuery{
		Date:        date,
		MinCapacity: minCapacity,
		CharterName: charterName,
		CharterType: charterType,
		BoatType:    c.Query("boatType"),
	}

	_, operatorID, hotelID, role := middleware.CallerScope(c)
	switch role {
	case models.RoleConcierge:
		q.HotelID = hotelID
	case models.RoleB2B:
		q.OperatorID = operatorID
	}

	boats, err := ctrl.AvailabilitySvc.Search(q)
	if err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, "error.validation", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "error.internal",
			"availability search failed")
		return
	}

	utils.JSONSuccess(c, http.StatusOK, boats)
}
