package controllers

import (
	"net/http"
	"strings"
	"time"

	"ezsail-backend/middleware"
	"ezsail-backend/models"
	"ezsail-backend/services"
	"ezsail-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

type passengerPayload struct {
	FullName    string `json:"fullName" binding:"required"`
	IDNumber    string `json:"idNumber"`
	DateOfBirth string `json:"dateOfBirth"` // YYYY-MM-DD
	Nationality string `json:"nationality"`
}

type createBookingPayload struct {
	BoatID             uint               `json:"boat_id" binding:"required"`
	CharterItineraryID uint               `json:"charter_itinerary_id" binding:"required"`
	BookingDateTime    string             `json:"booking_date_time" binding:"required"`
	Status             string             `json:"status"`
	RoomNumber         string             `json:"room_number"`
	Passengers         []passengerPayload `json:"passengers"`
	ItineraryIDs       []uint             `json:"itinerary_ids"`
}

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func parseBookingDateTime(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if t, err := time.ParseInLocation(time.RFC3339, raw, time.Local); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", raw, time.Local); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// CreateBooking handles POST /api/bookings (concierge only, enforced by
// the route group). Booking + passengers + add-on selections commit in one
// transaction; the confirmation email goes out after commit, best-effort.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	when, ok := parseBookingDateTime(payload.BookingDateTime)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidDate",
			"booking_date_time must be RFC3339 or YYYY-MM-DD")
		return
	}

	passengers := make([]models.Passenger, 0, len(payload.Passengers))
	for _, p := range payload.Passengers {
		pass := models.Passenger{
			FullName:    strings.TrimSpace(p.FullName),
			IDNumber:    strings.TrimSpace(p.IDNumber),
			Nationality: strings.TrimSpace(p.Nationality),
		}
		if strings.TrimSpace(p.DateOfBirth) != "" {
			dob, err := time.Parse("2006-01-02", strings.TrimSpace(p.DateOfBirth))
			if err != nil {
				utils.JSONError(c, http.StatusBadRequest, "error.invalidDate",
					"passenger dateOfBirth must be YYYY-MM-DD")
				return
			}
			pass.DateOfBirth = &dob
		}
		passengers = append(passengers, pass)
	}

	userID, _, hotelID, _ := middleware.CallerScope(c)

	booking, err := ctrl.BookingSvc.CreateBooking(services.CreateBookingInput{
		BoatID:             payload.BoatID,
		CharterItineraryID: payload.CharterItineraryID,
		BookingDateTime:    when,
		Status:             payload.Status,
		RoomNumber:         payload.RoomNumber,
		ConciergeID:        userID,
		HotelID:            hotelID,
		Passengers:         passengers,
		ItineraryIDs:       payload.ItineraryIDs,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	go ctrl.BookingSvc.SendConfirmationEmail(booking)

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

func (ctrl *BookingController) GetBookings(c *gin.Context) {
	_, operatorID, hotelID, role := middleware.CallerScope(c)

	f := services.BookingFilter{}
	switch role {
	case models.RoleConcierge:
		f.HotelID = hotelID
	case models.RoleB2B:
		f.OperatorID = operatorID
	}

	list, err := ctrl.BookingSvc.GetAllWithRelations(f)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *BookingController) requireBookingScope(c *gin.Context, booking *models.Booking) bool {
	_, operatorID, hotelID, role := middleware.CallerScope(c)
	switch role {
	case models.RoleAdmin:
		return true
	case models.RoleB2B:
		if booking.OperatorID == operatorID {
			return true
		}
	case models.RoleConcierge:
		if booking.HotelID == hotelID {
			return true
		}
	}
	utils.JSONError(c, http.StatusForbidden, "error.forbidden", "booking not in your scope")
	return false
}

func (ctrl *BookingController) GetBookingDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.BookingSvc.GetBookingDetails(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !ctrl.requireBookingScope(c, booking) {
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// UpdateBookingStatus handles PATCH /api/bookings/:id/status (b2b). The
// operator confirms or declines requested bookings here.
func (ctrl *BookingController) UpdateBookingStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := ctrl.BookingSvc.GetBookingDetails(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !ctrl.requireBookingScope(c, existing) {
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "status is required")
		return
	}

	booking, err := ctrl.BookingSvc.UpdateStatus(id, payload.Status)
	if err != nil {
		if strings.Contains(err.Error(), "booking_cancelled") {
			utils.JSONError(c, http.StatusConflict, "error.bookingCancelled",
				"cancelled bookings cannot change status")
			return
		}
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	existing, err := ctrl.BookingSvc.GetBookingDetails(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	if !ctrl.requireBookingScope(c, existing) {
		return
	}

	booking, err := ctrl.BookingSvc.Cancel(id)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
