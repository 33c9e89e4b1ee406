package controllers

import (
	"log"
	"net/http"

	"ezsail-backend/services"
	"ezsail-backend/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	AdminSvc *services.AdminService
}

func NewAdminController(svc *services.AdminService) *AdminController {
	return &AdminController{AdminSvc: svc}
}

type createOperatorPayload struct {
	CompanyName   string  `json:"company_name" binding:"required"`
	ContactEmail  string  `json:"contact_email"`
	Phone         string  `json:"phone"`
	CommissionPct float64 `json:"commission_pct"`
}

type setCommissionPayload struct {
	CommissionPct *float64 `json:"commission_pct" binding:"required"`
}

type createHotelPayload struct {
	Name         string `json:"name" binding:"required"`
	City         string `json:"city"`
	ContactEmail string `json:"contact_email"`
	Phone        string `json:"phone"`
}

type createUserPayload struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	Role       string `json:"role" binding:"required"`
	OperatorID *uint  `json:"operator_id"`
	HotelID    *uint  `json:"hotel_id"`
}

func (ctrl *AdminController) GetOperators(c *gin.Context) {
	ops, err := ctrl.AdminSvc.ListOperators()
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ops)
}

func (ctrl *AdminController) CreateOperator(c *gin.Context) {
	var payload createOperatorPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	op, err := ctrl.AdminSvc.CreateOperator(payload.CompanyName, payload.ContactEmail, payload.Phone, payload.CommissionPct)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, op)
}

// SetOperatorCommission adjusts the platform percentage used for all
// future charter itinerary pricing of this operator.
func (ctrl *AdminController) SetOperatorCommission(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var payload setCommissionPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "commission_pct is required")
		return
	}

	op, err := ctrl.AdminSvc.SetOperatorCommission(id, *payload.CommissionPct)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, op)
}

func (ctrl *AdminController) GetHotels(c *gin.Context) {
	hotels, err := ctrl.AdminSvc.ListHotels()
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

func (ctrl *AdminController) CreateHotel(c *gin.Context) {
	var payload createHotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	h, err := ctrl.AdminSvc.CreateHotel(payload.Name, payload.City, payload.ContactEmail, payload.Phone)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, h)
}

func (ctrl *AdminController) CreateUser(c *gin.Context) {
	var payload createUserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", err.Error())
		return
	}

	user, err := ctrl.AdminSvc.CreateUser(services.CreateUserInput{
		FullName:   payload.FullName,
		Email:      payload.Email,
		Password:   payload.Password,
		Role:       payload.Role,
		OperatorID: payload.OperatorID,
		HotelID:    payload.HotelID,
	})
	if err != nil {
		if err.Error() == "email_already_registered" {
			utils.JSONError(c, http.StatusConflict, "error.emailTaken", "email already registered")
			return
		}
		mapServiceError(c, err)
		return
	}

	// invite email is best-effort
	go func() {
		if err := utils.SendStaffInviteEmail(user.Email, user.FullName, user.Role); err != nil {
			log.Printf("warning: invite email to %s failed: %v", user.Email, err)
		}
	}()

	utils.JSONSuccess(c, http.StatusCreated, user)
}
