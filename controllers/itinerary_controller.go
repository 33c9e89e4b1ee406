package controllers

import (
	"net/http"

	"ezsail-backend/services"
	"ezsail-backend/utils"

	"github.com/gin-gonic/gin"
)

type ItineraryController struct {
	ItinerarySvc *services.ItineraryService
}

func NewItineraryController(svc *services.ItineraryService) *ItineraryController {
	return &ItineraryController{ItinerarySvc: svc}
}

type createItineraryPayload struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

func (ctrl *ItineraryController) GetItineraries(c *gin.Context) {
	list, err := ctrl.ItinerarySvc.List()
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (ctrl *ItineraryController) CreateItinerary(c *gin.Context) {
	var payload createItineraryPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "error.invalidPayload", "name and price are required")
		return
	}

	it, err := ctrl.ItinerarySvc.Create(payload.Name, *payload.Price)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, it)
}

func (ctrl *ItineraryController) DeleteItinerary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.ItinerarySvc.Delete(id); err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": id})
}
