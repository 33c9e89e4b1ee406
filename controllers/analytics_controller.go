package controllers

import (
	"net/http"

	"ezsail-backend/middleware"
	"ezsail-backend/models"
	"ezsail-backend/services"
	"ezsail-backend/utils"

	"github.com/gin-gonic/gin"
)

type AnalyticsController struct {
	AnalyticsSvc *services.AnalyticsService
}

func NewAnalyticsController(svc *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsSvc: svc}
}

// GetSummary handles GET /api/analytics/summary. Operators see their own
// numbers, admin sees the whole platform.
func (ctrl *AnalyticsController) GetSummary(c *gin.Context) {
	_, operatorID, _, role := middleware.CallerScope(c)

	scope := uint(0)
	if role == models.RoleB2B {
		scope = operatorID
	}

	summary, err := ctrl.AnalyticsSvc.Summary(scope)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}
