package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ezsail-backend/controllers"
	"ezsail-backend/middleware"
	"ezsail-backend/models"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires controllers into role-guarded route groups.
func SetupRouter(
	bc *controllers.BoatController,
	cic *controllers.CharterItineraryController,
	avc *controllers.AvailabilityController,
	bkc *controllers.BookingController,
	itc *controllers.ItineraryController,
	uvc *controllers.UnavailabilityController,
	adc *controllers.AdminController,
	anc *controllers.AnalyticsController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), middleware.Metrics(), gin.Recovery())
	r.Static("/uploads", "./uploads")

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", controllers.Login)
			auth.POST("/forgot", controllers.ForgotPassword)
		}

		// fleet management: operators own it, admin can step in
		boats := api.Group("/boats", middleware.RequireAuth())
		{
			boats.GET("", bc.GetBoats)
			boats.GET("/:id", bc.GetBoatByID)

			b2b := boats.Group("", middleware.RequireRoles(models.RoleB2B, models.RoleAdmin))
			{
				b2b.POST("", bc.CreateBoat)
				b2b.PUT("/:id", bc.UpdateBoat)
				b2b.DELETE("/:id", bc.DeleteBoat)
				b2b.POST("/:id/photo", bc.UploadBoatPhoto)
				b2b.PUT("/:id/itineraries", bc.ReplaceBoatItineraries)

				b2b.POST("/:id/charter-itineraries", cic.CreateCharterItinerary)
				b2b.DELETE("/:id/charter-itineraries/:ciId", cic.DeleteCharterItinerary)

				b2b.POST("/:id/unavailability", uvc.CreateUnavailability)
				b2b.DELETE("/:id/unavailability/:uid", uvc.DeleteUnavailability)
			}

			boats.GET("/:id/charter-itineraries", cic.GetCharterItineraries)
			boats.GET("/:id/unavailability", uvc.GetUnavailability)
		}

		availability := api.Group("/availability",
			middleware.RequireAuth(),
			middleware.RequireRoles(models.RoleB2B, models.RoleConcierge, models.RoleAdmin))
		{
			availability.GET("", avc.Search)
		}

		bookings := api.Group("/bookings", middleware.RequireAuth())
		{
			bookings.GET("", bkc.GetBookings)
			bookings.GET("/:id", bkc.GetBookingDetails)

			bookings.POST("",
				middleware.RequireRoles(models.RoleConcierge),
				bkc.CreateBooking)
			bookings.PATCH("/:id/status",
				middleware.RequireRoles(models.RoleB2B, models.RoleAdmin),
				bkc.UpdateBookingStatus)
			bookings.POST("/:id/cancel", bkc.CancelBooking)
		}

		itineraries := api.Group("/itineraries", middleware.RequireAuth())
		{
			itineraries.GET("", itc.GetItineraries)

			b2b := itineraries.Group("", middleware.RequireRoles(models.RoleB2B, models.RoleAdmin))
			{
				b2b.POST("", itc.CreateItinerary)
				b2b.DELETE("/:id", itc.DeleteItinerary)
			}
		}

		admin := api.Group("/admin",
			middleware.RequireAuth(),
			middleware.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/operators", adc.GetOperators)
			admin.POST("/operators", adc.CreateOperator)
			admin.PATCH("/operators/:id/commission", adc.SetOperatorCommission)
			admin.GET("/hotels", adc.GetHotels)
			admin.POST("/hotels", adc.CreateHotel)
			admin.POST("/users", adc.CreateUser)
		}

		analytics := api.Group("/analytics",
			middleware.RequireAuth(),
			middleware.RequireRoles(models.RoleB2B, models.RoleAdmin))
		{
			analytics.GET("/summary", anc.GetSummary)
		}
	}

	return r
}
