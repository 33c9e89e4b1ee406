package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"ezsail-backend/config"
	"ezsail-backend/controllers"
	"ezsail-backend/routes"
	"ezsail-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Connect database (config.ConnectDatabase should set config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	// Initialize services
	boatService := services.NewBoatService(db)
	charterService := services.NewCharterItineraryService(db)
	availabilityService := services.NewAvailabilityService(db)
	bookingService := services.NewBookingService(db)
	itineraryService := services.NewItineraryService(db)
	unavailabilityService := services.NewUnavailabilityService(db)
	adminService := services.NewAdminService(db)
	analyticsService := services.NewAnalyticsService(db)

	// Initialize controllers
	boatController := controllers.NewBoatController(boatService)
	charterController := controllers.NewCharterItineraryController(charterService, boatController)
	availabilityController := controllers.NewAvailabilityController(availabilityService)
	bookingController := controllers.NewBookingController(bookingService)
	itineraryController := controllers.NewItineraryController(itineraryService)
	unavailabilityController := controllers.NewUnavailabilityController(unavailabilityService, boatController)
	adminController := controllers.NewAdminController(adminService)
	analyticsController := controllers.NewAnalyticsController(analyticsService)

	// Build router
	router := routes.SetupRouter(
		boatController,
		charterController,
		availabilityController,
		bookingController,
		itineraryController,
		unavailabilityController,
		adminController,
		analyticsController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
