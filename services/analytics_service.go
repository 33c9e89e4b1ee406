package services

import (
	"fmt"

	"ezsail-backend/models"

	"gorm.io/gorm"
)

type AnalyticsService struct {
	DB *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{DB: db}
}

type BoatBookingCount struct {
	BoatID   uint    `json:"boat_id"`
	BoatName string  `json:"boat_name"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// AnalyticsSummary feeds the operator/admin dashboard.
type AnalyticsSummary struct {
	TotalBookings   int64              `json:"total_bookings"`
	CountsByStatus  map[string]int64   `json:"counts_by_status"`
	TotalRevenue    float64            `json:"total_revenue"`
	RevenueByMonth  map[string]float64 `json:"revenue_by_month"`
	TopBoats        []BoatBookingCount `json:"top_boats"`
}

// Summary aggregates booking counts and revenue. Revenue counts Definitive
// bookings only; month keys are "2006-01". Cancelled bookings stay in the
// status counts but never in revenue. operatorID of 0 means platform-wide.
func (s *AnalyticsService) Summary(operatorID uint) (*AnalyticsSummary, error) {
	scoped := func(tx *gorm.DB) *gorm.DB {
		if operatorID != 0 {
			return tx.Where("bookings.operator_id = ?", operatorID)
		}
		return tx
	}

	out := &AnalyticsSummary{
		CountsByStatus: map[string]int64{},
		RevenueByMonth: map[string]float64{},
		TopBoats:       []BoatBookingCount{},
	}

	type statusRow struct {
		Status string
		N      int64
	}
	var statusRows []statusRow
	if err := scoped(s.DB.Model(&models.Booking{})).
		Select("status, COUNT(*) AS n").
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate booking statuses: %w", err)
	}
	for _, r := range statusRows {
		out.CountsByStatus[r.Status] = r.N
		out.TotalBookings += r.N
	}

	// month grouping happens in Go so the same query runs on MySQL and the
	// sqlite test database
	var definitive []models.Booking
	if err := scoped(s.DB.Model(&models.Booking{})).
		Where("status = ?", models.BookingStatusDefinitive).
		Select("booking_date_time", "final_price").
		Find(&definitive).Error; err != nil {
		return nil, fmt.Errorf("failed to load definitive bookings: %w", err)
	}
	for _, b := range definitive {
		out.TotalRevenue += b.FinalPrice
		out.RevenueByMonth[b.BookingDateTime.Format("2006-01")] += b.FinalPrice
	}

	var top []BoatBookingCount
	if err := scoped(s.DB.Model(&models.Booking{})).
		Select(`bookings.boat_id,
			boats.name AS boat_name,
			COUNT(*) AS bookings,
			SUM(CASE WHEN bookings.status = ? THEN bookings.final_price ELSE 0 END) AS revenue`,
			models.BookingStatusDefinitive).
		Joins("JOIN boats ON boats.id = bookings.boat_id").
		Group("bookings.boat_id, boats.name").
		Order("bookings DESC").
		Limit(5).
		Scan(&top).Error; err != nil {
		return nil, fmt.Errorf("failed to aggregate top boats: %w", err)
	}
	if top != nil {
		out.TopBoats = top
	}

	return out, nil
}
