package service

import (
	"time"

	"vehiclebooking/internal/db"
	"vehiclebooking/internal/entities"
	"vehiclebooking/internal/repository"
	"vehiclebooking/internal/utils"
)

const (
	recentBookingsLimit = 5
	topVehiclesLimit    = 5
)

type ReportService struct {
	Reports  *repository.ReportRepository
	Bookings BookingStore
	Vehicles *repository.VehicleRepository
	Users    *repository.UserRepository
}

func NewReportService(reports *repository.ReportRepository, bookings BookingStore,
	vehicles *repository.VehicleRepository, users *repository.UserRepository) *ReportService {
	return &ReportService{Reports: reports, Bookings: bookings, Vehicles: vehicles, Users: users}
}

// Dashboard collects the admin landing-page counters and recent bookings.
func (s *ReportService) Dashboard() (*entities.DashboardResponse, error) {
	vehicleCount, err := s.Vehicles.Count()
	if err != nil {
		return nil, err
	}
	userCount, err := s.Users.Count()
	if err != nil {
		return nil, err
	}
	pending, err := s.Reports.CountBookingsByStatus(db.StatusPending)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.Reports.CountBookingsByStatus(db.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	recent, err := s.Bookings.List("")
	if err != nil {
		return nil, err
	}
	if len(recent) > recentBookingsLimit {
		recent = recent[:recentBookingsLimit]
	}

	resp := &entities.DashboardResponse{
		VehicleCount:      vehicleCount,
		UserCount:         userCount,
		PendingBookings:   pending,
		ConfirmedBookings: confirmed,
	}
	for _, b := range recent {
		resp.RecentBookings = append(resp.RecentBookings, BookingToResponse(&b))
	}
	return resp, nil
}

// MonthlyReport collects booking statistics since the start of the current
// month: totals, per-status counts, revenue from confirmed and completed
// bookings, and the most booked vehicles.
func (s *ReportService) MonthlyReport() (*entities.ReportResponse, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	monthly, err := s.Reports.CountBookingsSince(monthStart)
	if err != nil {
		return nil, err
	}
	pending, err := s.Reports.CountBookingsByStatus(db.StatusPending)
	if err != nil {
		return nil, err
	}
	confirmed, err := s.Reports.CountBookingsByStatus(db.StatusConfirmed)
	if err != nil {
		return nil, err
	}
	completed, err := s.Reports.CountBookingsByStatus(db.StatusCompleted)
	if err != nil {
		return nil, err
	}
	cancelled, err := s.Reports.CountBookingsByStatus(db.StatusCancelled)
	if err != nil {
		return nil, err
	}
	revenue, err := s.Reports.RevenueSince(monthStart)
	if err != nil {
		return nil, err
	}
	topVehicles, err := s.Reports.TopVehicles(topVehiclesLimit)
	if err != nil {
		return nil, err
	}

	return &entities.ReportResponse{
		MonthlyBookings: monthly,
		PendingCount:    pending,
		ConfirmedCount:  confirmed,
		CompletedCount:  completed,
		CancelledCount:  cancelled,
		MonthlyRevenue:  revenue,
		TopVehicles:     topVehicles,
	}, nil
}

// BookingToResponse converts a booking record to its API shape.
func BookingToResponse(b *db.Booking) entities.BookingResponse {
	return entities.BookingResponse{
		ID:         b.ID,
		Code:       b.Code,
		UserID:     b.UserID,
		VehicleID:  b.VehicleID,
		StartDate:  b.StartDate.Format(utils.DateLayout),
		EndDate:    b.EndDate.Format(utils.DateLayout),
		TotalPrice: b.TotalPrice,
		Status:     b.Status,
		CardLast4:  b.CardLast4,
		CardHolder: b.CardHolder,
		CardExpiry: b.CardExpiry,
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
