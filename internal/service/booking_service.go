package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"vehiclebooking/internal/db"
	"vehiclebooking/internal/entities"
	apperrors "vehiclebooking/internal/errors"
	"vehiclebooking/internal/utils"
)

// BookingStore is what the booking service needs from persistence.
type BookingStore interface {
	CountOverlapping(vehicleID int, start, end time.Time) (int, error)
	CreateChecked(b *db.Booking) error
	GetByID(id int) (*db.Booking, error)
	ListByUser(userID int) ([]db.Booking, error)
	List(status string) ([]db.Booking, error)
	UpdateStatus(id int, status, notes string) error
	CountByVehicle(vehicleID int) (int, error)
	InsertStatusEvent(ev *db.StatusEvent) error
}

// VehicleStore is the vehicle lookup the booking service depends on.
type VehicleStore interface {
	GetByID(id int) (*db.Vehicle, error)
}

// Notifier delivers best-effort booking status notifications.
type Notifier interface {
	BookingStatusChanged(booking *db.Booking, vehicle *db.Vehicle, status string)
}

type BookingService struct {
	Repo     BookingStore
	Vehicles VehicleStore
	Notifier Notifier
}

func NewBookingService(repo BookingStore, vehicles VehicleStore, notifier Notifier) *BookingService {
	return &BookingService{Repo: repo, Vehicles: vehicles, Notifier: notifier}
}

// IsAvailable reports whether the vehicle has no pending or confirmed
// booking overlapping [start, end].
func (s *BookingService) IsAvailable(vehicleID int, start, end time.Time) (bool, error) {
	if end.Before(start) {
		return false, apperrors.Validation("end date must not be before start date")
	}
	count, err := s.Repo.CountOverlapping(vehicleID, start, end)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// Create books the vehicle for the user. The availability re-check and the
// insert run in one transaction against the store, which is authoritative;
// the price is fixed at creation time from the vehicle's current daily rate.
func (s *BookingService) Create(userID int, req entities.CreateBookingRequest) (*db.Booking, error) {
	vehicle, err := s.Vehicles.GetByID(req.VehicleID)
	if err != nil {
		return nil, err
	}
	if !vehicle.IsAvailable {
		return nil, apperrors.Conflict("vehicle is not available for booking")
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, apperrors.Validation("invalid start_date: %s", req.StartDate)
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, apperrors.Validation("invalid end_date: %s", req.EndDate)
	}
	if end.Before(start) {
		return nil, apperrors.Validation("end date must not be before start date")
	}

	totalPrice, err := CalculateBookingPrice(vehicle.DailyRate, start, end)
	if err != nil {
		return nil, err
	}

	// Only the last 4 digits survive; the CVV is never stored.
	last4 := utils.MaskCardNumber(req.CardNumber)
	if last4 == "" {
		return nil, apperrors.Validation("invalid card number")
	}

	booking := &db.Booking{
		Code:       uuid.NewString(),
		UserID:     userID,
		VehicleID:  vehicle.ID,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: totalPrice,
		Status:     db.StatusPending,
		CardLast4:  last4,
		CardHolder: req.CardHolder,
		CardExpiry: req.CardExpiry,
		Notes:      req.Notes,
	}
	if err := s.Repo.CreateChecked(booking); err != nil {
		return nil, err
	}

	logrus.Printf("Booking %s created: vehicle %d, %s to %s, total %.2f",
		booking.Code, booking.VehicleID, req.StartDate, req.EndDate, booking.TotalPrice)
	s.notify(booking, vehicle, db.StatusPending)
	return booking, nil
}

// GetForUser returns the booking when it belongs to the user or the
// requester is an admin.
func (s *BookingService) GetForUser(bookingID, requestingUserID int, isAdmin bool) (*db.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != requestingUserID && !isAdmin {
		return nil, apperrors.Authorization("booking does not belong to the requesting user")
	}
	return booking, nil
}

func (s *BookingService) ListForUser(userID int) ([]db.Booking, error) {
	return s.Repo.ListByUser(userID)
}

func (s *BookingService) List(status string) ([]db.Booking, error) {
	if status != "" && !db.ValidStatus(status) {
		return nil, apperrors.Validation("unknown status %q", status)
	}
	return s.Repo.List(status)
}

// Cancel cancels the user's own pending or confirmed booking.
func (s *BookingService) Cancel(bookingID, requestingUserID int) error {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != requestingUserID {
		return apperrors.Authorization("booking does not belong to the requesting user")
	}
	if !CanTransition(booking.Status, db.StatusCancelled) {
		return apperrors.InvalidState("booking in status %q cannot be cancelled", booking.Status)
	}
	if err := s.Repo.UpdateStatus(booking.ID, db.StatusCancelled, booking.Notes); err != nil {
		return err
	}

	logrus.Printf("Booking %s cancelled by user %d", booking.Code, requestingUserID)
	s.notifyByID(booking, db.StatusCancelled)
	return nil
}

// SetStatus is the privileged override path: an administrator may force any
// status from any prior state, including reopening terminal bookings. Every
// change is recorded in the audit trail.
func (s *BookingService) SetStatus(bookingID int, newStatus, notes string, actorID int, isAdmin bool) (*db.Booking, error) {
	if !isAdmin {
		return nil, apperrors.Authorization("only administrators can set booking status")
	}
	if !db.ValidStatus(newStatus) {
		return nil, apperrors.Validation("unknown status %q", newStatus)
	}

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	oldStatus := booking.Status
	if err := s.Repo.UpdateStatus(booking.ID, newStatus, notes); err != nil {
		return nil, err
	}

	event := &db.StatusEvent{
		BookingID: booking.ID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		ActorID:   actorID,
		Note:      notes,
	}
	if err := s.Repo.InsertStatusEvent(event); err != nil {
		return nil, err
	}

	booking.Status = newStatus
	booking.Notes = notes
	logrus.Printf("Booking %s status %s -> %s by admin %d", booking.Code, oldStatus, newStatus, actorID)
	if oldStatus != newStatus {
		s.notifyByID(booking, newStatus)
	}
	return booking, nil
}

func (s *BookingService) notify(booking *db.Booking, vehicle *db.Vehicle, status string) {
	if s.Notifier == nil {
		return
	}
	s.Notifier.BookingStatusChanged(booking, vehicle, status)
}

func (s *BookingService) notifyByID(booking *db.Booking, status string) {
	if s.Notifier == nil {
		return
	}
	vehicle, err := s.Vehicles.GetByID(booking.VehicleID)
	if err != nil {
		logrus.Printf("Could not load vehicle %d for notification: %v", booking.VehicleID, err)
		return
	}
	s.Notifier.BookingStatusChanged(booking, vehicle, status)
}
