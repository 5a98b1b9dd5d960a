package service

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"vehiclebooking/internal/db"
	"vehiclebooking/internal/repository"
)

type JobService struct {
	Repo *repository.JobRepository
}

func NewJobService(repo *repository.JobRepository) *JobService {
	return &JobService{Repo: repo}
}

// CompleteFinishedBookings marks confirmed bookings whose end date has
// passed as completed, and cancels pending bookings that were never
// confirmed before their end date. Both stop blocking availability.
func (s *JobService) CompleteFinishedBookings() error {
	confirmedIDs, err := s.Repo.BookingIDsPastEndDate(db.StatusConfirmed)
	if err != nil {
		return fmt.Errorf("sweep: failed to get confirmed bookings past end date: %w", err)
	}
	if len(confirmedIDs) > 0 {
		updated, err := s.Repo.UpdateBookingStatuses(confirmedIDs, db.StatusCompleted)
		if err != nil {
			return fmt.Errorf("sweep: failed to complete bookings: %w", err)
		}
		logrus.Printf("Sweep: marked %d bookings as completed", updated)
	}

	pendingIDs, err := s.Repo.BookingIDsPastEndDate(db.StatusPending)
	if err != nil {
		return fmt.Errorf("sweep: failed to get pending bookings past end date: %w", err)
	}
	if len(pendingIDs) > 0 {
		updated, err := s.Repo.UpdateBookingStatuses(pendingIDs, db.StatusCancelled)
		if err != nil {
			return fmt.Errorf("sweep: failed to cancel stale pending bookings: %w", err)
		}
		logrus.Printf("Sweep: cancelled %d stale pending bookings", updated)
	}
	return nil
}
