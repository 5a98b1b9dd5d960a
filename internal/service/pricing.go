package service

import (
	"math"
	"time"

	apperrors "vehiclebooking/internal/errors"
)

// Discount tiers by booking length in days. The month tier takes precedence
// over the week tier.
const (
	weekDiscountDays  = 7
	monthDiscountDays = 30
	weekDiscount      = 0.10
	monthDiscount     = 0.20
)

// BookingDays returns the number of calendar days in [start, end], inclusive
// of both endpoints. A one-day rental has start == end.
func BookingDays(startDate, endDate time.Time) int {
	return int(endDate.Sub(startDate)/(24*time.Hour)) + 1
}

// CalculateBookingPrice computes the total price for a booking: daily rate
// times the inclusive day count, with a tiered discount for longer bookings,
// rounded half-up to 2 decimal places.
func CalculateBookingPrice(dailyRate float64, startDate, endDate time.Time) (float64, error) {
	if dailyRate < 0 {
		return 0, apperrors.Validation("daily rate must not be negative")
	}
	if endDate.Before(startDate) {
		return 0, apperrors.Validation("end date must not be before start date")
	}

	days := BookingDays(startDate, endDate)
	total := dailyRate * float64(days)

	switch {
	case days >= monthDiscountDays:
		total *= 1 - monthDiscount
	case days >= weekDiscountDays:
		total *= 1 - weekDiscount
	}

	return math.Round(total*100) / 100, nil
}
