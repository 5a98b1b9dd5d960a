package repository

import (
	"database/sql"
	"fmt"
	"time"

	"vehiclebooking/internal/entities"
)

type ReportRepository struct {
	DB *sql.DB
}

func NewReportRepository(database *sql.DB) *ReportRepository {
	return &ReportRepository{DB: database}
}

func (r *ReportRepository) CountBookingsByStatus(status string) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings by status: %w", err)
	}
	return count, nil
}

func (r *ReportRepository) CountBookingsSince(since time.Time) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE created_at >= $1`, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings since %s: %w", since.Format("2006-01-02"), err)
	}
	return count, nil
}

// RevenueSince sums total_price of confirmed and completed bookings created
// on or after the given time.
func (r *ReportRepository) RevenueSince(since time.Time) (float64, error) {
	var revenue sql.NullFloat64
	query := `
		SELECT SUM(total_price) FROM bookings
		WHERE created_at >= $1 AND status IN ('confirmed', 'completed')`
	if err := r.DB.QueryRow(query, since).Scan(&revenue); err != nil {
		return 0, fmt.Errorf("error summing revenue: %w", err)
	}
	return revenue.Float64, nil
}

// TopVehicles returns the most-booked vehicles, any status, highest first.
func (r *ReportRepository) TopVehicles(limit int) ([]entities.VehicleBookingCount, error) {
	query := `
		SELECT v.id, v.make, v.model, COUNT(b.id) AS booking_count
		FROM vehicles v
		JOIN bookings b ON b.vehicle_id = v.id
		GROUP BY v.id, v.make, v.model
		ORDER BY COUNT(b.id) DESC, v.id
		LIMIT $1`
	rows, err := r.DB.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("error querying top vehicles: %w", err)
	}
	defer rows.Close()

	var results []entities.VehicleBookingCount
	for rows.Next() {
		var vc entities.VehicleBookingCount
		if err := rows.Scan(&vc.VehicleID, &vc.Make, &vc.Model, &vc.BookingCount); err != nil {
			return nil, fmt.Errorf("error scanning top vehicle row: %w", err)
		}
		results = append(results, vc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating top vehicle rows: %w", err)
	}
	return results, nil
}
