package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"vehiclebooking/internal/db"
	apperrors "vehiclebooking/internal/errors"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

const bookingColumns = `id, code, user_id, vehicle_id, start_date, end_date, total_price, status, card_last4, card_holder, card_expiry, notes, created_at, updated_at`

// Two inclusive date ranges overlap iff each starts no later than the other
// ends. Kept as a single inequality pair in every query that needs it.
const overlapCondition = `start_date <= $3 AND end_date >= $2`

func scanBooking(scan func(dest ...interface{}) error) (*db.Booking, error) {
	var b db.Booking
	var notes sql.NullString
	err := scan(&b.ID, &b.Code, &b.UserID, &b.VehicleID, &b.StartDate, &b.EndDate,
		&b.TotalPrice, &b.Status, &b.CardLast4, &b.CardHolder, &b.CardExpiry,
		&notes, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.Notes = notes.String
	return &b, nil
}

func scanBookingRows(rows *sql.Rows) ([]db.Booking, error) {
	defer rows.Close()
	var bookings []db.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking: %w", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating booking rows: %w", err)
	}
	return bookings, nil
}

// CountOverlapping counts pending and confirmed bookings for the vehicle
// whose date range overlaps [start, end]. Cancelled and completed bookings
// never block availability.
func (r *BookingRepository) CountOverlapping(vehicleID int, start, end time.Time) (int, error) {
	query := `
		SELECT COUNT(*) FROM bookings
		WHERE vehicle_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND ` + overlapCondition
	var count int
	if err := r.DB.QueryRow(query, vehicleID, start, end).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting overlapping bookings: %w", err)
	}
	return count, nil
}

// CreateChecked inserts the booking inside one transaction that first locks
// the vehicle row and re-checks for overlaps, so two concurrent creates for
// the same vehicle serialize and the loser gets a conflict error.
func (r *BookingRepository) CreateChecked(b *db.Booking) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return fmt.Errorf("error starting booking transaction: %w", err)
	}
	defer tx.Rollback()

	var vehicleID int
	err = tx.QueryRow(`SELECT id FROM vehicles WHERE id = $1 FOR UPDATE`, b.VehicleID).Scan(&vehicleID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NotFound("vehicle %d not found", b.VehicleID)
		}
		return fmt.Errorf("error locking vehicle row: %w", err)
	}

	var count int
	countQuery := `
		SELECT COUNT(*) FROM bookings
		WHERE vehicle_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND ` + overlapCondition
	if err := tx.QueryRow(countQuery, b.VehicleID, b.StartDate, b.EndDate).Scan(&count); err != nil {
		return fmt.Errorf("error re-checking availability: %w", err)
	}
	if count > 0 {
		return apperrors.Conflict("vehicle is not available for the selected dates")
	}

	insert := `
		INSERT INTO bookings (code, user_id, vehicle_id, start_date, end_date, total_price, status, card_last4, card_holder, card_expiry, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at`
	err = tx.QueryRow(insert, b.Code, b.UserID, b.VehicleID, b.StartDate, b.EndDate,
		b.TotalPrice, b.Status, b.CardLast4, b.CardHolder, b.CardExpiry, b.Notes).
		Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting booking: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) GetByID(id int) (*db.Booking, error) {
	b, err := scanBooking(r.DB.QueryRow(`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("booking %d not found", id)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return b, nil
}

func (r *BookingRepository) ListByUser(userID int) ([]db.Booking, error) {
	rows, err := r.DB.Query(`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings for user: %w", err)
	}
	return scanBookingRows(rows)
}

// List returns all bookings newest-first, optionally filtered by status.
func (r *BookingRepository) List(status string) ([]db.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE 1=1`
	args := []interface{}{}
	idx := 1
	if status != "" {
		query += " AND status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing bookings: %w", err)
	}
	return scanBookingRows(rows)
}

func (r *BookingRepository) UpdateStatus(id int, status, notes string) error {
	query := `UPDATE bookings SET status = $1, notes = $2, updated_at = NOW() WHERE id = $3`
	result, err := r.DB.Exec(query, status, notes, id)
	if err != nil {
		return fmt.Errorf("error updating booking status: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking booking update: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("booking %d not found", id)
	}
	return nil
}

// CountByVehicle counts bookings in any status, the guard for vehicle deletion.
func (r *BookingRepository) CountByVehicle(vehicleID int) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM bookings WHERE vehicle_id = $1`, vehicleID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings for vehicle: %w", err)
	}
	return count, nil
}

// InsertStatusEvent records one admin override in the audit trail.
func (r *BookingRepository) InsertStatusEvent(ev *db.StatusEvent) error {
	query := `
		INSERT INTO booking_status_events (booking_id, old_status, new_status, actor_id, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`
	err := r.DB.QueryRow(query, ev.BookingID, ev.OldStatus, ev.NewStatus, ev.ActorID, ev.Note).
		Scan(&ev.ID, &ev.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording status event: %w", err)
	}
	return nil
}
