package repository

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// BookingIDsPastEndDate returns IDs of bookings in the given status whose
// end date is already behind us.
func (r *JobRepository) BookingIDsPastEndDate(status string) ([]int, error) {
	query := `SELECT id FROM bookings WHERE status = $1 AND end_date < CURRENT_DATE`
	rows, err := r.DB.Query(query, status)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings past end date: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning booking ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateBookingStatuses moves a batch of bookings to the new status.
func (r *JobRepository) UpdateBookingStatuses(ids []int, newStatus string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatus, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("error updating booking statuses: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading rows affected: %w", err)
	}
	return affected, nil
}
