package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/lib/pq"

	"vehiclebooking/internal/db"
	"vehiclebooking/internal/entities"
	apperrors "vehiclebooking/internal/errors"
	"vehiclebooking/internal/utils"
)

type VehicleRepository struct {
	DB *sql.DB
}

func NewVehicleRepository(database *sql.DB) *VehicleRepository {
	return &VehicleRepository{DB: database}
}

const vehicleColumns = `id, make, model, year, license_plate, vehicle_type, capacity, color, daily_rate, is_available, description, features, created_at`

func scanVehicleRows(rows *sql.Rows) ([]db.Vehicle, error) {
	defer rows.Close()
	var vehicles []db.Vehicle
	for rows.Next() {
		var v db.Vehicle
		var description, features sql.NullString
		err := rows.Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.LicensePlate, &v.VehicleType,
			&v.Capacity, &v.Color, &v.DailyRate, &v.IsAvailable, &description, &features, &v.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning vehicle: %w", err)
		}
		v.Description = description.String
		v.Features = features.String
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating vehicle rows: %w", err)
	}
	return vehicles, nil
}

func (r *VehicleRepository) Create(v *db.Vehicle) error {
	query := `
		INSERT INTO vehicles (make, model, year, license_plate, vehicle_type, capacity, color, daily_rate, is_available, description, features)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at`
	err := r.DB.QueryRow(query, v.Make, v.Model, v.Year, v.LicensePlate, v.VehicleType,
		v.Capacity, v.Color, v.DailyRate, v.IsAvailable, v.Description, v.Features).
		Scan(&v.ID, &v.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return apperrors.Conflict("license plate %s already registered", v.LicensePlate)
		}
		return fmt.Errorf("error creating vehicle: %w", err)
	}
	return nil
}

func (r *VehicleRepository) Update(v *db.Vehicle) error {
	query := `
		UPDATE vehicles
		SET make = $1, model = $2, year = $3, license_plate = $4, vehicle_type = $5,
		    capacity = $6, color = $7, daily_rate = $8, is_available = $9, description = $10, features = $11
		WHERE id = $12`
	result, err := r.DB.Exec(query, v.Make, v.Model, v.Year, v.LicensePlate, v.VehicleType,
		v.Capacity, v.Color, v.DailyRate, v.IsAvailable, v.Description, v.Features, v.ID)
	if err != nil {
		return fmt.Errorf("error updating vehicle: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking vehicle update: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("vehicle %d not found", v.ID)
	}
	return nil
}

func (r *VehicleRepository) Delete(id int) error {
	result, err := r.DB.Exec(`DELETE FROM vehicles WHERE id = $1`, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23503" {
			return apperrors.Integrity("vehicle %d has bookings and cannot be deleted", id)
		}
		return fmt.Errorf("error deleting vehicle: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking vehicle delete: %w", err)
	}
	if affected == 0 {
		return apperrors.NotFound("vehicle %d not found", id)
	}
	return nil
}

func (r *VehicleRepository) GetByID(id int) (*db.Vehicle, error) {
	var v db.Vehicle
	var description, features sql.NullString
	err := r.DB.QueryRow(`SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id).
		Scan(&v.ID, &v.Make, &v.Model, &v.Year, &v.LicensePlate, &v.VehicleType,
			&v.Capacity, &v.Color, &v.DailyRate, &v.IsAvailable, &description, &features, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NotFound("vehicle %d not found", id)
		}
		return nil, fmt.Errorf("error querying vehicle: %w", err)
	}
	v.Description = description.String
	v.Features = features.String
	return &v, nil
}

// List returns every vehicle regardless of the availability flag (admin view).
func (r *VehicleRepository) List() ([]db.Vehicle, error) {
	rows, err := r.DB.Query(`SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("error listing vehicles: %w", err)
	}
	return scanVehicleRows(rows)
}

// Featured returns the first few flagged-available vehicles for the landing page.
func (r *VehicleRepository) Featured(limit int) ([]db.Vehicle, error) {
	rows, err := r.DB.Query(`SELECT `+vehicleColumns+` FROM vehicles WHERE is_available = TRUE ORDER BY id LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing featured vehicles: %w", err)
	}
	return scanVehicleRows(rows)
}

// Search applies the filter configuration as conjunctive predicates over the
// flagged-available vehicles. When both dates are present, vehicles with any
// pending or confirmed booking overlapping the range are excluded.
func (r *VehicleRepository) Search(req entities.SearchRequest) ([]db.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE is_available = TRUE`
	args := []interface{}{}
	idx := 1

	if req.VehicleType != "" {
		query += " AND vehicle_type = $" + strconv.Itoa(idx)
		args = append(args, req.VehicleType)
		idx++
	}
	if req.MaxPrice != nil {
		query += " AND daily_rate <= $" + strconv.Itoa(idx)
		args = append(args, *req.MaxPrice)
		idx++
	}
	if req.MinCapacity != nil {
		query += " AND capacity >= $" + strconv.Itoa(idx)
		args = append(args, *req.MinCapacity)
		idx++
	}
	if req.StartDate != "" && req.EndDate != "" {
		start, err := utils.ParseDate(req.StartDate)
		if err != nil {
			return nil, apperrors.Validation("invalid start_date: %s", req.StartDate)
		}
		end, err := utils.ParseDate(req.EndDate)
		if err != nil {
			return nil, apperrors.Validation("invalid end_date: %s", req.EndDate)
		}
		query += ` AND NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.vehicle_id = vehicles.id
			  AND b.status IN ('pending', 'confirmed')
			  AND b.start_date <= $` + strconv.Itoa(idx+1) + `
			  AND b.end_date >= $` + strconv.Itoa(idx) + `
		)`
		args = append(args, start, end)
		idx += 2
	}
	query += " ORDER BY id"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error searching vehicles: %w", err)
	}
	return scanVehicleRows(rows)
}

func (r *VehicleRepository) Count() (int, error) {
	var count int
	if err := r.DB.QueryRow(`SELECT COUNT(*) FROM vehicles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting vehicles: %w", err)
	}
	return count, nil
}
