package entities

import "time"

type VehicleRequest struct {
	Make         string  `json:"make" validate:"required,max=64"`
	Model        string  `json:"model" validate:"required,max=64"`
	Year         int     `json:"year" validate:"required,min=1900,max=2100"`
	LicensePlate string  `json:"license_plate" validate:"required,max=20"`
	VehicleType  string  `json:"vehicle_type" validate:"required,oneof=car van truck suv motorcycle"`
	Capacity     int     `json:"capacity" validate:"required,min=1,max=50"`
	Color        string  `json:"color" validate:"required,max=20"`
	DailyRate    float64 `json:"daily_rate" validate:"min=0"`
	IsAvailable  bool    `json:"is_available"`
	Description  string  `json:"description" validate:"max=1000"`
	Features     string  `json:"features" validate:"max=500"`
}

func (r *VehicleRequest) Validate() error {
	return validate.Struct(r)
}

// SearchRequest is the fixed filter configuration for vehicle search.
// Every field is optional; present fields combine as AND predicates.
// StartDate and EndDate are YYYY-MM-DD and must be given together.
type SearchRequest struct {
	VehicleType string   `json:"vehicle_type" validate:"omitempty,oneof=car van truck suv motorcycle"`
	MaxPrice    *float64 `json:"max_price" validate:"omitempty,min=0"`
	MinCapacity *int     `json:"min_capacity" validate:"omitempty,min=1"`
	StartDate   string   `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate     string   `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *SearchRequest) Validate() error {
	return validate.Struct(r)
}

type VehicleResponse struct {
	ID           int       `json:"id"`
	Make         string    `json:"make"`
	Model        string    `json:"model"`
	Year         int       `json:"year"`
	LicensePlate string    `json:"license_plate"`
	VehicleType  string    `json:"vehicle_type"`
	Capacity     int       `json:"capacity"`
	Color        string    `json:"color"`
	DailyRate    float64   `json:"daily_rate"`
	IsAvailable  bool      `json:"is_available"`
	Description  string    `json:"description"`
	Features     string    `json:"features"`
	CreatedAt    time.Time `json:"created_at"`
}
