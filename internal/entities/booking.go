package entities

import "time"

type AvailabilityRequest struct {
	VehicleID int    `json:"vehicle_id" validate:"required,min=1"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

func (r *AvailabilityRequest) Validate() error {
	return validate.Struct(r)
}

type AvailabilityResponse struct {
	VehicleID int    `json:"vehicle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

type CreateBookingRequest struct {
	VehicleID  int    `json:"vehicle_id" validate:"required,min=1"`
	StartDate  string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate    string `json:"end_date" validate:"required,datetime=2006-01-02"`
	CardNumber string `json:"card_number" validate:"required,min=13,max=19"`
	CardHolder string `json:"card_holder" validate:"required,max=100"`
	CardExpiry string `json:"card_expiry" validate:"required,len=5"`
	// CVV is accepted for the payment form round trip but never persisted.
	CVV   string `json:"cvv" validate:"required,min=3,max=4"`
	Notes string `json:"notes" validate:"max=500"`
}

func (r *CreateBookingRequest) Validate() error {
	return validate.Struct(r)
}

type StatusUpdateRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	Notes  string `json:"notes" validate:"max=500"`
}

func (r *StatusUpdateRequest) Validate() error {
	return validate.Struct(r)
}

type BookingResponse struct {
	ID         int       `json:"id"`
	Code       string    `json:"code"`
	UserID     int       `json:"user_id"`
	VehicleID  int       `json:"vehicle_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	TotalPrice float64   `json:"total_price"`
	Status     string    `json:"status"`
	CardLast4  string    `json:"card_last4"`
	CardHolder string    `json:"card_holder"`
	CardExpiry string    `json:"card_expiry"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BookingsList struct {
	Total    int               `json:"total"`
	Bookings []BookingResponse `json:"bookings"`
}
