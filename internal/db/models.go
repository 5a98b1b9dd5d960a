package db

import "time"

// Booking statuses. Only pending and confirmed block availability;
// completed and cancelled are terminal for scheduling purposes.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Vehicle types accepted by the inventory.
const (
	TypeCar        = "car"
	TypeVan        = "van"
	TypeTruck      = "truck"
	TypeSUV        = "suv"
	TypeMotorcycle = "motorcycle"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func ValidVehicleType(t string) bool {
	switch t {
	case TypeCar, TypeVan, TypeTruck, TypeSUV, TypeMotorcycle:
		return true
	}
	return false
}

type User struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	IsAdmin      bool
	CreatedAt    time.Time
}

type Vehicle struct {
	ID           int
	Make         string
	Model        string
	Year         int
	LicensePlate string
	VehicleType  string
	Capacity     int
	Color        string
	DailyRate    float64
	IsAvailable  bool
	Description  string
	Features     string
	CreatedAt    time.Time
}

type Booking struct {
	ID         int
	Code       string
	UserID     int
	VehicleID  int
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice float64
	Status     string
	CardLast4  string
	CardHolder string
	CardExpiry string
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// StatusEvent is one entry in the audit trail written by the admin
// status override path.
type StatusEvent struct {
	ID        int
	BookingID int
	OldStatus string
	NewStatus string
	ActorID   int
	Note      string
	CreatedAt time.Time
}
