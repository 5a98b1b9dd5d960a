package service

import (
	"vehiclebooking/internal/db"
	"vehiclebooking/internal/entities"
	apperrors "vehiclebooking/internal/errors"
)

// InventoryStore is the full vehicle persistence surface for the inventory
// service (admin CRUD plus the public queries).
type InventoryStore interface {
	Create(v *db.Vehicle) error
	Update(v *db.Vehicle) error
	Delete(id int) error
	GetByID(id int) (*db.Vehicle, error)
	List() ([]db.Vehicle, error)
	Featured(limit int) ([]db.Vehicle, error)
	Search(req entities.SearchRequest) ([]db.Vehicle, error)
}

// bookingCounter is the slice of the booking store the deletion guard needs.
type bookingCounter interface {
	CountByVehicle(vehicleID int) (int, error)
}

type VehicleService struct {
	Repo     InventoryStore
	Bookings bookingCounter
}

func NewVehicleService(repo InventoryStore, bookings bookingCounter) *VehicleService {
	return &VehicleService{Repo: repo, Bookings: bookings}
}

func (s *VehicleService) Create(req entities.VehicleRequest) (*db.Vehicle, error) {
	vehicle := vehicleFromRequest(req)
	if err := s.Repo.Create(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) Update(id int, req entities.VehicleRequest) (*db.Vehicle, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, err
	}
	vehicle := vehicleFromRequest(req)
	vehicle.ID = id
	if err := s.Repo.Update(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete removes a vehicle. A vehicle with any booking, in any status,
// cannot be deleted; the check runs here in addition to the store's
// foreign key.
func (s *VehicleService) Delete(id int) error {
	if _, err := s.Repo.GetByID(id); err != nil {
		return err
	}
	count, err := s.Bookings.CountByVehicle(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.Integrity("vehicle %d has bookings and cannot be deleted", id)
	}
	return s.Repo.Delete(id)
}

func (s *VehicleService) Get(id int) (*db.Vehicle, error) {
	return s.Repo.GetByID(id)
}

func (s *VehicleService) List() ([]db.Vehicle, error) {
	return s.Repo.List()
}

func (s *VehicleService) Featured(limit int) ([]db.Vehicle, error) {
	return s.Repo.Featured(limit)
}

// Search validates the filter configuration and runs it against the store.
func (s *VehicleService) Search(req entities.SearchRequest) ([]db.Vehicle, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation("invalid search filters: %v", err)
	}
	if (req.StartDate == "") != (req.EndDate == "") {
		return nil, apperrors.Validation("start_date and end_date must be given together")
	}
	return s.Repo.Search(req)
}

func vehicleFromRequest(req entities.VehicleRequest) *db.Vehicle {
	return &db.Vehicle{
		Make:         req.Make,
		Model:        req.Model,
		Year:         req.Year,
		LicensePlate: req.LicensePlate,
		VehicleType:  req.VehicleType,
		Capacity:     req.Capacity,
		Color:        req.Color,
		DailyRate:    req.DailyRate,
		IsAvailable:  req.IsAvailable,
		Description:  req.Description,
		Features:     req.Features,
	}
}
