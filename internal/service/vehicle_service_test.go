package service

import (
	"testing"

	"vehiclebooking/internal/db"
	"vehiclebooking/internal/entities"
	apperrors "vehiclebooking/internal/errors"
)

type fakeInventoryStore struct {
	vehicles map[int]db.Vehicle
	nextID   int
}

func (f *fakeInventoryStore) Create(v *db.Vehicle) error {
	f.nextID++
	v.ID = f.nextID
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeInventoryStore) Update(v *db.Vehicle) error {
	if _, ok := f.vehicles[v.ID]; !ok {
		return apperrors.NotFound("vehicle %d not found", v.ID)
	}
	f.vehicles[v.ID] = *v
	return nil
}

func (f *fakeInventoryStore) Delete(id int) error {
	if _, ok := f.vehicles[id]; !ok {
		return apperrors.NotFound("vehicle %d not found", id)
	}
	delete(f.vehicles, id)
	return nil
}

func (f *fakeInventoryStore) GetByID(id int) (*db.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, apperrors.NotFound("vehicle %d not found", id)
	}
	return &v, nil
}

func (f *fakeInventoryStore) List() ([]db.Vehicle, error) { return nil, nil }

func (f *fakeInventoryStore) Featured(limit int) ([]db.Vehicle, error) { return nil, nil }

func (f *fakeInventoryStore) Search(req entities.SearchRequest) ([]db.Vehicle, error) {
	return nil, nil
}

type fakeBookingCounter struct {
	counts map[int]int
}

func (f *fakeBookingCounter) CountByVehicle(vehicleID int) (int, error) {
	return f.counts[vehicleID], nil
}

func vehicleReq() entities.VehicleRequest {
	return entities.VehicleRequest{
		Make:         "Toyota",
		Model:        "Corolla",
		Year:         2022,
		LicensePlate: "ABC-123",
		VehicleType:  db.TypeCar,
		Capacity:     5,
		Color:        "blue",
		DailyRate:    100.00,
		IsAvailable:  true,
	}
}

func TestVehicleDeleteGuard(t *testing.T) {
	store := &fakeInventoryStore{vehicles: map[int]db.Vehicle{}}
	counts := &fakeBookingCounter{counts: map[int]int{}}
	svc := NewVehicleService(store, counts)

	booked, err := svc.Create(vehicleReq())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	req := vehicleReq()
	req.LicensePlate = "XYZ-789"
	free, err := svc.Create(req)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	counts.counts[booked.ID] = 1

	err = svc.Delete(booked.ID)
	if kind := apperrors.KindOf(err); kind != apperrors.KindIntegrity {
		t.Fatalf("delete of referenced vehicle: expected integrity, got %v (%s)", err, kind)
	}
	if _, err := store.GetByID(booked.ID); err != nil {
		t.Fatalf("referenced vehicle must survive the failed delete: %v", err)
	}

	if err := svc.Delete(free.ID); err != nil {
		t.Fatalf("delete of unreferenced vehicle: %v", err)
	}

	err = svc.Delete(12345)
	if kind := apperrors.KindOf(err); kind != apperrors.KindNotFound {
		t.Fatalf("delete of missing vehicle: expected not_found, got %v (%s)", err, kind)
	}
}

func TestSearchValidation(t *testing.T) {
	store := &fakeInventoryStore{vehicles: map[int]db.Vehicle{}}
	svc := NewVehicleService(store, &fakeBookingCounter{counts: map[int]int{}})

	_, err := svc.Search(entities.SearchRequest{StartDate: "2024-06-01"})
	if kind := apperrors.KindOf(err); kind != apperrors.KindValidation {
		t.Fatalf("lone start_date: expected validation, got %v (%s)", err, kind)
	}

	_, err = svc.Search(entities.SearchRequest{VehicleType: "boat"})
	if kind := apperrors.KindOf(err); kind != apperrors.KindValidation {
		t.Fatalf("unknown vehicle type: expected validation, got %v (%s)", err, kind)
	}

	if _, err := svc.Search(entities.SearchRequest{}); err != nil {
		t.Fatalf("empty filters must be accepted: %v", err)
	}
}
