package service

import (
	"testing"
	"time"

	"vehiclebooking/internal/db"
	"vehiclebooking/internal/entities"
	apperrors "vehiclebooking/internal/errors"
)

// fakeBookingStore keeps bookings in memory and applies the same overlap
// rule as the SQL store.
type fakeBookingStore struct {
	bookings []db.Booking
	events   []db.StatusEvent
	nextID   int
}

func rangesOverlap(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}

func (f *fakeBookingStore) CountOverlapping(vehicleID int, start, end time.Time) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.VehicleID != vehicleID {
			continue
		}
		if b.Status != db.StatusPending && b.Status != db.StatusConfirmed {
			continue
		}
		if rangesOverlap(b.StartDate, b.EndDate, start, end) {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingStore) CreateChecked(b *db.Booking) error {
	count, _ := f.CountOverlapping(b.VehicleID, b.StartDate, b.EndDate)
	if count > 0 {
		return apperrors.Conflict("vehicle is not available for the selected dates")
	}
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingStore) GetByID(id int) (*db.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, apperrors.NotFound("booking %d not found", id)
}

func (f *fakeBookingStore) ListByUser(userID int) ([]db.Booking, error) {
	var out []db.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) List(status string) ([]db.Booking, error) {
	if status == "" {
		return f.bookings, nil
	}
	var out []db.Booking
	for _, b := range f.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingStore) UpdateStatus(id int, status, notes string) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			f.bookings[i].Notes = notes
			f.bookings[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return apperrors.NotFound("booking %d not found", id)
}

func (f *fakeBookingStore) CountByVehicle(vehicleID int) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.VehicleID == vehicleID {
			count++
		}
	}
	return count, nil
}

func (f *fakeBookingStore) InsertStatusEvent(ev *db.StatusEvent) error {
	ev.ID = len(f.events) + 1
	ev.CreatedAt = time.Now()
	f.events = append(f.events, *ev)
	return nil
}

type fakeVehicleStore struct {
	vehicles map[int]db.Vehicle
}

func (f *fakeVehicleStore) GetByID(id int) (*db.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, apperrors.NotFound("vehicle %d not found", id)
	}
	return &v, nil
}

func newTestBookingService() (*BookingService, *fakeBookingStore) {
	store := &fakeBookingStore{}
	vehicles := &fakeVehicleStore{vehicles: map[int]db.Vehicle{
		1: {ID: 1, Make: "Toyota", Model: "Corolla", Year: 2022, VehicleType: db.TypeCar, Capacity: 5, DailyRate: 100.00, IsAvailable: true},
		2: {ID: 2, Make: "Ford", Model: "Transit", Year: 2021, VehicleType: db.TypeVan, Capacity: 9, DailyRate: 150.00, IsAvailable: false},
	}}
	return NewBookingService(store, vehicles, nil), store
}

func bookingReq(vehicleID int, start, end string) entities.CreateBookingRequest {
	return entities.CreateBookingRequest{
		VehicleID:  vehicleID,
		StartDate:  start,
		EndDate:    end,
		CardNumber: "4111111111111234",
		CardHolder: "Test Holder",
		CardExpiry: "12/27",
		CVV:        "123",
	}
}

func TestCreateBookingScenario(t *testing.T) {
	svc, store := newTestBookingService()

	// First user books 7 days at 100.00/day: 10% discount applies.
	first, err := svc.Create(10, bookingReq(1, "2024-06-01", "2024-06-07"))
	if err != nil {
		t.Fatalf("first booking: %v", err)
	}
	if first.TotalPrice != 630.00 {
		t.Fatalf("first booking price: got %.2f, want 630.00", first.TotalPrice)
	}
	if first.Status != db.StatusPending {
		t.Fatalf("first booking status: got %s, want pending", first.Status)
	}

	// Second user overlaps on 06-05..06-07 and must be rejected.
	_, err = svc.Create(11, bookingReq(1, "2024-06-05", "2024-06-10"))
	if err == nil {
		t.Fatalf("expected conflict for overlapping booking")
	}
	if kind := apperrors.KindOf(err); kind != apperrors.KindConflict {
		t.Fatalf("expected conflict kind, got %s", kind)
	}

	// After the owner cancels, the same request succeeds at 6 days, no tier.
	if err := svc.Cancel(first.ID, 10); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	second, err := svc.Create(11, bookingReq(1, "2024-06-05", "2024-06-10"))
	if err != nil {
		t.Fatalf("second booking after cancel: %v", err)
	}
	if second.TotalPrice != 600.00 {
		t.Fatalf("second booking price: got %.2f, want 600.00", second.TotalPrice)
	}

	if len(store.bookings) != 2 {
		t.Fatalf("expected 2 bookings in store, got %d", len(store.bookings))
	}
}

func TestCreateBookingErrors(t *testing.T) {
	svc, _ := newTestBookingService()

	_, err := svc.Create(10, bookingReq(99, "2024-06-01", "2024-06-07"))
	if kind := apperrors.KindOf(err); kind != apperrors.KindNotFound {
		t.Fatalf("missing vehicle: expected not_found, got %v (%s)", err, kind)
	}

	_, err = svc.Create(10, bookingReq(2, "2024-06-01", "2024-06-07"))
	if kind := apperrors.KindOf(err); kind != apperrors.KindConflict {
		t.Fatalf("administratively unavailable vehicle: expected conflict, got %v (%s)", err, kind)
	}

	_, err = svc.Create(10, bookingReq(1, "2024-06-07", "2024-06-01"))
	if kind := apperrors.KindOf(err); kind != apperrors.KindValidation {
		t.Fatalf("end before start: expected validation, got %v (%s)", err, kind)
	}
}

func TestCreateBookingMasksPaymentData(t *testing.T) {
	svc, store := newTestBookingService()

	booking, err := svc.Create(10, bookingReq(1, "2024-06-01", "2024-06-02"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if booking.CardLast4 != "1234" {
		t.Fatalf("expected only last 4 digits, got %q", booking.CardLast4)
	}
	stored := store.bookings[0]
	if stored.CardLast4 != "1234" || stored.CardHolder != "Test Holder" {
		t.Fatalf("unexpected stored payment data: %+v", stored)
	}
}

func TestIsAvailable(t *testing.T) {
	svc, _ := newTestBookingService()

	// Zero bookings: any valid range is available.
	available, err := svc.IsAvailable(1, date(2024, 1, 1), date(2030, 12, 31))
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if !available {
		t.Fatalf("expected vehicle with no bookings to be available")
	}

	if _, err := svc.IsAvailable(1, date(2024, 6, 5), date(2024, 6, 1)); err == nil {
		t.Fatalf("expected error for inverted range")
	}

	if _, err := svc.Create(10, bookingReq(1, "2024-06-10", "2024-06-12")); err != nil {
		t.Fatalf("create: %v", err)
	}

	// Shared boundary day counts as overlap: ranges are inclusive.
	available, err = svc.IsAvailable(1, date(2024, 6, 12), date(2024, 6, 15))
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if available {
		t.Fatalf("expected boundary-day overlap to block availability")
	}

	available, err = svc.IsAvailable(1, date(2024, 6, 13), date(2024, 6, 15))
	if err != nil {
		t.Fatalf("IsAvailable: %v", err)
	}
	if !available {
		t.Fatalf("expected adjacent range to be available")
	}
}

func TestCancelAuthorizationAndState(t *testing.T) {
	svc, store := newTestBookingService()

	booking, err := svc.Create(10, bookingReq(1, "2024-06-01", "2024-06-03"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.Cancel(booking.ID, 99)
	if kind := apperrors.KindOf(err); kind != apperrors.KindAuthorization {
		t.Fatalf("non-owner cancel: expected authorization, got %v (%s)", err, kind)
	}

	if err := svc.Cancel(booking.ID, 10); err != nil {
		t.Fatalf("owner cancel: %v", err)
	}

	err = svc.Cancel(booking.ID, 10)
	if kind := apperrors.KindOf(err); kind != apperrors.KindInvalidState {
		t.Fatalf("cancel of cancelled booking: expected invalid_state, got %v (%s)", err, kind)
	}

	store.bookings[0].Status = db.StatusCompleted
	err = svc.Cancel(booking.ID, 10)
	if kind := apperrors.KindOf(err); kind != apperrors.KindInvalidState {
		t.Fatalf("cancel of completed booking: expected invalid_state, got %v (%s)", err, kind)
	}

	err = svc.Cancel(12345, 10)
	if kind := apperrors.KindOf(err); kind != apperrors.KindNotFound {
		t.Fatalf("cancel of missing booking: expected not_found, got %v (%s)", err, kind)
	}
}

func TestSetStatusAdminOverride(t *testing.T) {
	svc, store := newTestBookingService()

	booking, err := svc.Create(10, bookingReq(1, "2024-06-01", "2024-06-03"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err = svc.SetStatus(booking.ID, db.StatusConfirmed, "", 1, false)
	if kind := apperrors.KindOf(err); kind != apperrors.KindAuthorization {
		t.Fatalf("non-admin set status: expected authorization, got %v (%s)", err, kind)
	}

	_, err = svc.SetStatus(booking.ID, "archived", "", 1, true)
	if kind := apperrors.KindOf(err); kind != apperrors.KindValidation {
		t.Fatalf("unknown status: expected validation, got %v (%s)", err, kind)
	}

	updated, err := svc.SetStatus(booking.ID, db.StatusCompleted, "returned early", 1, true)
	if err != nil {
		t.Fatalf("admin set status: %v", err)
	}
	if updated.Status != db.StatusCompleted {
		t.Fatalf("status: got %s, want completed", updated.Status)
	}

	// The override may reopen a terminal booking.
	updated, err = svc.SetStatus(booking.ID, db.StatusPending, "reopened", 1, true)
	if err != nil {
		t.Fatalf("admin reopen: %v", err)
	}
	if updated.Status != db.StatusPending {
		t.Fatalf("status after reopen: got %s, want pending", updated.Status)
	}

	if len(store.events) != 2 {
		t.Fatalf("expected 2 audit events, got %d", len(store.events))
	}
	if store.events[0].OldStatus != db.StatusPending || store.events[0].NewStatus != db.StatusCompleted {
		t.Fatalf("unexpected first audit event: %+v", store.events[0])
	}
	if store.events[1].ActorID != 1 {
		t.Fatalf("audit event actor: got %d, want 1", store.events[1].ActorID)
	}
}
