package api

import (
	"encoding/json"
	"net/http"

	"vehiclebooking/internal/auth"
	"vehiclebooking/internal/entities"
	apperrors "vehiclebooking/internal/errors"
	"vehiclebooking/internal/service"
)

type AdminHandler struct {
	Vehicles *service.VehicleService
	Bookings *service.BookingService
	Reports  *service.ReportService
}

func NewAdminHandler(vehicles *service.VehicleService, bookings *service.BookingService, reports *service.ReportService) *AdminHandler {
	return &AdminHandler{Vehicles: vehicles, Bookings: bookings, Reports: reports}
}

func (h *AdminHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Vehicles.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehiclesToResponse(vehicles))
}

func (h *AdminHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req entities.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, apperrors.Validation("invalid vehicle: %v", err))
		return
	}

	vehicle, err := h.Vehicles.Create(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, vehicleToResponse(vehicle))
}

func (h *AdminHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req entities.VehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, apperrors.Validation("invalid vehicle: %v", err))
		return
	}

	vehicle, err := h.Vehicles.Update(id, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicleToResponse(vehicle))
}

func (h *AdminHandler) DeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	if err := h.Vehicles.Delete(id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Vehicle deleted"})
}

// ListBookings returns all bookings, optionally filtered by ?status=.
func (h *AdminHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	bookings, err := h.Bookings.List(status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookingsToList(bookings))
}

// SetBookingStatus is the admin override: any status can be forced from any
// prior state, and every change lands in the audit trail.
func (h *AdminHandler) SetBookingStatus(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	var req entities.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, apperrors.Validation("invalid status update: %v", err))
		return
	}

	booking, err := h.Bookings.SetStatus(id, req.Status, req.Notes, claims.UserID, claims.IsAdmin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, service.BookingToResponse(booking))
}

func (h *AdminHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.Reports.Dashboard()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dashboard)
}

func (h *AdminHandler) MonthlyReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.Reports.MonthlyReport()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
