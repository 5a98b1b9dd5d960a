package api

import (
	"encoding/json"
	"net/http"

	"vehiclebooking/internal/auth"
	"vehiclebooking/internal/db"
	"vehiclebooking/internal/entities"
	apperrors "vehiclebooking/internal/errors"
	"vehiclebooking/internal/service"
	"vehiclebooking/internal/utils"
)

type BookingHandler struct {
	Service *service.BookingService
}

func NewBookingHandler(svc *service.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CheckAvailability is public: it answers whether a vehicle is free for a
// date range, without reserving anything.
func (h *BookingHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req entities.AvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, apperrors.Validation("invalid availability request: %v", err))
		return
	}

	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		writeError(w, apperrors.Validation("invalid start_date: %s", req.StartDate))
		return
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, apperrors.Validation("invalid end_date: %s", req.EndDate))
		return
	}

	available, err := h.Service.IsAvailable(req.VehicleID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.AvailabilityResponse{
		VehicleID: req.VehicleID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Available: available,
	})
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req entities.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, apperrors.Validation("invalid booking request: %v", err))
		return
	}

	booking, err := h.Service.Create(claims.UserID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, service.BookingToResponse(booking))
}

// ListMine returns the authenticated user's bookings, newest first.
func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())
	if claims == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	bookings, err := h.Service.ListForUser(claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookingsToList(bookings))
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	booking, err := h.Service.GetForUser(id, claims.UserID, claims.IsAdmin)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, service.BookingToResponse(booking))
}

// Cancel cancels the authenticated user's own booking.
func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Service.Cancel(id, claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking cancelled"})
}

func bookingsToList(bookings []db.Booking) entities.BookingsList {
	list := entities.BookingsList{Total: len(bookings), Bookings: []entities.BookingResponse{}}
	for i := range bookings {
		list.Bookings = append(list.Bookings, service.BookingToResponse(&bookings[i]))
	}
	return list
}
