package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"vehiclebooking/internal/db"
	"vehiclebooking/internal/entities"
	apperrors "vehiclebooking/internal/errors"
	"vehiclebooking/internal/service"
)

const featuredLimit = 3

type VehicleHandler struct {
	Service *service.VehicleService
}

func NewVehicleHandler(svc *service.VehicleService) *VehicleHandler {
	return &VehicleHandler{Service: svc}
}

// Search lists flagged-available vehicles, filtered by the optional query
// parameters vehicle_type, max_price, min_capacity, start_date and end_date.
func (h *VehicleHandler) Search(w http.ResponseWriter, r *http.Request) {
	req, err := searchRequestFromQuery(r)
	if err != nil {
		writeError(w, err)
		return
	}
	vehicles, err := h.Service.Search(*req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehiclesToResponse(vehicles))
}

func (h *VehicleHandler) Featured(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.Service.Featured(featuredLimit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehiclesToResponse(vehicles))
}

func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	vehicle, err := h.Service.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, vehicleToResponse(vehicle))
}

func searchRequestFromQuery(r *http.Request) (*entities.SearchRequest, error) {
	q := r.URL.Query()
	req := entities.SearchRequest{
		VehicleType: q.Get("vehicle_type"),
		StartDate:   q.Get("start_date"),
		EndDate:     q.Get("end_date"),
	}
	if v := q.Get("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, apperrors.Validation("invalid max_price: %s", v)
		}
		req.MaxPrice = &price
	}
	if v := q.Get("min_capacity"); v != "" {
		capacity, err := strconv.Atoi(v)
		if err != nil {
			return nil, apperrors.Validation("invalid min_capacity: %s", v)
		}
		req.MinCapacity = &capacity
	}
	return &req, nil
}

func pathID(r *http.Request, name string) (int, error) {
	idStr := mux.Vars(r)[name]
	id, err := strconv.Atoi(idStr)
	if err != nil || id < 1 {
		return 0, apperrors.Validation("invalid %s: %s", name, idStr)
	}
	return id, nil
}

func vehicleToResponse(v *db.Vehicle) entities.VehicleResponse {
	return entities.VehicleResponse{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
		VehicleType:  v.VehicleType,
		Capacity:     v.Capacity,
		Color:        v.Color,
		DailyRate:    v.DailyRate,
		IsAvailable:  v.IsAvailable,
		Description:  v.Description,
		Features:     v.Features,
		CreatedAt:    v.CreatedAt,
	}
}

func vehiclesToResponse(vehicles []db.Vehicle) []entities.VehicleResponse {
	out := make([]entities.VehicleResponse, 0, len(vehicles))
	for i := range vehicles {
		out = append(out, vehicleToResponse(&vehicles[i]))
	}
	return out
}
