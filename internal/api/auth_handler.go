package api

import (
	"encoding/json"
	"net/http"

	"vehiclebooking/internal/db"
	"vehiclebooking/internal/entities"
	apperrors "vehiclebooking/internal/errors"
	"vehiclebooking/internal/service"
)

type AuthHandler struct {
	Service *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req entities.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, apperrors.Validation("invalid registration: %v", err))
		return
	}

	user, err := h.Service.Register(req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, userToResponse(user))
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req entities.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.Validation("invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		writeError(w, apperrors.Validation("invalid login: %v", err))
		return
	}

	token, user, err := h.Service.Login(req)
	if err != nil {
		// Do not leak whether the email exists.
		if apperrors.KindOf(err) == apperrors.KindAuthorization {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			return
		}
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entities.LoginResponse{Token: token, User: userToResponse(user)})
}

func userToResponse(u *db.User) entities.UserResponse {
	return entities.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt,
	}
}
