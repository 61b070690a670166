package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"comitefd/internal/models"
	"comitefd/internal/service"
)

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	Admin models.Admin `json:"admin"`
}

// Register is the one-time bootstrap: it creates the first admin and
// refuses as soon as any admin exists. Later accounts go through the
// seed tool.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Email et mot de passe (8 caractères min) requis", http.StatusBadRequest)
		return
	}

	_, err := h.AuthService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrRegistrationClosed) {
			WriteError(w, "Un admin existe déjà", http.StatusBadRequest)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, OkResponse{Ok: true}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Email et mot de passe requis", http.StatusBadRequest)
		return
	}

	admin, token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, "Identifiants invalides", http.StatusUnauthorized)
			return
		}
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, LoginResponse{Token: token, Admin: *admin}, http.StatusOK)
}
