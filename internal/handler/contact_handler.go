package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"comitefd/internal/models"
	"comitefd/internal/service"
)

type ContactResponse struct {
	Ok bool   `json:"ok"`
	ID string `json:"id"`
}

// Contact is the only unauthenticated mutation: it forwards a visitor
// message to the committee inbox.
func (h *Handlers) Contact(w http.ResponseWriter, r *http.Request) {
	var req models.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil || strings.TrimSpace(req.Message) == "" {
		WriteError(w, "Courriel et message sont requis", http.StatusBadRequest)
		return
	}

	id, err := h.ContactService.Send(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			WriteError(w, "Envoi d'email non configuré", http.StatusServiceUnavailable)
			return
		}
		WriteError(w, "Une erreur est survenue lors de l'envoi", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, ContactResponse{Ok: true, ID: id}, http.StatusOK)
}
