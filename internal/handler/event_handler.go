package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"comitefd/internal/models"
)

func (h *Handlers) GetEvents(w http.ResponseWriter, r *http.Request) {
	var from, to *time.Time

	if v := r.URL.Query().Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			WriteError(w, "Paramètre from invalide", http.StatusBadRequest)
			return
		}
		from = &t
	}
	if v := r.URL.Query().Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			WriteError(w, "Paramètre to invalide", http.StatusBadRequest)
			return
		}
		to = &t
	}

	events, err := h.EventRepo.List(r.Context(), from, to)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, events, http.StatusOK)
}

func (h *Handlers) CreateEvent(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" || req.StartDate.IsZero() {
		WriteError(w, "title et startDate requis", http.StatusBadRequest)
		return
	}

	event, err := h.EventService.CreateEvent(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, event, http.StatusCreated)
}

func (h *Handlers) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteError(w, "id requis", http.StatusBadRequest)
		return
	}

	event, err := h.EventService.UpdateEvent(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, event, http.StatusOK)
}

func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, "id requis", http.StatusBadRequest)
		return
	}

	if err := h.EventService.DeleteEvent(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, OkResponse{Ok: true}, http.StatusOK)
}
