package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"comitefd/internal/repository"
	"comitefd/internal/service"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type OkResponse struct {
	Ok bool `json:"ok"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

func WriteJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// writeRepoError maps the error taxonomy onto HTTP statuses. Every
// read-path database failure is a plain 500; no endpoint degrades to an
// empty list.
func writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		WriteError(w, "Introuvable", http.StatusNotFound)
	case errors.Is(err, service.ErrNotConfigured):
		WriteError(w, "Service non configuré", http.StatusServiceUnavailable)
	default:
		WriteError(w, err.Error(), http.StatusInternalServerError)
	}
}
