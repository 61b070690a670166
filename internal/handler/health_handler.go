package handlers

import (
	"net/http"
)

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, "database unreachable", http.StatusServiceUnavailable)
		return
	}

	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
}
