package handlers

import (
	"encoding/json"
	"net/http"
)

type UpsertSettingRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

func (h *Handlers) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.SettingsService.GetSettings(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, settings, http.StatusOK)
}

func (h *Handlers) UpsertSetting(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req UpsertSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if req.Key == "" {
		WriteError(w, "key requis", http.StatusBadRequest)
		return
	}

	if err := h.SettingsService.UpsertSetting(r.Context(), req.Key, req.Value); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, OkResponse{Ok: true}, http.StatusOK)
}
