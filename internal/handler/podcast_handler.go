package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"comitefd/internal/models"
)

func (h *Handlers) GetEpisodes(w http.ResponseWriter, r *http.Request) {
	episodes, err := h.PodcastRepo.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, episodes, http.StatusOK)
}

func (h *Handlers) CreateEpisode(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.CreateEpisodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.YoutubeURL) == "" {
		WriteError(w, "title et youtubeUrl requis", http.StatusBadRequest)
		return
	}

	episode, err := h.PodcastService.CreateEpisode(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, episode, http.StatusCreated)
}

func (h *Handlers) UpdateEpisode(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.UpdateEpisodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteError(w, "id requis", http.StatusBadRequest)
		return
	}

	episode, err := h.PodcastService.UpdateEpisode(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, episode, http.StatusOK)
}

func (h *Handlers) DeleteEpisode(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, "id requis", http.StatusBadRequest)
		return
	}

	if err := h.PodcastService.DeleteEpisode(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, OkResponse{Ok: true}, http.StatusOK)
}
