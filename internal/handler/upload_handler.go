package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"comitefd/internal/service"
)

type UploadResponse struct {
	URL string `json:"url"`
}

func (h *Handlers) Upload(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, fmt.Sprintf("Fichier trop volumineux (max. %d Mo)",
			h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		WriteError(w, "Fichier requis (champ: file)", http.StatusBadRequest)
		return
	}
	defer file.Close()

	folder := r.FormValue("folder")

	url, err := h.UploadService.Upload(r.Context(), folder, header.Filename, file, header.Size)
	if err != nil {
		// a missing provider secret is a deployment problem, surfaced
		// as 500 like the rest of the upload failures
		if errors.Is(err, service.ErrNotConfigured) {
			WriteError(w, "Hébergement d'images non configuré", http.StatusInternalServerError)
			return
		}
		WriteError(w, "Échec de l'upload", http.StatusInternalServerError)
		return
	}

	WriteJSON(w, UploadResponse{URL: url}, http.StatusOK)
}
