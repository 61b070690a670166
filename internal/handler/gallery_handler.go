package handlers

import (
	"encoding/json"
	"net/http"

	"comitefd/internal/models"
	"comitefd/internal/repository"
	"comitefd/internal/service"
)

// The carousel and sponsor handlers share one implementation; only the
// backing table and the reorder route differ.

func (h *Handlers) GetCarousel(w http.ResponseWriter, r *http.Request) {
	h.listGallery(w, r, h.CarouselRepo)
}

func (h *Handlers) CreateCarouselImage(w http.ResponseWriter, r *http.Request) {
	h.createGalleryImage(w, r, h.CarouselService)
}

func (h *Handlers) UpdateCarouselImage(w http.ResponseWriter, r *http.Request) {
	h.updateGalleryImage(w, r, h.CarouselService)
}

func (h *Handlers) DeleteCarouselImage(w http.ResponseWriter, r *http.Request) {
	h.deleteGalleryImage(w, r, h.CarouselService)
}

func (h *Handlers) GetSponsors(w http.ResponseWriter, r *http.Request) {
	h.listGallery(w, r, h.SponsorRepo)
}

func (h *Handlers) CreateSponsorImage(w http.ResponseWriter, r *http.Request) {
	h.createGalleryImage(w, r, h.SponsorService)
}

func (h *Handlers) UpdateSponsorImage(w http.ResponseWriter, r *http.Request) {
	h.updateGalleryImage(w, r, h.SponsorService)
}

func (h *Handlers) DeleteSponsorImage(w http.ResponseWriter, r *http.Request) {
	h.deleteGalleryImage(w, r, h.SponsorService)
}

// ReorderSponsors applies a bulk [{id, order}] update in one
// transaction so a drag-and-drop reorder is all-or-nothing.
func (h *Handlers) ReorderSponsors(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var entries []models.OrderEntry
	if err := json.NewDecoder(r.Body).Decode(&entries); err != nil {
		WriteError(w, "Tableau { id, order } requis", http.StatusBadRequest)
		return
	}

	if err := h.SponsorService.Reorder(r.Context(), entries); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, OkResponse{Ok: true}, http.StatusOK)
}

func (h *Handlers) listGallery(w http.ResponseWriter, r *http.Request, repo repository.GalleryRepository) {
	images, err := repo.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, images, http.StatusOK)
}

func (h *Handlers) createGalleryImage(w http.ResponseWriter, r *http.Request, svc service.GalleryService) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.CreateGalleryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if req.ImageURL == "" {
		WriteError(w, "imageUrl requis", http.StatusBadRequest)
		return
	}

	image, err := svc.CreateImage(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, image, http.StatusCreated)
}

func (h *Handlers) updateGalleryImage(w http.ResponseWriter, r *http.Request, svc service.GalleryService) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.UpdateGalleryImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteError(w, "id requis", http.StatusBadRequest)
		return
	}

	image, err := svc.UpdateImage(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, image, http.StatusOK)
}

func (h *Handlers) deleteGalleryImage(w http.ResponseWriter, r *http.Request, svc service.GalleryService) {
	if !h.requireAdmin(w, r) {
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, "id requis", http.StatusBadRequest)
		return
	}

	if err := svc.DeleteImage(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, OkResponse{Ok: true}, http.StatusOK)
}
