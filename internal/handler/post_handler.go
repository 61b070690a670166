package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"comitefd/internal/models"
	"comitefd/internal/repository"
)

// GetPosts lists published posts for everyone. ?published=false asks
// for drafts too and requires a session.
func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	publishedOnly := r.URL.Query().Get("published") != "false"
	if !publishedOnly && !h.isAuthenticated(r) {
		WriteError(w, "Non autorisé", http.StatusUnauthorized)
		return
	}

	posts, err := h.PostRepo.List(r.Context(), publishedOnly)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, posts, http.StatusOK)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	post, err := h.PostRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			WriteError(w, "Article non trouvé", http.StatusNotFound)
			return
		}
		writeRepoError(w, err)
		return
	}

	// drafts are only visible to the admin
	if post.PublishedAt == nil && !h.isAuthenticated(r) {
		WriteError(w, "Article non trouvé", http.StatusNotFound)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		WriteError(w, "title requis", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteError(w, "id requis", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, "id requis", http.StatusBadRequest)
		return
	}

	if err := h.PostService.DeletePost(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, OkResponse{Ok: true}, http.StatusOK)
}
