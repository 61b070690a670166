package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"comitefd/internal/models"
)

func (h *Handlers) GetMembers(w http.ResponseWriter, r *http.Request) {
	members, err := h.MemberRepo.List(r.Context())
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, members, http.StatusOK)
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.CreateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Title) == "" {
		WriteError(w, "Nom et titre sont requis", http.StatusBadRequest)
		return
	}

	member, err := h.MemberService.CreateMember(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, member, http.StatusCreated)
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	var req models.UpdateMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Corps de requête invalide", http.StatusBadRequest)
		return
	}

	if req.ID == "" {
		WriteError(w, "id requis", http.StatusBadRequest)
		return
	}

	member, err := h.MemberService.UpdateMember(r.Context(), req)
	if err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, member, http.StatusOK)
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	id := r.URL.Query().Get("id")
	if id == "" {
		WriteError(w, "id requis", http.StatusBadRequest)
		return
	}

	if err := h.MemberService.DeleteMember(r.Context(), id); err != nil {
		writeRepoError(w, err)
		return
	}

	WriteJSON(w, OkResponse{Ok: true}, http.StatusOK)
}
