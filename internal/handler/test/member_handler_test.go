package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handlers "comitefd/internal/handler"
	"comitefd/internal/models"
)

func TestCreateMemberHandler(t *testing.T) {
	t.Run("anonymous mutation is rejected", func(t *testing.T) {
		mockService := new(MockMemberService)

		h := newTestHandlers()
		h.MemberService = mockService

		body, _ := json.Marshal(models.CreateMemberRequest{Name: "A. Dupont", Title: "Présidente"})
		req := httptest.NewRequest(http.MethodPost, "/api/committee", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.CreateMember(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockService.AssertNotCalled(t, "CreateMember")
	})

	t.Run("name and title are required", func(t *testing.T) {
		h := newTestHandlers()
		h.MemberService = new(MockMemberService)

		body, _ := json.Marshal(models.CreateMemberRequest{Name: "  ", Title: "Présidente"})
		req := httptest.NewRequest(http.MethodPost, "/api/committee", bytes.NewReader(body)).
			WithContext(adminContext())
		rec := httptest.NewRecorder()

		h.CreateMember(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp handlers.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Nom et titre sont requis", resp.Error)
	})

	t.Run("valid request creates the member", func(t *testing.T) {
		mockService := new(MockMemberService)
		mockService.On("CreateMember", mock.Anything, mock.MatchedBy(func(req models.CreateMemberRequest) bool {
			return req.Name == "A. Dupont"
		})).Return(&models.CommitteeMember{MemberID: "m1", Name: "A. Dupont", Title: "Présidente", Order: 0}, nil)

		h := newTestHandlers()
		h.MemberService = mockService

		body, _ := json.Marshal(models.CreateMemberRequest{Name: "A. Dupont", Title: "Présidente"})
		req := httptest.NewRequest(http.MethodPost, "/api/committee", bytes.NewReader(body)).
			WithContext(adminContext())
		rec := httptest.NewRecorder()

		h.CreateMember(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestUpdateMemberHandler(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		h := newTestHandlers()
		h.MemberService = new(MockMemberService)

		req := httptest.NewRequest(http.MethodPatch, "/api/committee", bytes.NewReader([]byte(`{"name":"B. Martin"}`))).
			WithContext(adminContext())
		rec := httptest.NewRecorder()

		h.UpdateMember(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("partial body only carries sent fields", func(t *testing.T) {
		mockService := new(MockMemberService)
		mockService.On("UpdateMember", mock.Anything, mock.MatchedBy(func(req models.UpdateMemberRequest) bool {
			return req.ID == "m1" && req.Name.Set && req.Name.Valid && !req.Title.Set
		})).Return(&models.CommitteeMember{MemberID: "m1", Name: "B. Martin", Title: "Trésorier"}, nil)

		h := newTestHandlers()
		h.MemberService = mockService

		req := httptest.NewRequest(http.MethodPatch, "/api/committee",
			bytes.NewReader([]byte(`{"id":"m1","name":"B. Martin"}`))).
			WithContext(adminContext())
		rec := httptest.NewRecorder()

		h.UpdateMember(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})
}

func TestGetMembersHandler(t *testing.T) {
	mockRepo := new(MockMemberRepository)
	mockRepo.On("List", mock.Anything).
		Return([]models.CommitteeMember{{MemberID: "m1", Name: "A. Dupont"}}, nil)

	h := newTestHandlers()
	h.MemberRepo = mockRepo

	req := httptest.NewRequest(http.MethodGet, "/api/committee", nil)
	rec := httptest.NewRecorder()

	h.GetMembers(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockRepo.AssertExpectations(t)
}
