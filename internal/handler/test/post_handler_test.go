package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handlers "comitefd/internal/handler"
	"comitefd/internal/models"
)

func TestGetPostsHandler(t *testing.T) {
	t.Run("public listing returns published posts", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("List", mock.Anything, true).
			Return([]models.Post{{PostID: "p1", Title: "Bilan Annuel 2024", Slug: "bilan-annuel-2024"}}, nil)

		h := newTestHandlers()
		h.PostRepo = mockRepo

		req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
		rec := httptest.NewRecorder()

		h.GetPosts(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var posts []models.Post
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&posts))
		require.Len(t, posts, 1)
		assert.Equal(t, "bilan-annuel-2024", posts[0].Slug)
	})

	t.Run("drafts require a session", func(t *testing.T) {
		mockRepo := new(MockPostRepository)

		h := newTestHandlers()
		h.PostRepo = mockRepo

		req := httptest.NewRequest(http.MethodGet, "/api/posts?published=false", nil)
		rec := httptest.NewRecorder()

		h.GetPosts(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockRepo.AssertNotCalled(t, "List")
	})

	t.Run("admin sees drafts", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("List", mock.Anything, false).
			Return([]models.Post{{PostID: "p1"}, {PostID: "p2"}}, nil)

		h := newTestHandlers()
		h.PostRepo = mockRepo

		req := httptest.NewRequest(http.MethodGet, "/api/posts?published=false", nil).
			WithContext(adminContext())
		rec := httptest.NewRecorder()

		h.GetPosts(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetPostHandler(t *testing.T) {
	t.Run("unpublished post is hidden from visitors", func(t *testing.T) {
		mockRepo := new(MockPostRepository)
		mockRepo.On("GetBySlug", mock.Anything, "brouillon").
			Return(&models.Post{PostID: "p1", Slug: "brouillon", PublishedAt: nil}, nil)

		h := newTestHandlers()
		h.PostRepo = mockRepo

		req := mux.SetURLVars(
			httptest.NewRequest(http.MethodGet, "/api/posts/brouillon", nil),
			map[string]string{"slug": "brouillon"})
		rec := httptest.NewRecorder()

		h.GetPost(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp handlers.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Article non trouvé", resp.Error)
	})

	t.Run("published post is public", func(t *testing.T) {
		now := time.Now()
		mockRepo := new(MockPostRepository)
		mockRepo.On("GetBySlug", mock.Anything, "bilan-annuel-2024").
			Return(&models.Post{PostID: "p1", Slug: "bilan-annuel-2024", PublishedAt: &now}, nil)

		h := newTestHandlers()
		h.PostRepo = mockRepo

		req := mux.SetURLVars(
			httptest.NewRequest(http.MethodGet, "/api/posts/bilan-annuel-2024", nil),
			map[string]string{"slug": "bilan-annuel-2024"})
		rec := httptest.NewRecorder()

		h.GetPost(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCreatePostHandler(t *testing.T) {
	t.Run("anonymous mutation is rejected", func(t *testing.T) {
		mockService := new(MockPostService)

		h := newTestHandlers()
		h.PostService = mockService

		body, _ := json.Marshal(models.CreatePostRequest{Title: "Nouvel article"})
		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.CreatePost(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		mockService.AssertNotCalled(t, "CreatePost")
	})

	t.Run("blank title is rejected", func(t *testing.T) {
		mockService := new(MockPostService)

		h := newTestHandlers()
		h.PostService = mockService

		body, _ := json.Marshal(models.CreatePostRequest{Title: "   "})
		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body)).
			WithContext(adminContext())
		rec := httptest.NewRecorder()

		h.CreatePost(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp handlers.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "title requis", resp.Error)
		mockService.AssertNotCalled(t, "CreatePost")
	})

	t.Run("valid request creates the post", func(t *testing.T) {
		mockService := new(MockPostService)
		mockService.On("CreatePost", mock.Anything, mock.MatchedBy(func(req models.CreatePostRequest) bool {
			return req.Title == "Nouvel article"
		})).Return(&models.Post{PostID: "p1", Title: "Nouvel article", Slug: "nouvel-article"}, nil)

		h := newTestHandlers()
		h.PostService = mockService

		body, _ := json.Marshal(models.CreatePostRequest{Title: "Nouvel article", Content: "<p>Bonjour</p>"})
		req := httptest.NewRequest(http.MethodPost, "/api/posts", bytes.NewReader(body)).
			WithContext(adminContext())
		rec := httptest.NewRecorder()

		h.CreatePost(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var post models.Post
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&post))
		assert.Equal(t, "nouvel-article", post.Slug)
		mockService.AssertExpectations(t)
	})
}

func TestDeletePostHandler(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		h := newTestHandlers()
		h.PostService = new(MockPostService)

		req := httptest.NewRequest(http.MethodDelete, "/api/posts", nil).
			WithContext(adminContext())
		rec := httptest.NewRecorder()

		h.DeletePost(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("deletes by query id", func(t *testing.T) {
		mockService := new(MockPostService)
		mockService.On("DeletePost", mock.Anything, "p1").Return(nil)

		h := newTestHandlers()
		h.PostService = mockService

		req := httptest.NewRequest(http.MethodDelete, "/api/posts?id=p1", nil).
			WithContext(adminContext())
		rec := httptest.NewRecorder()

		h.DeletePost(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		mockService.AssertExpectations(t)
	})
}
