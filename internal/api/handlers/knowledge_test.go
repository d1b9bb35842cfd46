package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"avatar-stream-gateway/internal/heygen"
	"avatar-stream-gateway/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateKnowledgeBase(t *testing.T) {
	t.Run("Success_Returns201", func(t *testing.T) {
		h, mockAPI := newTestHandlers()
		mockAPI.On("CreateKnowledgeBase", mock.Anything, heygen.KnowledgeBaseParams{Name: "support-faq"}).
			Return(heygen.Payload{"data": map[string]any{
				"knowledge_base_id": "kb-1",
				"name":              "support-faq",
				"status":            "active",
				"created_at":        float64(1700000000),
			}}, nil)

		router := setupTestRouter()
		router.POST("/knowledge-bases", h.CreateKnowledgeBase)

		req, _ := http.NewRequest("POST", "/knowledge-bases", jsonBody(t, gin.H{"name": " support-faq "}))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusCreated, resp.Code)

		var body models.CreateKnowledgeBaseResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, "kb-1", body.KnowledgeBaseID)
		assert.Equal(t, models.KnowledgeBaseStatusActive, body.Status)
		mockAPI.AssertExpectations(t)
	})

	t.Run("MissingName_Returns422", func(t *testing.T) {
		h, mockAPI := newTestHandlers()

		router := setupTestRouter()
		router.POST("/knowledge-bases", h.CreateKnowledgeBase)

		req, _ := http.NewRequest("POST", "/knowledge-bases", jsonBody(t, gin.H{"opening": "hello"}))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		mockAPI.AssertNotCalled(t, "CreateKnowledgeBase")
	})
}

func TestGetKnowledgeBase(t *testing.T) {
	t.Run("MalformedDocumentDropped", func(t *testing.T) {
		h, mockAPI := newTestHandlers()
		mockAPI.On("GetKnowledgeBase", mock.Anything, "kb-1").
			Return(heygen.Payload{"data": map[string]any{
				"knowledge_base_id": "kb-1",
				"name":              "support-faq",
				"documents": []any{
					map[string]any{"document_id": "doc-1", "created_at": float64(100), "status": "processed"},
					map[string]any{"name": "orphan"},
				},
			}}, nil)

		router := setupTestRouter()
		router.GET("/knowledge-bases/:id", h.GetKnowledgeBase)

		req, _ := http.NewRequest("GET", "/knowledge-bases/kb-1", nil)
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)

		var body models.KnowledgeBaseInfo
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		require.Len(t, body.Documents, 1)
		assert.Equal(t, "doc-1", body.Documents[0].DocumentID)
		assert.Equal(t, models.DocumentStatusProcessed, body.Documents[0].Status)
		assert.Equal(t, 1, body.DocumentCount)
		mockAPI.AssertExpectations(t)
	})

	t.Run("NotFound_Returns404", func(t *testing.T) {
		h, mockAPI := newTestHandlers()
		mockAPI.On("GetKnowledgeBase", mock.Anything, "missing").
			Return(nil, &heygen.Error{Kind: heygen.KindNotFound, StatusCode: 404, Message: "knowledge base not found"})

		router := setupTestRouter()
		router.GET("/knowledge-bases/:id", h.GetKnowledgeBase)

		req, _ := http.NewRequest("GET", "/knowledge-bases/missing", nil)
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
		mockAPI.AssertExpectations(t)
	})
}

func TestListKnowledgeBases(t *testing.T) {
	h, mockAPI := newTestHandlers()
	mockAPI.On("ListKnowledgeBases", mock.Anything).
		Return(heygen.Payload{"data": map[string]any{
			"knowledge_bases": []any{
				map[string]any{"knowledge_base_id": "kb-1", "name": "a"},
				map[string]any{"knowledge_base_id": "kb-2", "name": "b"},
			},
		}}, nil)

	router := setupTestRouter()
	router.GET("/knowledge-bases", h.ListKnowledgeBases)

	req, _ := http.NewRequest("GET", "/knowledge-bases", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body models.ListKnowledgeBasesResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Len(t, body.KnowledgeBases, 2)
	assert.Equal(t, int64(2), body.Total)
	mockAPI.AssertExpectations(t)
}

func TestUpdateKnowledgeBase(t *testing.T) {
	t.Run("IDFallsBackToRequest", func(t *testing.T) {
		h, mockAPI := newTestHandlers()
		mockAPI.On("UpdateKnowledgeBase", mock.Anything, "kb-1", heygen.KnowledgeBaseParams{Name: "renamed"}).
			Return(heygen.Payload{"data": map[string]any{"name": "renamed", "updated_at": float64(1700000500)}}, nil)

		router := setupTestRouter()
		router.POST("/knowledge-bases/:id", h.UpdateKnowledgeBase)

		req, _ := http.NewRequest("POST", "/knowledge-bases/kb-1", jsonBody(t, gin.H{"name": "renamed"}))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)

		var body models.UpdateKnowledgeBaseResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, "kb-1", body.KnowledgeBaseID)
		assert.Equal(t, int64(1700000500), body.UpdatedAt)
		mockAPI.AssertExpectations(t)
	})

	t.Run("AllFieldsEmpty_Returns422", func(t *testing.T) {
		h, mockAPI := newTestHandlers()

		router := setupTestRouter()
		router.POST("/knowledge-bases/:id", h.UpdateKnowledgeBase)

		req, _ := http.NewRequest("POST", "/knowledge-bases/kb-1", jsonBody(t, gin.H{"name": "   "}))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()

		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		mockAPI.AssertNotCalled(t, "UpdateKnowledgeBase")
	})
}

func TestDeleteKnowledgeBase(t *testing.T) {
	h, mockAPI := newTestHandlers()
	mockAPI.On("DeleteKnowledgeBase", mock.Anything, "kb-1").Return(heygen.Payload{}, nil)

	router := setupTestRouter()
	router.DELETE("/knowledge-bases/:id", h.DeleteKnowledgeBase)

	req, _ := http.NewRequest("DELETE", "/knowledge-bases/kb-1", nil)
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var body models.DeleteKnowledgeBaseResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "kb-1", body.KnowledgeBaseID)
	mockAPI.AssertExpectations(t)
}
