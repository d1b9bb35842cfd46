package handlers

import (
	"errors"
	"net/http"
	"strings"

	"avatar-stream-gateway/internal/heygen"
	"avatar-stream-gateway/internal/models"

	"github.com/gin-gonic/gin"
)

var errEmptyKnowledgeBaseID = errors.New("knowledge base id cannot be empty")

func (h *Handlers) CreateKnowledgeBase(c *gin.Context) {
	var req models.CreateKnowledgeBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondInvalid(c, err)
		return
	}
	if err := req.Normalize(); err != nil {
		h.respondInvalid(c, err)
		return
	}

	payload, err := h.Client.CreateKnowledgeBase(c.Request.Context(), heygen.KnowledgeBaseParams{
		Name:        req.Name,
		Opening:     req.Opening,
		Prompt:      req.Prompt,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(c, "create_knowledge_base", err)
		return
	}

	resp, err := models.CreateKnowledgeBaseFromPayload(payload)
	if err != nil {
		h.respondError(c, "create_knowledge_base", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handlers) GetKnowledgeBase(c *gin.Context) {
	knowledgeBaseID, ok := knowledgeBaseIDParam(c)
	if !ok {
		h.respondInvalid(c, errEmptyKnowledgeBaseID)
		return
	}

	payload, err := h.Client.GetKnowledgeBase(c.Request.Context(), knowledgeBaseID)
	if err != nil {
		h.respondError(c, "get_knowledge_base", err)
		return
	}

	resp, err := models.KnowledgeBaseFromPayload(payload)
	if err != nil {
		h.respondError(c, "get_knowledge_base", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) ListKnowledgeBases(c *gin.Context) {
	payload, err := h.Client.ListKnowledgeBases(c.Request.Context())
	if err != nil {
		h.respondError(c, "list_knowledge_bases", err)
		return
	}

	resp, err := models.ListKnowledgeBasesFromPayload(payload)
	if err != nil {
		h.respondError(c, "list_knowledge_bases", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) UpdateKnowledgeBase(c *gin.Context) {
	knowledgeBaseID, ok := knowledgeBaseIDParam(c)
	if !ok {
		h.respondInvalid(c, errEmptyKnowledgeBaseID)
		return
	}

	var req models.UpdateKnowledgeBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondInvalid(c, err)
		return
	}
	if err := req.Normalize(); err != nil {
		h.respondInvalid(c, err)
		return
	}

	payload, err := h.Client.UpdateKnowledgeBase(c.Request.Context(), knowledgeBaseID, heygen.KnowledgeBaseParams{
		Name:        req.Name,
		Opening:     req.Opening,
		Prompt:      req.Prompt,
		Description: req.Description,
	})
	if err != nil {
		h.respondError(c, "update_knowledge_base", err)
		return
	}

	resp, err := models.UpdateKnowledgeBaseFromPayload(payload, knowledgeBaseID)
	if err != nil {
		h.respondError(c, "update_knowledge_base", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) DeleteKnowledgeBase(c *gin.Context) {
	knowledgeBaseID, ok := knowledgeBaseIDParam(c)
	if !ok {
		h.respondInvalid(c, errEmptyKnowledgeBaseID)
		return
	}

	payload, err := h.Client.DeleteKnowledgeBase(c.Request.Context(), knowledgeBaseID)
	if err != nil {
		h.respondError(c, "delete_knowledge_base", err)
		return
	}
	c.JSON(http.StatusOK, models.DeleteKnowledgeBaseFromPayload(payload, knowledgeBaseID))
}

func knowledgeBaseIDParam(c *gin.Context) (string, bool) {
	knowledgeBaseID := strings.TrimSpace(c.Param("id"))
	return knowledgeBaseID, knowledgeBaseID != ""
}
