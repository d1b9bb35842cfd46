package handlers

import (
	"errors"
	"io"
	"net/http"

	"avatar-stream-gateway/internal/heygen"
	"avatar-stream-gateway/internal/models"

	"github.com/gin-gonic/gin"
)

var errEmptySessionID = errors.New("session_id cannot be empty")

func (h *Handlers) NewSession(c *gin.Context) {
	var req models.NewSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondInvalid(c, err)
		return
	}
	if err := req.Normalize(); err != nil {
		h.respondInvalid(c, err)
		return
	}

	payload, err := h.Client.NewSession(c.Request.Context(), heygen.NewSessionParams{
		AvatarID:        req.AvatarID,
		Quality:         req.Quality,
		VoiceID:         req.VoiceID,
		VideoEncoding:   req.VideoEncoding,
		KnowledgeBaseID: req.KnowledgeBaseID,
	})
	if err != nil {
		h.respondError(c, "new_session", err)
		return
	}

	resp, err := models.NewSessionFromPayload(payload)
	if err != nil {
		h.respondError(c, "new_session", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handlers) StartSession(c *gin.Context) {
	var req models.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondInvalid(c, err)
		return
	}
	if err := req.Normalize(); err != nil {
		h.respondInvalid(c, err)
		return
	}

	payload, err := h.Client.StartSession(c.Request.Context(), req.SessionID)
	if err != nil {
		h.respondError(c, "start_session", err)
		return
	}
	c.JSON(http.StatusOK, models.StartSessionFromPayload(payload))
}

func (h *Handlers) CloseSession(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		h.respondInvalid(c, errEmptySessionID)
		return
	}

	payload, err := h.Client.CloseSession(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, "close_session", err)
		return
	}
	c.JSON(http.StatusOK, models.CloseSessionFromPayload(payload))
}

func (h *Handlers) KeepAlive(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		h.respondInvalid(c, errEmptySessionID)
		return
	}

	payload, err := h.Client.KeepAlive(c.Request.Context(), sessionID)
	if err != nil {
		h.respondError(c, "keep_alive", err)
		return
	}
	c.JSON(http.StatusOK, models.KeepAliveFromPayload(payload))
}

// InterruptTask cuts off the avatar's current speech. Interrupting a
// session whose avatar is not speaking is an upstream no-op and still
// reports success.
func (h *Handlers) InterruptTask(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		h.respondInvalid(c, errEmptySessionID)
		return
	}

	if _, err := h.Client.InterruptTask(c.Request.Context(), sessionID); err != nil {
		h.respondError(c, "interrupt_task", err)
		return
	}
	c.JSON(http.StatusOK, models.InterruptTaskResponse{
		Success: true,
		Message: "Interrupt signal sent successfully",
	})
}

func (h *Handlers) CreateSessionToken(c *gin.Context) {
	sessionID, ok := sessionIDParam(c)
	if !ok {
		h.respondInvalid(c, errEmptySessionID)
		return
	}

	// The body is optional; an absent one means the default expiry.
	var req models.CreateTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.respondInvalid(c, err)
		return
	}

	payload, err := h.Client.CreateSessionToken(c.Request.Context(), sessionID, req.ResolveExpiry())
	if err != nil {
		h.respondError(c, "create_session_token", err)
		return
	}

	resp, err := models.TokenFromPayload(payload)
	if err != nil {
		h.respondError(c, "create_session_token", err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handlers) ListActiveSessions(c *gin.Context) {
	payload, err := h.Client.ListActiveSessions(c.Request.Context())
	if err != nil {
		h.respondError(c, "list_active_sessions", err)
		return
	}

	resp, err := models.ListActiveSessionsFromPayload(payload)
	if err != nil {
		h.respondError(c, "list_active_sessions", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) ListSessionHistory(c *gin.Context) {
	var query models.SessionHistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.respondInvalid(c, err)
		return
	}

	payload, err := h.Client.ListSessionHistory(c.Request.Context(), heygen.SessionHistoryParams{
		StartTime: query.StartTime,
		EndTime:   query.EndTime,
		Limit:     query.Limit,
		Offset:    query.Offset,
	})
	if err != nil {
		h.respondError(c, "list_session_history", err)
		return
	}

	c.JSON(http.StatusOK, models.ListSessionHistoryFromPayload(payload, query.Limit, query.Offset))
}
