package handlers

import (
	"net/http"

	"avatar-stream-gateway/internal/heygen"
	"avatar-stream-gateway/internal/models"

	"github.com/gin-gonic/gin"
)

// SendTask submits a speech task against an active session. The text is
// forwarded trimmed; mode and type default to sync/repeat.
func (h *Handlers) SendTask(c *gin.Context) {
	var req models.SendTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondInvalid(c, err)
		return
	}
	if err := req.Normalize(); err != nil {
		h.respondInvalid(c, err)
		return
	}

	payload, err := h.Client.SendTask(c.Request.Context(), heygen.SendTaskParams{
		SessionID: req.SessionID,
		Text:      req.Text,
		TaskMode:  req.TaskMode,
		TaskType:  req.TaskType,
	})
	if err != nil {
		h.respondError(c, "send_task", err)
		return
	}

	resp, err := models.TaskFromPayload(payload)
	if err != nil {
		h.respondError(c, "send_task", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
