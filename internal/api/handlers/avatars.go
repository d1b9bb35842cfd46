package handlers

import (
	"net/http"

	"avatar-stream-gateway/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handlers) ListAvatars(c *gin.Context) {
	payload, err := h.Client.ListAvatars(c.Request.Context())
	if err != nil {
		h.respondError(c, "list_avatars", err)
		return
	}

	resp, err := models.ListAvatarsFromPayload(payload)
	if err != nil {
		h.respondError(c, "list_avatars", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
