package handlers

import (
	"net/http"
	"time"

	"avatar-stream-gateway/internal/auth"
	"avatar-stream-gateway/internal/config"
	"avatar-stream-gateway/internal/heygen"
	"avatar-stream-gateway/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type Handlers struct {
	Client heygen.API
	Auth   *auth.Manager
	Creds  config.AuthConfig
	Logger zerolog.Logger
}

func NewHandlers(cfg *config.Config, client heygen.API, jwtManager *auth.Manager, logger zerolog.Logger) *Handlers {
	return &Handlers{
		Client: client,
		Auth:   jwtManager,
		Creds:  cfg.Auth,
		Logger: logger,
	}
}

func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Ready probes the upstream API with a cheap listing call.
func (h *Handlers) Ready(c *gin.Context) {
	if _, err := h.Client.ListAvatars(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ReadinessResponse{
			Status:       "not_ready",
			Dependencies: map[string]string{"heygen": err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, models.ReadinessResponse{
		Status:       "ready",
		Dependencies: map[string]string{"heygen": "ok"},
	})
}

// Login exchanges the configured gateway credentials for a bearer token.
func (h *Handlers) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondInvalid(c, err)
		return
	}

	if req.Username != h.Creds.Username || req.Password != h.Creds.Password {
		h.Logger.Warn().Str("username", req.Username).Msg("Login rejected")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Message: "Invalid credentials",
		})
		return
	}

	token, expiresAt, err := h.Auth.GenerateToken(req.Username)
	if err != nil {
		h.respondError(c, "login", err)
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
