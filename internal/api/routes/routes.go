package routes

import (
	"avatar-stream-gateway/internal/api/handlers"
	"avatar-stream-gateway/internal/api/middleware"
	"avatar-stream-gateway/internal/auth"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(router *gin.Engine, h *handlers.Handlers, jwtManager *auth.Manager) {
	authMiddleware := middleware.AuthMiddleware(jwtManager)

	api := router.Group("/api/v1")
	{
		api.POST("/auth/token", h.Login)

		streaming := api.Group("/streaming")
		streaming.Use(authMiddleware)
		{
			streaming.POST("/sessions", h.NewSession)
			streaming.POST("/start", h.StartSession)
			streaming.GET("/sessions/active", h.ListActiveSessions)
			streaming.GET("/sessions/history", h.ListSessionHistory)
			streaming.POST("/sessions/:session_id/close", h.CloseSession)
			streaming.POST("/sessions/:session_id/keepalive", h.KeepAlive)
			streaming.POST("/sessions/:session_id/interrupt", h.InterruptTask)
			streaming.POST("/sessions/:session_id/tokens", h.CreateSessionToken)
			streaming.POST("/tasks", h.SendTask)
			streaming.GET("/avatars", h.ListAvatars)
		}

		knowledge := api.Group("/knowledge-bases")
		knowledge.Use(authMiddleware)
		{
			knowledge.POST("", h.CreateKnowledgeBase)
			knowledge.GET("", h.ListKnowledgeBases)
			knowledge.GET("/:id", h.GetKnowledgeBase)
			knowledge.PUT("/:id", h.UpdateKnowledgeBase)
			knowledge.DELETE("/:id", h.DeleteKnowledgeBase)
		}
	}

	router.GET("/healthz", h.Health)
	router.GET("/readyz", h.Ready)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
