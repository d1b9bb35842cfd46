package models

import "time"

// ErrorResponse is the body of every error answer the gateway writes.
type ErrorResponse struct {
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type ReadinessResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type NewSessionResponse struct {
	SessionID   string        `json:"session_id"`
	Status      SessionStatus `json:"status"`
	URL         string        `json:"url,omitempty"`
	AccessToken string        `json:"access_token,omitempty"`
}

type StartSessionResponse struct {
	Status string `json:"status"`
}

type CloseSessionResponse struct {
	Status string `json:"status"`
}

type KeepAliveResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

type InterruptTaskResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// CreateTokenResponse echoes the upstream error member even when nil so the
// body always carries an explicit "error" field.
type CreateTokenResponse struct {
	Token string `json:"token"`
	Error any    `json:"error"`
}

type TaskResponse struct {
	TaskID     string  `json:"task_id"`
	DurationMs float64 `json:"duration_ms"`
}

type AvatarInfo struct {
	AvatarID  string       `json:"avatar_id"`
	CreatedAt int64        `json:"created_at"`
	IsPublic  bool         `json:"is_public"`
	Status    AvatarStatus `json:"status"`
}

type ListAvatarsResponse struct {
	Code    int64        `json:"code"`
	Message string       `json:"message"`
	Data    []AvatarInfo `json:"data"`
}

type SessionInfo struct {
	SessionID string        `json:"session_id"`
	Status    SessionStatus `json:"status"`
	CreatedAt int64         `json:"created_at"`
}

type ListActiveSessionsResponse struct {
	Code    int64         `json:"code"`
	Message string        `json:"message"`
	Data    []SessionInfo `json:"data"`
}

type SessionHistoryInfo struct {
	SessionID       string        `json:"session_id"`
	CreatedAt       int64         `json:"created_at"`
	EndedAt         *int64        `json:"ended_at,omitempty"`
	Status          SessionStatus `json:"status"`
	DurationSeconds int64         `json:"duration_seconds"`
	AvatarID        string        `json:"avatar_id,omitempty"`
	VoiceName       string        `json:"voice_name,omitempty"`
}

type Pagination struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"has_more"`
}

type ListSessionHistoryResponse struct {
	Code       int64                `json:"code"`
	Message    string               `json:"message"`
	Data       []SessionHistoryInfo `json:"data"`
	Pagination Pagination           `json:"pagination"`
}

type DocumentInfo struct {
	DocumentID  string         `json:"document_id"`
	Name        string         `json:"name"`
	Status      DocumentStatus `json:"status"`
	CreatedAt   int64          `json:"created_at"`
	ProcessedAt *int64         `json:"processed_at,omitempty"`
	Error       string         `json:"error,omitempty"`
}

type KnowledgeBaseInfo struct {
	KnowledgeBaseID string              `json:"knowledge_base_id"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	Status          KnowledgeBaseStatus `json:"status"`
	CreatedAt       int64               `json:"created_at"`
	UpdatedAt       int64               `json:"updated_at,omitempty"`
	DocumentCount   int                 `json:"document_count"`
	Documents       []DocumentInfo      `json:"documents"`
}

type CreateKnowledgeBaseResponse struct {
	KnowledgeBaseID string              `json:"knowledge_base_id"`
	Name            string              `json:"name"`
	Status          KnowledgeBaseStatus `json:"status"`
	CreatedAt       int64               `json:"created_at"`
}

type UpdateKnowledgeBaseResponse struct {
	KnowledgeBaseID string              `json:"knowledge_base_id"`
	Name            string              `json:"name"`
	Status          KnowledgeBaseStatus `json:"status"`
	UpdatedAt       int64               `json:"updated_at"`
}

type DeleteKnowledgeBaseResponse struct {
	Success         bool   `json:"success"`
	KnowledgeBaseID string `json:"knowledge_base_id"`
	Message         string `json:"message"`
}

type ListKnowledgeBasesResponse struct {
	KnowledgeBases []KnowledgeBaseInfo `json:"knowledge_bases"`
	Total          int64               `json:"total"`
	Page           int64               `json:"page"`
	PageSize       int64               `json:"page_size"`
}
