package models

import (
	"errors"
	"strings"
)

// Request models carry gin binding tags for structural validation; the
// Normalize methods apply the trim rules and defaults, so the trimmed
// values are what gets forwarded upstream.

const (
	DefaultTokenExpirySeconds = 3600
	MinTokenExpirySeconds     = 60
	MaxTokenExpirySeconds     = 86400
)

type NewSessionRequest struct {
	AvatarID        string `json:"avatar_id" binding:"required"`
	Quality         string `json:"quality" binding:"omitempty,oneof=low medium high"`
	VoiceID         string `json:"voice_id"`
	VideoEncoding   string `json:"video_encoding" binding:"omitempty,oneof=H264 VP8"`
	KnowledgeBaseID string `json:"knowledge_base_id"`
}

func (r *NewSessionRequest) Normalize() error {
	r.AvatarID = strings.TrimSpace(r.AvatarID)
	if r.AvatarID == "" {
		return errors.New("avatar_id cannot be empty")
	}
	r.VoiceID = strings.TrimSpace(r.VoiceID)
	r.KnowledgeBaseID = strings.TrimSpace(r.KnowledgeBaseID)
	return nil
}

type StartSessionRequest struct {
	SessionID string `json:"session_id" binding:"required"`
}

func (r *StartSessionRequest) Normalize() error {
	r.SessionID = strings.TrimSpace(r.SessionID)
	if r.SessionID == "" {
		return errors.New("session_id cannot be empty")
	}
	return nil
}

// CreateTokenRequest is the optional body of the token endpoint; an absent
// body means the default expiry.
type CreateTokenRequest struct {
	ExpiresIn *int `json:"expires_in" binding:"omitempty,gte=60,lte=86400"`
}

// ResolveExpiry returns the requested expiry or the 1 hour default.
func (r *CreateTokenRequest) ResolveExpiry() int {
	if r.ExpiresIn != nil {
		return *r.ExpiresIn
	}
	return DefaultTokenExpirySeconds
}

type SendTaskRequest struct {
	SessionID string `json:"session_id" binding:"required"`
	Text      string `json:"text" binding:"required"`
	TaskMode  string `json:"task_mode" binding:"omitempty,oneof=sync async"`
	TaskType  string `json:"task_type" binding:"omitempty,oneof=repeat chat"`
}

func (r *SendTaskRequest) Normalize() error {
	r.SessionID = strings.TrimSpace(r.SessionID)
	if r.SessionID == "" {
		return errors.New("session_id cannot be empty")
	}
	r.Text = strings.TrimSpace(r.Text)
	if r.Text == "" {
		return errors.New("text cannot be empty or whitespace")
	}
	if r.TaskMode == "" {
		r.TaskMode = string(TaskModeSync)
	}
	if r.TaskType == "" {
		r.TaskType = string(TaskTypeRepeat)
	}
	return nil
}

type SessionHistoryQuery struct {
	StartTime *int64 `form:"start_time"`
	EndTime   *int64 `form:"end_time"`
	Limit     int    `form:"limit,default=10" binding:"gte=1,lte=100"`
	Offset    int    `form:"offset,default=0" binding:"gte=0"`
}

type CreateKnowledgeBaseRequest struct {
	Name        string `json:"name" binding:"required"`
	Opening     string `json:"opening"`
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
}

func (r *CreateKnowledgeBaseRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return errors.New("name cannot be empty")
	}
	return nil
}

type UpdateKnowledgeBaseRequest struct {
	Name        string `json:"name"`
	Opening     string `json:"opening"`
	Prompt      string `json:"prompt"`
	Description string `json:"description"`
}

func (r *UpdateKnowledgeBaseRequest) Normalize() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Opening = strings.TrimSpace(r.Opening)
	r.Prompt = strings.TrimSpace(r.Prompt)
	r.Description = strings.TrimSpace(r.Description)
	if r.Name == "" && r.Opening == "" && r.Prompt == "" && r.Description == "" {
		return errors.New("at least one field must be provided")
	}
	return nil
}
