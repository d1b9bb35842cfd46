package models

import (
	"fmt"
	"strings"
)

// Upstream status strings arrive as free text. Each parser trims and
// upper-cases the value, rejects empty input and anything outside the
// declared set, so unknown upstream values never pass through.

type SessionStatus string

// The session lifecycle is new -> connecting -> connected -> closed.
// ACTIVE and COMPLETED are the upstream's fallback values for active-list
// and history entries with no status; they are accepted as documented
// leniency, not as verified lifecycle states.
const (
	SessionStatusNew        SessionStatus = "NEW"
	SessionStatusConnecting SessionStatus = "CONNECTING"
	SessionStatusConnected  SessionStatus = "CONNECTED"
	SessionStatusClosed     SessionStatus = "CLOSED"
	SessionStatusActive     SessionStatus = "ACTIVE"
	SessionStatusCompleted  SessionStatus = "COMPLETED"
)

func ParseSessionStatus(raw string) (SessionStatus, error) {
	normalized, err := normalizeStatus("session", raw)
	if err != nil {
		return "", err
	}
	switch s := SessionStatus(normalized); s {
	case SessionStatusNew, SessionStatusConnecting, SessionStatusConnected,
		SessionStatusClosed, SessionStatusActive, SessionStatusCompleted:
		return s, nil
	}
	return "", fmt.Errorf("unknown session status %q", raw)
}

type AvatarStatus string

const (
	AvatarStatusActive   AvatarStatus = "ACTIVE"
	AvatarStatusInactive AvatarStatus = "INACTIVE"
)

func ParseAvatarStatus(raw string) (AvatarStatus, error) {
	normalized, err := normalizeStatus("avatar", raw)
	if err != nil {
		return "", err
	}
	switch s := AvatarStatus(normalized); s {
	case AvatarStatusActive, AvatarStatusInactive:
		return s, nil
	}
	return "", fmt.Errorf("unknown avatar status %q", raw)
}

type DocumentStatus string

const (
	DocumentStatusPending    DocumentStatus = "PENDING"
	DocumentStatusProcessing DocumentStatus = "PROCESSING"
	DocumentStatusProcessed  DocumentStatus = "PROCESSED"
	DocumentStatusError      DocumentStatus = "ERROR"
)

func ParseDocumentStatus(raw string) (DocumentStatus, error) {
	normalized, err := normalizeStatus("document", raw)
	if err != nil {
		return "", err
	}
	switch s := DocumentStatus(normalized); s {
	case DocumentStatusPending, DocumentStatusProcessing, DocumentStatusProcessed, DocumentStatusError:
		return s, nil
	}
	return "", fmt.Errorf("unknown document status %q", raw)
}

type KnowledgeBaseStatus string

const (
	KnowledgeBaseStatusActive   KnowledgeBaseStatus = "ACTIVE"
	KnowledgeBaseStatusInactive KnowledgeBaseStatus = "INACTIVE"
	KnowledgeBaseStatusDeleted  KnowledgeBaseStatus = "DELETED"
)

func ParseKnowledgeBaseStatus(raw string) (KnowledgeBaseStatus, error) {
	normalized, err := normalizeStatus("knowledge base", raw)
	if err != nil {
		return "", err
	}
	switch s := KnowledgeBaseStatus(normalized); s {
	case KnowledgeBaseStatusActive, KnowledgeBaseStatusInactive, KnowledgeBaseStatusDeleted:
		return s, nil
	}
	return "", fmt.Errorf("unknown knowledge base status %q", raw)
}

func normalizeStatus(kind, raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%s status cannot be empty", kind)
	}
	return strings.ToUpper(trimmed), nil
}

// TaskMode selects synchronous or asynchronous task execution.
type TaskMode string

const (
	TaskModeSync  TaskMode = "sync"
	TaskModeAsync TaskMode = "async"
)

// TaskType selects between repeating the input text and answering from the
// knowledge base.
type TaskType string

const (
	TaskTypeRepeat TaskType = "repeat"
	TaskTypeChat   TaskType = "chat"
)
