package heygen

import "context"

//go:generate mockgen -destination=mocks/mock_api.go -package=mocks avatar-stream-gateway/internal/heygen API

// API is the surface handlers depend on. *Client implements it; tests use
// the testify mock in the mocks package.
type API interface {
	// NewSession creates a new streaming session.
	NewSession(ctx context.Context, params NewSessionParams) (Payload, error)

	// StartSession activates an existing session.
	StartSession(ctx context.Context, sessionID string) (Payload, error)

	// CloseSession terminates an active session.
	CloseSession(ctx context.Context, sessionID string) (Payload, error)

	// KeepAlive resets the idle-timeout countdown of a session.
	KeepAlive(ctx context.Context, sessionID string) (Payload, error)

	// InterruptTask interrupts the avatar's current speech.
	InterruptTask(ctx context.Context, sessionID string) (Payload, error)

	// CreateSessionToken creates a short-lived token for a session.
	CreateSessionToken(ctx context.Context, sessionID string, expiresIn int) (Payload, error)

	// SendTask submits a speech task to a session.
	SendTask(ctx context.Context, params SendTaskParams) (Payload, error)

	// ListAvatars lists public and custom interactive avatars.
	ListAvatars(ctx context.Context) (Payload, error)

	// ListActiveSessions lists currently active sessions.
	ListActiveSessions(ctx context.Context) (Payload, error)

	// ListSessionHistory lists past sessions with pagination.
	ListSessionHistory(ctx context.Context, params SessionHistoryParams) (Payload, error)

	// CreateKnowledgeBase creates an upstream knowledge base.
	CreateKnowledgeBase(ctx context.Context, params KnowledgeBaseParams) (Payload, error)

	// GetKnowledgeBase fetches a knowledge base with its documents.
	GetKnowledgeBase(ctx context.Context, knowledgeBaseID string) (Payload, error)

	// ListKnowledgeBases lists all knowledge bases.
	ListKnowledgeBases(ctx context.Context) (Payload, error)

	// UpdateKnowledgeBase updates a knowledge base's fields.
	UpdateKnowledgeBase(ctx context.Context, knowledgeBaseID string, params KnowledgeBaseParams) (Payload, error)

	// DeleteKnowledgeBase deletes a knowledge base.
	DeleteKnowledgeBase(ctx context.Context, knowledgeBaseID string) (Payload, error)
}

var _ API = (*Client)(nil)
