package mocks

import (
	"context"

	"avatar-stream-gateway/internal/heygen"

	"github.com/stretchr/testify/mock"
)

// MockAPI is a mock implementation of heygen.API.
type MockAPI struct {
	mock.Mock
}

func NewMockAPI() *MockAPI {
	return &MockAPI{}
}

func (m *MockAPI) payloadResult(args mock.Arguments) (heygen.Payload, error) {
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if args.Get(0) != nil {
		return args.Get(0).(heygen.Payload), nil
	}
	return nil, nil
}

func (m *MockAPI) NewSession(ctx context.Context, params heygen.NewSessionParams) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, params))
}

func (m *MockAPI) StartSession(ctx context.Context, sessionID string) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, sessionID))
}

func (m *MockAPI) CloseSession(ctx context.Context, sessionID string) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, sessionID))
}

func (m *MockAPI) KeepAlive(ctx context.Context, sessionID string) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, sessionID))
}

func (m *MockAPI) InterruptTask(ctx context.Context, sessionID string) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, sessionID))
}

func (m *MockAPI) CreateSessionToken(ctx context.Context, sessionID string, expiresIn int) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, sessionID, expiresIn))
}

func (m *MockAPI) SendTask(ctx context.Context, params heygen.SendTaskParams) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, params))
}

func (m *MockAPI) ListAvatars(ctx context.Context) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx))
}

func (m *MockAPI) ListActiveSessions(ctx context.Context) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx))
}

func (m *MockAPI) ListSessionHistory(ctx context.Context, params heygen.SessionHistoryParams) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, params))
}

func (m *MockAPI) CreateKnowledgeBase(ctx context.Context, params heygen.KnowledgeBaseParams) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, params))
}

func (m *MockAPI) GetKnowledgeBase(ctx context.Context, knowledgeBaseID string) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, knowledgeBaseID))
}

func (m *MockAPI) ListKnowledgeBases(ctx context.Context) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx))
}

func (m *MockAPI) UpdateKnowledgeBase(ctx context.Context, knowledgeBaseID string, params heygen.KnowledgeBaseParams) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, knowledgeBaseID, params))
}

func (m *MockAPI) DeleteKnowledgeBase(ctx context.Context, knowledgeBaseID string) (heygen.Payload, error) {
	return m.payloadResult(m.Called(ctx, knowledgeBaseID))
}
