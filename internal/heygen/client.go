package heygen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"avatar-stream-gateway/pkg/metrics"
)

// Client talks to the HeyGen streaming API. It owns transport, auth headers
// and error classification; callers get back loose payloads and normalize
// them into their own response models.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewSessionParams configures a new streaming session.
type NewSessionParams struct {
	AvatarID        string `json:"avatar_id,omitempty"`
	Quality         string `json:"quality,omitempty"`
	VoiceID         string `json:"voice_id,omitempty"`
	VideoEncoding   string `json:"video_encoding,omitempty"`
	KnowledgeBaseID string `json:"knowledge_base_id,omitempty"`
}

// SendTaskParams submits a speech task to an active session.
type SendTaskParams struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
	TaskMode  string `json:"task_mode"`
	TaskType  string `json:"task_type"`
}

// SessionHistoryParams filters the session history listing.
type SessionHistoryParams struct {
	StartTime *int64
	EndTime   *int64
	Limit     int
	Offset    int
}

// KnowledgeBaseParams creates or updates a knowledge base.
type KnowledgeBaseParams struct {
	Name        string `json:"name,omitempty"`
	Opening     string `json:"opening,omitempty"`
	Prompt      string `json:"prompt,omitempty"`
	Description string `json:"description,omitempty"`
}

func (c *Client) NewSession(ctx context.Context, params NewSessionParams) (Payload, error) {
	return c.do(ctx, http.MethodPost, "/streaming.new", params, ResourceGeneric)
}

func (c *Client) StartSession(ctx context.Context, sessionID string) (Payload, error) {
	body := map[string]string{"session_id": sessionID}
	return c.do(ctx, http.MethodPost, "/streaming.start", body, ResourceSession)
}

func (c *Client) CloseSession(ctx context.Context, sessionID string) (Payload, error) {
	body := map[string]string{"session_id": sessionID}
	return c.do(ctx, http.MethodPost, "/streaming.stop", body, ResourceSession)
}

func (c *Client) KeepAlive(ctx context.Context, sessionID string) (Payload, error) {
	body := map[string]string{"session_id": sessionID}
	return c.do(ctx, http.MethodPost, "/streaming.keep_alive", body, ResourceSession)
}

func (c *Client) InterruptTask(ctx context.Context, sessionID string) (Payload, error) {
	body := map[string]string{"session_id": sessionID}
	return c.do(ctx, http.MethodPost, "/streaming.interrupt", body, ResourceSession)
}

func (c *Client) CreateSessionToken(ctx context.Context, sessionID string, expiresIn int) (Payload, error) {
	body := map[string]any{"session_id": sessionID, "expires_in": expiresIn}
	return c.do(ctx, http.MethodPost, "/streaming.create_token", body, ResourceSession)
}

func (c *Client) SendTask(ctx context.Context, params SendTaskParams) (Payload, error) {
	return c.do(ctx, http.MethodPost, "/streaming.task", params, ResourceSession)
}

func (c *Client) ListAvatars(ctx context.Context) (Payload, error) {
	return c.do(ctx, http.MethodGet, "/streaming.avatar.list", nil, ResourceGeneric)
}

func (c *Client) ListActiveSessions(ctx context.Context) (Payload, error) {
	return c.do(ctx, http.MethodGet, "/streaming.list", nil, ResourceGeneric)
}

func (c *Client) ListSessionHistory(ctx context.Context, params SessionHistoryParams) (Payload, error) {
	path := fmt.Sprintf("/streaming.history?limit=%d&offset=%d", params.Limit, params.Offset)
	if params.StartTime != nil {
		path += "&start_time=" + strconv.FormatInt(*params.StartTime, 10)
	}
	if params.EndTime != nil {
		path += "&end_time=" + strconv.FormatInt(*params.EndTime, 10)
	}
	return c.do(ctx, http.MethodGet, path, nil, ResourceGeneric)
}

func (c *Client) CreateKnowledgeBase(ctx context.Context, params KnowledgeBaseParams) (Payload, error) {
	return c.do(ctx, http.MethodPost, "/streaming/knowledge_base/create", params, ResourceKnowledgeBase)
}

func (c *Client) GetKnowledgeBase(ctx context.Context, knowledgeBaseID string) (Payload, error) {
	return c.do(ctx, http.MethodGet, "/streaming/knowledge_base/"+knowledgeBaseID, nil, ResourceKnowledgeBase)
}

func (c *Client) ListKnowledgeBases(ctx context.Context) (Payload, error) {
	return c.do(ctx, http.MethodGet, "/streaming/knowledge_base/list", nil, ResourceKnowledgeBase)
}

func (c *Client) UpdateKnowledgeBase(ctx context.Context, knowledgeBaseID string, params KnowledgeBaseParams) (Payload, error) {
	return c.do(ctx, http.MethodPost, "/streaming/knowledge_base/"+knowledgeBaseID+"/update", params, ResourceKnowledgeBase)
}

func (c *Client) DeleteKnowledgeBase(ctx context.Context, knowledgeBaseID string) (Payload, error) {
	return c.do(ctx, http.MethodDelete, "/streaming/knowledge_base/"+knowledgeBaseID, nil, ResourceKnowledgeBase)
}

func (c *Client) do(ctx context.Context, method, path string, body any, resource Resource) (Payload, error) {
	// Metric labels carry the endpoint only, never query values.
	metricPath := path
	if i := strings.IndexByte(metricPath, '?'); i >= 0 {
		metricPath = metricPath[:i]
	}

	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamRequest(metricPath, "transport_error")
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordUpstreamRequest(metricPath, "transport_error")
		return nil, err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := classifyResponse(resp.StatusCode, raw, resource)
		metrics.RecordUpstreamRequest(metricPath, apiErr.Kind.String())
		return nil, apiErr
	}
	metrics.RecordUpstreamRequest(metricPath, "ok")

	if len(raw) == 0 {
		return Payload{}, nil
	}

	var payload Payload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode upstream response for %s: %w", path, err)
	}
	return payload, nil
}

// classifyResponse extracts the upstream error message and details and maps
// the status code to an error kind. The upstream error body is either
// {"code":..., "message":..., "details":...} or {"error": "..."}; anything
// else falls back to the status text.
func classifyResponse(status int, raw []byte, resource Resource) *Error {
	var body struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	_ = json.Unmarshal(raw, &body)

	message := body.Message
	if message == "" {
		message = body.Error
	}
	return Classify(status, message, body.Details, resource)
}
