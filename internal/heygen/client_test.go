package heygen

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return NewClient(srv.URL, "test-api-key", 5*time.Second), srv
}

func TestClientSendsAPIKeyHeader(t *testing.T) {
	var gotKey string
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-Api-Key")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"code": 100})
	})
	defer srv.Close()

	_, err := client.ListAvatars(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-api-key", gotKey)
}

func TestClientDecodesSuccessPayload(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/streaming.create_token", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "sess-1", body["session_id"])
		assert.Equal(t, float64(3600), body["expires_in"])

		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"token": "tok-123"},
		})
	})
	defer srv.Close()

	payload, err := client.CreateSessionToken(context.Background(), "sess-1", 3600)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", payload.Object("data").String("token"))
}

func TestClientClassifiesErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		call     func(*Client) error
		wantKind Kind
		wantMsg  string
	}{
		{
			name:   "Unauthorized",
			status: http.StatusUnauthorized,
			body:   `{"message":"invalid api key"}`,
			call: func(c *Client) error {
				_, err := c.ListAvatars(context.Background())
				return err
			},
			wantKind: KindAuthentication,
			wantMsg:  "invalid api key",
		},
		{
			name:   "SessionNotFound",
			status: http.StatusNotFound,
			body:   `{"message":"session not found"}`,
			call: func(c *Client) error {
				_, err := c.StartSession(context.Background(), "missing")
				return err
			},
			wantKind: KindSessionNotFound,
			wantMsg:  "session not found",
		},
		{
			name:   "GenericNotFound",
			status: http.StatusNotFound,
			body:   `{"error":"no such knowledge base"}`,
			call: func(c *Client) error {
				_, err := c.GetKnowledgeBase(context.Background(), "missing")
				return err
			},
			wantKind: KindNotFound,
			wantMsg:  "no such knowledge base",
		},
		{
			name:   "UpstreamValidation",
			status: http.StatusBadRequest,
			body:   `{"message":"bad avatar","details":{"avatar_id":"unknown"}}`,
			call: func(c *Client) error {
				_, err := c.NewSession(context.Background(), NewSessionParams{AvatarID: "x"})
				return err
			},
			wantKind: KindValidation,
			wantMsg:  "bad avatar",
		},
		{
			name:   "RateLimited",
			status: http.StatusTooManyRequests,
			body:   `{"message":"rate limit exceeded"}`,
			call: func(c *Client) error {
				_, err := c.KeepAlive(context.Background(), "sess-1")
				return err
			},
			wantKind: KindRateLimit,
			wantMsg:  "rate limit exceeded",
		},
		{
			name:   "ServerError",
			status: http.StatusBadGateway,
			body:   `{"message":"upstream exploded"}`,
			call: func(c *Client) error {
				_, err := c.SendTask(context.Background(), SendTaskParams{SessionID: "s", Text: "hi"})
				return err
			},
			wantKind: KindServer,
			wantMsg:  "upstream exploded",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})
			defer srv.Close()

			err := tt.call(client)
			require.Error(t, err)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestClientErrorDetailsPassthrough(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid","details":{"voice_id":"not available"}}`))
	})
	defer srv.Close()

	_, err := client.NewSession(context.Background(), NewSessionParams{AvatarID: "a"})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, map[string]string{"voice_id": "not available"}, apiErr.Details)
}

func TestClientHistoryQueryParams(t *testing.T) {
	start := int64(1672531200)
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "10", r.URL.Query().Get("limit"))
		assert.Equal(t, "20", r.URL.Query().Get("offset"))
		assert.Equal(t, "1672531200", r.URL.Query().Get("start_time"))
		assert.Empty(t, r.URL.Query().Get("end_time"))
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})
	defer srv.Close()

	_, err := client.ListSessionHistory(context.Background(), SessionHistoryParams{
		StartTime: &start,
		Limit:     10,
		Offset:    20,
	})
	require.NoError(t, err)
}

func TestClientContextCancellation(t *testing.T) {
	client, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.ListAvatars(ctx)
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "cancellation is not an upstream error kind")
}
