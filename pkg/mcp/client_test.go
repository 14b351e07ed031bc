package mcp

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		opts    []ClientOption
		wantErr string
	}{
		{
			name:    "missing base URL",
			baseURL: "",
			wantErr: "base URL is required",
		},
		{
			name:    "bad scheme",
			baseURL: "ftp://example.com",
			wantErr: "must be http or https",
		},
		{
			name:    "valid",
			baseURL: "http://localhost:8765",
		},
		{
			name:    "valid with options",
			baseURL: "https://mcp.example.com/",
			opts: []ClientOption{
				WithTimeout(5 * time.Second),
				WithMaxRetries(1),
				WithRetryDelay(250 * time.Millisecond),
				WithHeader("Authorization", "token"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.baseURL, tt.opts...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, client)
		})
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/status", r.URL.Path)
		w.Write([]byte(`{"ok":true,"data":{"status":"ok"}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL+"/")
	_, err := client.GetStatus(context.Background())
	require.NoError(t, err)
}

func TestGetStatus(t *testing.T) {
	// /status may deliver its payload under "data" or "status" depending on
	// the deployment; both shapes decode into ServerStatus.
	tests := []struct {
		name string
		body string
	}{
		{
			name: "payload under data",
			body: `{"ok":true,"data":{"status":"healthy","version":"2.1.0","uptime":3600}}`,
		},
		{
			name: "payload under status",
			body: `{"ok":true,"status":{"status":"healthy","version":"2.1.0","uptime":3600}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, "/status", r.URL.Path)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := newTestClient(t, server.URL)
			status, err := client.GetStatus(context.Background())
			require.NoError(t, err)
			assert.Equal(t, "healthy", status.Status)
			assert.Equal(t, "2.1.0", status.Version)
			assert.Equal(t, float64(3600), status.Uptime)
		})
	}
}

func TestGetHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Write([]byte(`{"ok":true,"data":{"database":"up","queue_depth":3}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	health, err := client.GetHealth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "up", health["database"])
	assert.Equal(t, float64(3), health["queue_depth"])
}

// newTestClient creates a client for tests. Retries are off unless the test
// opts back in.
func newTestClient(t *testing.T, baseURL string, opts ...ClientOption) *Client {
	t.Helper()

	defaults := []ClientOption{
		WithMaxRetries(0),
		WithRetryDelay(time.Millisecond),
	}
	client, err := NewClient(baseURL, append(defaults, opts...)...)
	if err != nil {
		t.Fatalf("failed to create test client: %v", err)
	}
	return client
}
